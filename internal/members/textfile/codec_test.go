package textfile

import (
	"testing"

	"github.com/dmitrijs2005/gymkeeper/internal/common"
	"github.com/dmitrijs2005/gymkeeper/internal/members"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeLine(t *testing.T) {
	tests := []struct {
		name string
		in   members.Member
		want string
	}{
		{
			name: "full record",
			in:   members.Member{ID: 3, Name: "Ann Lee", Tier: members.TierPremium, Plan: members.GoalWeightLoss, Height: 1.7, Weight: 60.5},
			want: "Ann Lee|3|Premium|Weight Loss|1.7|60.5",
		},
		{
			name: "no plan, no measurements",
			in:   members.Member{ID: 12, Name: "Bo", Tier: members.TierVIP},
			want: "Bo|12|VIP||0|0",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, EncodeLine(tc.in))
		})
	}
}

func TestDecodeLine_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want members.Member
	}{
		{
			name: "current format",
			in:   "Ann|1|Basic|Muscle Gain|1.7|60",
			want: members.Member{ID: 1, Name: "Ann", Tier: members.TierBasic, Plan: members.GoalMuscleGain, Height: 1.7, Weight: 60},
		},
		{
			name: "empty plan and measurements",
			in:   "Bo|2|VIP|||",
			want: members.Member{ID: 2, Name: "Bo", Tier: members.TierVIP},
		},
		{
			name: "legacy four field line",
			in:   "Cy|7|Premium|Weight Loss",
			want: members.Member{ID: 7, Name: "Cy", Tier: members.TierPremium, Plan: members.GoalWeightLoss},
		},
		{
			name: "empty name is kept",
			in:   "|4|Basic||0|0",
			want: members.Member{ID: 4, Tier: members.TierBasic},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeLine(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecodeLine_Malformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"not delimited", "just some text"},
		{"too many fields", "A|B|1|Basic||1.7|60"},
		{"non-numeric id", "Ann|x|Basic||1.7|60"},
		{"zero id", "Ann|0|Basic||1.7|60"},
		{"negative id", "Ann|-2|Basic||1.7|60"},
		{"unknown tier", "Ann|1|Gold||1.7|60"},
		{"bad height", "Ann|1|Basic||tall|60"},
		{"bad weight", "Ann|1|Basic||1.7|heavy"},
		{"negative weight", "Ann|1|Basic||1.7|-60"},
		{"NaN height", "Ann|1|Basic||NaN|60"},
		{"height out of range", "Ann|1|Basic||1e-200|60"},
		{"weight out of range", "Ann|1|Basic||1.7|1e300"},
		{"unknown plan with bad height", "Ann|1|Basic|Cardio|tall|60"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeLine(tc.in)
			require.ErrorIs(t, err, common.ErrorMalformedRecord)
		})
	}
}

func TestDecodeLine_UnknownPlanKeepsMember(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want members.Member
	}{
		{
			name: "current format",
			in:   "Ann|1|Basic|Cardio|1.7|60",
			want: members.Member{ID: 1, Name: "Ann", Tier: members.TierBasic, Height: 1.7, Weight: 60},
		},
		{
			name: "legacy four field line",
			in:   "Cy|7|Premium|Yoga",
			want: members.Member{ID: 7, Name: "Cy", Tier: members.TierPremium},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeLine(tc.in)
			require.ErrorIs(t, err, ErrUnknownPlan)
			assert.NotErrorIs(t, err, common.ErrorMalformedRecord)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEncodeDecode_PreservesFloats(t *testing.T) {
	m := members.Member{ID: 9, Name: "Dee", Tier: members.TierBasic, Height: 1.0 / 3.0, Weight: 72.123456789}
	got, err := DecodeLine(EncodeLine(m))
	require.NoError(t, err)
	assert.Equal(t, m, got)
}
