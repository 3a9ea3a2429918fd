package textfile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gymkeeper/internal/common"
	"github.com/dmitrijs2005/gymkeeper/internal/members"
)

const (
	delimiter = "|"

	// name|id|membershipType|workoutPlan|height|weight
	fieldCount = 6
	// name|id|membershipType|workoutPlan, written before measurements existed.
	legacyFieldCount = 4
)

// ErrUnknownPlan is returned by DecodeLine together with a usable member when
// the record names a workout plan this version does not know. The member is
// returned with Plan set to members.GoalNone.
var ErrUnknownPlan = errors.New("unknown workout plan")

// EncodeLine renders m as a single record without the trailing newline.
// Names are written verbatim; callers must keep '|' out of them.
func EncodeLine(m members.Member) string {
	return strings.Join([]string{
		m.Name,
		strconv.Itoa(m.ID),
		string(m.Tier),
		string(m.Plan),
		formatFloat(m.Height),
		formatFloat(m.Weight),
	}, delimiter)
}

// DecodeLine parses one record. A record that cannot be used yields an error
// wrapping common.ErrorMalformedRecord. An unrecognized workout plan is not
// fatal: the member is returned without a plan alongside ErrUnknownPlan.
func DecodeLine(line string) (members.Member, error) {
	fields := strings.Split(line, delimiter)
	if len(fields) != fieldCount && len(fields) != legacyFieldCount {
		return members.Member{}, malformed("expected %d fields, got %d", fieldCount, len(fields))
	}

	id, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return members.Member{}, malformed("id %q: %v", fields[1], err)
	}
	if id <= 0 {
		return members.Member{}, malformed("id %d is not positive", id)
	}

	tier, err := members.ParseTier(fields[2])
	if err != nil {
		return members.Member{}, malformed("%v", err)
	}

	var planErr error
	plan := members.GoalNone
	if strings.TrimSpace(fields[3]) != "" {
		if plan, err = members.ParseGoal(fields[3]); err != nil {
			plan = members.GoalNone
			planErr = fmt.Errorf("%w %q", ErrUnknownPlan, strings.TrimSpace(fields[3]))
		}
	}

	m := members.Member{ID: id, Name: fields[0], Tier: tier, Plan: plan}
	if len(fields) == legacyFieldCount {
		return m, planErr
	}

	if m.Height, err = parseMeasurement("height", fields[4], members.ValidateHeight); err != nil {
		return members.Member{}, err
	}
	if m.Weight, err = parseMeasurement("weight", fields[5], members.ValidateWeight); err != nil {
		return members.Member{}, err
	}
	return m, planErr
}

func parseMeasurement(name, s string, validate func(float64) error) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, malformed("%s %q: %v", name, s, err)
	}
	if err := validate(v); err != nil {
		return 0, malformed("%v", err)
	}
	return v, nil
}

// formatFloat uses the shortest representation that parses back to v.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", common.ErrorMalformedRecord, fmt.Sprintf(format, args...))
}
