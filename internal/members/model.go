// Package members holds the gym member record and the in-memory store that
// owns those records.
package members

import (
	"fmt"
	"math"
	"strings"

	"github.com/dmitrijs2005/gymkeeper/internal/common"
)

// Tier is a membership category. It is display-only.
type Tier string

const (
	TierBasic   Tier = "Basic"
	TierPremium Tier = "Premium"
	TierVIP     Tier = "VIP"
)

// Tiers lists the membership tiers in menu order.
var Tiers = []Tier{TierBasic, TierPremium, TierVIP}

// ParseTier matches s against the known tiers, ignoring case and surrounding
// whitespace, and returns the canonical value.
func ParseTier(s string) (Tier, error) {
	s = strings.TrimSpace(s)
	for _, t := range Tiers {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTier, s)
}

// Goal is the fitness goal a workout plan is built for. The zero value means
// no plan has been assigned.
type Goal string

const (
	GoalNone       Goal = ""
	GoalWeightLoss Goal = "Weight Loss"
	GoalMuscleGain Goal = "Muscle Gain"
)

// Goals lists the recognized goals.
var Goals = []Goal{GoalWeightLoss, GoalMuscleGain}

// ParseGoal matches s against the recognized goals. An empty string is not a
// goal and is rejected.
func ParseGoal(s string) (Goal, error) {
	s = strings.TrimSpace(s)
	for _, g := range Goals {
		if strings.EqualFold(s, string(g)) {
			return g, nil
		}
	}
	return GoalNone, fmt.Errorf("%w: %q", ErrInvalidGoal, s)
}

// Member is a single registered gym member.
//
// Height is in meters and Weight in kilograms; zero means "not recorded".
type Member struct {
	ID     int
	Name   string
	Tier   Tier
	Plan   Goal
	Height float64
	Weight float64
}

// HasPlan reports whether a workout goal has been assigned.
func (m Member) HasPlan() bool { return m.Plan != GoalNone }

// HasMeasurements reports whether both height and weight are recorded.
func (m Member) HasMeasurements() bool { return m.Height > 0 && m.Weight > 0 }

// ValidateName rejects names that would break the one-line-per-record file
// layout: the field delimiter and line breaks.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidName)
	}
	if strings.ContainsAny(name, "|\r\n") {
		return fmt.Errorf("%w: name must not contain '|' or line breaks", ErrInvalidName)
	}
	return nil
}

// Accepted measurement ranges. Zero is always allowed and means "not recorded".
const (
	MinHeight = 0.3   // m
	MaxHeight = 3.0   // m
	MinWeight = 1.0   // kg
	MaxWeight = 700.0 // kg
)

// ValidateHeight accepts zero or a height in meters within [MinHeight, MaxHeight].
func ValidateHeight(v float64) error {
	return validateRange("height", v, MinHeight, MaxHeight)
}

// ValidateWeight accepts zero or a weight in kilograms within [MinWeight, MaxWeight].
func ValidateWeight(v float64) error {
	return validateRange("weight", v, MinWeight, MaxWeight)
}

func validateRange(name string, v, lo, hi float64) error {
	if v == 0 {
		return nil
	}
	if math.IsNaN(v) || v < lo || v > hi {
		return fmt.Errorf("%w: %s %v outside [%g, %g]", ErrInvalidMeasurement, name, v, lo, hi)
	}
	return nil
}

var (
	ErrInvalidTier        = fmt.Errorf("%w: unknown membership tier", common.ErrorValidation)
	ErrInvalidGoal        = fmt.Errorf("%w: unknown fitness goal", common.ErrorValidation)
	ErrInvalidName        = fmt.Errorf("%w: invalid name", common.ErrorValidation)
	ErrInvalidMeasurement = fmt.Errorf("%w: invalid measurement", common.ErrorValidation)
)
