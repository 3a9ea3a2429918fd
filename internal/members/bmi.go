package members

import (
	"errors"
	"fmt"
	"math"
)

// ErrMeasurementsUnset is returned when BMI is requested for a member whose
// height or weight has not been recorded.
var ErrMeasurementsUnset = errors.New("height and weight must both be set")

// Category is a BMI band.
type Category string

const (
	CategoryUnderweight Category = "Underweight"
	CategoryHealthy     Category = "Healthy weight"
	CategoryOverweight  Category = "Overweight"
	CategoryObese       Category = "Obese"
)

// Band boundaries. Bands are half-open: [lower, upper).
const (
	healthyFrom    = 18.5
	overweightFrom = 25.0
	obeseFrom      = 30.0
)

// BMI is a computed body-mass index and its band.
type BMI struct {
	Value    float64
	Category Category
}

func (b BMI) String() string {
	return fmt.Sprintf("%.1f (%s)", b.Value, b.Category)
}

// CalculateBMI returns weight / height². Non-positive inputs yield
// ErrMeasurementsUnset.
func CalculateBMI(height, weight float64) (BMI, error) {
	if height <= 0 || weight <= 0 {
		return BMI{}, ErrMeasurementsUnset
	}
	v := weight / (height * height)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return BMI{}, fmt.Errorf("%w: bmi is not finite", ErrInvalidMeasurement)
	}
	return BMI{Value: v, Category: Classify(v)}, nil
}

// Classify maps a BMI value onto its half-open band.
func Classify(v float64) Category {
	switch {
	case v < healthyFrom:
		return CategoryUnderweight
	case v < overweightFrom:
		return CategoryHealthy
	case v < obeseFrom:
		return CategoryOverweight
	default:
		return CategoryObese
	}
}
