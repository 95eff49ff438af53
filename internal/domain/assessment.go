package domain

import (
	"fmt"
	"strings"
)

// PropertyInputs represents the figures entered for a single property.
// All values are expected to be finite and non-negative; enforcing that is the
// caller's job (see config.ValidateInputs and the API binding tags).
type PropertyInputs struct {
	PropertyPrice        float64 `yaml:"property_price" json:"property_price" binding:"gte=0"`
	AreaSqft             float64 `yaml:"area_sqft" json:"area_sqft" binding:"gte=0"`
	MonthlyRent          float64 `yaml:"monthly_rent" json:"monthly_rent" binding:"gte=0"`
	AnnualRentOverride   float64 `yaml:"annual_rent_override" json:"annual_rent_override" binding:"gte=0"`
	ServiceFeePerSqft    float64 `yaml:"service_fee_per_sqft" json:"service_fee_per_sqft" binding:"gte=0"`
	MaintenanceCost      float64 `yaml:"maintenance_cost" json:"maintenance_cost" binding:"gte=0"`
	ManagementFeePercent float64 `yaml:"management_fee_percent" json:"management_fee_percent" binding:"gte=0"`
}

// ReturnAssessment is the result of one return calculation. It carries the
// inputs it was computed from so renderers never need ambient state.
type ReturnAssessment struct {
	Inputs          PropertyInputs `json:"inputs"`
	AnnualRent      float64        `json:"annual_rent"`
	ServiceFeeTotal float64        `json:"service_fee_total"`
	ManagementFee   float64        `json:"management_fee"`
	NetIncome       float64        `json:"net_income"`
	ROI             float64        `json:"roi"`
	Rating          Rating         `json:"rating"`
}

// Rating is the qualitative tier derived from ROI. Tiers are ordered.
type Rating int

const (
	RatingLow Rating = iota
	RatingModerate
	RatingGood
	RatingExcellent
)

var ratingNames = [...]string{"low", "moderate", "good", "excellent"}

var ratingMessages = [...]string{
	"Low return, not investment-worthy.",
	"Moderate return, possibly acceptable.",
	"Good return relative to the market.",
	"Excellent return, a strong investment opportunity.",
}

// ratingLevels mirror the alert styles used by the display collaborator.
var ratingLevels = [...]string{"error", "warning", "info", "success"}

func (r Rating) valid() bool { return r >= RatingLow && r <= RatingExcellent }

// String returns the short tier name.
func (r Rating) String() string {
	if !r.valid() {
		return fmt.Sprintf("Rating(%d)", int(r))
	}
	return ratingNames[r]
}

// Message returns the verdict text shown to the user.
func (r Rating) Message() string {
	if !r.valid() {
		return ""
	}
	return ratingMessages[r]
}

// Level returns the display severity for the verdict.
func (r Rating) Level() string {
	if !r.valid() {
		return ""
	}
	return ratingLevels[r]
}

// MarshalText encodes the rating by name for JSON and YAML.
func (r Rating) MarshalText() ([]byte, error) {
	if !r.valid() {
		return nil, fmt.Errorf("invalid rating %d", int(r))
	}
	return []byte(ratingNames[r]), nil
}

// UnmarshalText accepts the tier name, case-insensitively.
func (r *Rating) UnmarshalText(b []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(b)))
	for i, n := range ratingNames {
		if n == name {
			*r = Rating(i)
			return nil
		}
	}
	return fmt.Errorf("unknown rating %q", string(b))
}
