package calculation

import (
	"github.com/hazza/property-roi/internal/domain"
)

const monthsPerYear = 12

// ROI thresholds (percent). Each tier includes its lower bound.
const (
	ModerateROIThreshold  = 3.0
	GoodROIThreshold      = 6.0
	ExcellentROIThreshold = 10.0
)

// Compute derives the annual figures, ROI and rating for one property.
// It never fails: an explicit annual rent above zero replaces monthly rent × 12,
// and a zero property price yields an ROI of exactly zero.
func Compute(in domain.PropertyInputs) domain.ReturnAssessment {
	annualRent := in.MonthlyRent * monthsPerYear
	if in.AnnualRentOverride > 0 {
		annualRent = in.AnnualRentOverride
	}

	serviceFeeTotal := in.AreaSqft * in.ServiceFeePerSqft
	managementFee := annualRent * (in.ManagementFeePercent / 100)

	// No floor: expenses may exceed rent.
	netIncome := annualRent - serviceFeeTotal - in.MaintenanceCost - managementFee

	roi := 0.0
	if in.PropertyPrice > 0 {
		roi = (netIncome / in.PropertyPrice) * 100
	}

	return domain.ReturnAssessment{
		Inputs:          in,
		AnnualRent:      annualRent,
		ServiceFeeTotal: serviceFeeTotal,
		ManagementFee:   managementFee,
		NetIncome:       netIncome,
		ROI:             roi,
		Rating:          ClassifyROI(roi),
	}
}

// ClassifyROI maps an ROI percentage onto its rating tier.
func ClassifyROI(roi float64) domain.Rating {
	switch {
	case roi < ModerateROIThreshold:
		return domain.RatingLow
	case roi < GoodROIThreshold:
		return domain.RatingModerate
	case roi < ExcellentROIThreshold:
		return domain.RatingGood
	default:
		return domain.RatingExcellent
	}
}

// Calculator wraps Compute with logging.
type Calculator struct {
	Logger Logger
}

// NewCalculator creates a calculator with a no-op logger.
func NewCalculator() *Calculator {
	return &Calculator{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculator. If nil is provided, a no-op logger is used.
func (c *Calculator) SetLogger(l Logger) {
	if l == nil {
		c.Logger = NopLogger{}
		return
	}
	c.Logger = l
}

// Assess computes the assessment for in.
func (c *Calculator) Assess(in domain.PropertyInputs) domain.ReturnAssessment {
	a := Compute(in)
	if in.AnnualRentOverride > 0 {
		c.Logger.Debugf("annual rent override %.2f replaces monthly rent %.2f", in.AnnualRentOverride, in.MonthlyRent)
	}
	if in.PropertyPrice <= 0 {
		c.Logger.Warnf("property price is zero; ROI reported as 0")
	}
	c.Logger.Debugf("annual_rent=%.2f service_fee=%.2f management_fee=%.2f net_income=%.2f roi=%.4f rating=%s",
		a.AnnualRent, a.ServiceFeeTotal, a.ManagementFee, a.NetIncome, a.ROI, a.Rating)
	return a
}
