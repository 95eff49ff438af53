package domain

import "time"

// FieldKey identifies a labelled report field independent of its label text.
type FieldKey string

const (
	FieldReportDate      FieldKey = "report_date"
	FieldPropertyPrice   FieldKey = "property_price"
	FieldArea            FieldKey = "area"
	FieldAnnualRent      FieldKey = "annual_rent"
	FieldServiceFee      FieldKey = "service_fee_total"
	FieldMaintenanceCost FieldKey = "maintenance_cost"
	FieldManagementFee   FieldKey = "management_fee"
	FieldNetIncome       FieldKey = "net_income"
	FieldROI             FieldKey = "roi"
)

// ReportField is one formatted line of a report.
type ReportField struct {
	Key   FieldKey `json:"key"`
	Label string   `json:"label"`
	Value string   `json:"value"`
}

// Verdict is the qualitative rating line that closes every report.
type Verdict struct {
	Rating  Rating `json:"rating"`
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Report is the formatted view of a ReturnAssessment shared by every output
// channel. Fields are in display order.
type Report struct {
	Title       string           `json:"title"`
	GeneratedAt time.Time        `json:"generated_at"`
	Fields      []ReportField    `json:"fields"`
	Verdict     Verdict          `json:"verdict"`
	Assessment  ReturnAssessment `json:"assessment"`
}

// Field returns the field with the given key.
func (r *Report) Field(key FieldKey) (ReportField, bool) {
	for _, f := range r.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return ReportField{}, false
}
