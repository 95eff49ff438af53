package output

import (
	"time"

	"github.com/hazza/property-roi/internal/config"
	"github.com/hazza/property-roi/internal/domain"
	"github.com/hazza/property-roi/pkg/dateutil"
)

// fieldLabels maps each report field to its display label.
var fieldLabels = map[domain.FieldKey]string{
	domain.FieldReportDate:      "Report Date",
	domain.FieldPropertyPrice:   "Property Price",
	domain.FieldArea:            "Area",
	domain.FieldAnnualRent:      "Annual Rent",
	domain.FieldServiceFee:      "Service Fees",
	domain.FieldMaintenanceCost: "Maintenance Cost",
	domain.FieldManagementFee:   "Management Fee",
	domain.FieldNetIncome:       "Net Annual Income",
	domain.FieldROI:             "Return on Investment (ROI)",
}

// VerdictHeading introduces the rating line in every channel.
const VerdictHeading = "Property Rating"

// BuildReport formats an assessment into the ordered field list shared by
// the display and the exported document. at is the render time.
func BuildReport(a domain.ReturnAssessment, s config.ReportSettings, at time.Time) *domain.Report {
	in := a.Inputs
	field := func(k domain.FieldKey, v string) domain.ReportField {
		return domain.ReportField{Key: k, Label: fieldLabels[k], Value: v}
	}
	return &domain.Report{
		Title:       s.Title,
		GeneratedAt: at,
		Fields: []domain.ReportField{
			field(domain.FieldReportDate, dateutil.FormatDate(at)),
			field(domain.FieldPropertyPrice, FormatMoney(in.PropertyPrice, s.Currency)),
			field(domain.FieldArea, FormatArea(in.AreaSqft, s.AreaUnit)),
			field(domain.FieldAnnualRent, FormatMoney(a.AnnualRent, s.Currency)),
			field(domain.FieldServiceFee, FormatMoney(a.ServiceFeeTotal, s.Currency)),
			field(domain.FieldMaintenanceCost, FormatMoney(in.MaintenanceCost, s.Currency)),
			field(domain.FieldManagementFee, FormatMoney(a.ManagementFee, s.Currency)),
			field(domain.FieldNetIncome, FormatMoney(a.NetIncome, s.Currency)),
			field(domain.FieldROI, FormatPercentage(a.ROI)),
		},
		Verdict: domain.Verdict{
			Rating:  a.Rating,
			Level:   a.Rating.Level(),
			Message: a.Rating.Message(),
		},
		Assessment: a,
	}
}

// DisplayGroup is one block of result metrics on the interactive page.
type DisplayGroup struct {
	Name   string               `json:"name"`
	Fields []domain.ReportField `json:"fields"`
}

// Display is the payload handed to the interactive UI collaborator.
type Display struct {
	Title   string               `json:"title"`
	Date    string               `json:"date"`
	Fields  []domain.ReportField `json:"fields"`
	Groups  []DisplayGroup       `json:"groups"`
	Verdict domain.Verdict       `json:"verdict"`
}

var displayGroups = []struct {
	name string
	keys []domain.FieldKey
}{
	{"Income & Fees", []domain.FieldKey{domain.FieldAnnualRent, domain.FieldServiceFee}},
	{"Costs & Management", []domain.FieldKey{domain.FieldMaintenanceCost, domain.FieldManagementFee}},
	{"Net Income & ROI", []domain.FieldKey{domain.FieldNetIncome, domain.FieldROI}},
}

// DisplayPayload arranges a report into the three result groups plus verdict.
// Values are taken from r unchanged.
func DisplayPayload(r *domain.Report) Display {
	d := Display{
		Title:   r.Title,
		Date:    dateutil.FormatDate(r.GeneratedAt),
		Fields:  append([]domain.ReportField(nil), r.Fields...),
		Verdict: r.Verdict,
	}
	for _, g := range displayGroups {
		group := DisplayGroup{Name: g.name}
		for _, k := range g.keys {
			if f, ok := r.Field(k); ok {
				group.Fields = append(group.Fields, f)
			}
		}
		d.Groups = append(d.Groups, group)
	}
	return d
}
