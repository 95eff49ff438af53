package output

import (
	"encoding/json"

	"github.com/hazza/property-roi/internal/domain"
)

// JSONFormatter serializes the display payload and raw assessment as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.Report) ([]byte, error) {
	out := struct {
		Display
		Assessment domain.ReturnAssessment `json:"assessment"`
	}{DisplayPayload(report), report.Assessment}
	return json.MarshalIndent(out, "", "  ")
}
