package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/hazza/property-roi/internal/domain"
	"gopkg.in/yaml.v3"
)

// ErrInvalidInput marks property inputs that fail validation.
var ErrInvalidInput = errors.New("invalid input")

// InputParser handles parsing of property input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads property inputs from a YAML (or JSON) file.
// Keys missing from the file keep their default form values.
func (ip *InputParser) LoadFromFile(filename string) (*domain.PropertyInputs, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	inputs := ip.CreateExampleInputs()
	if err := yaml.Unmarshal(data, inputs); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateInputs(inputs); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}

	return inputs, nil
}

// ValidateInputs enforces the input boundary: every value finite and non-negative.
func (ip *InputParser) ValidateInputs(in *domain.PropertyInputs) error {
	if in == nil {
		return fmt.Errorf("%w: no inputs provided", ErrInvalidInput)
	}
	fields := []struct {
		name  string
		value float64
	}{
		{"property_price", in.PropertyPrice},
		{"area_sqft", in.AreaSqft},
		{"monthly_rent", in.MonthlyRent},
		{"annual_rent_override", in.AnnualRentOverride},
		{"service_fee_per_sqft", in.ServiceFeePerSqft},
		{"maintenance_cost", in.MaintenanceCost},
		{"management_fee_percent", in.ManagementFeePercent},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s must be a finite number", ErrInvalidInput, f.name)
		}
		if f.value < 0 {
			return fmt.Errorf("%w: %s cannot be negative", ErrInvalidInput, f.name)
		}
	}
	return nil
}

// CreateExampleInputs returns the default form values.
func (ip *InputParser) CreateExampleInputs() *domain.PropertyInputs {
	return &domain.PropertyInputs{
		PropertyPrice:        2000000,
		AreaSqft:             1700,
		MonthlyRent:          8500,
		AnnualRentOverride:   0, // 0 means monthly rent × 12
		ServiceFeePerSqft:    20,
		MaintenanceCost:      10000,
		ManagementFeePercent: 5,
	}
}

// SaveInputs writes inputs as YAML to filename, with numbers in plain notation.
func SaveInputs(in *domain.PropertyInputs, filename string) error {
	var node yaml.Node
	if err := node.Encode(in); err != nil {
		return err
	}
	for _, n := range node.Content {
		plainNumber(n)
	}
	b, err := yaml.Marshal(&node)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}

// plainNumber rewrites float scalars such as 2e+06 as 2000000.
func plainNumber(n *yaml.Node) {
	if n.Kind != yaml.ScalarNode || n.ShortTag() != "!!float" {
		return
	}
	f, err := strconv.ParseFloat(n.Value, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		n.Value = strconv.FormatInt(int64(f), 10)
		n.Tag = "!!int"
		return
	}
	n.Value = strconv.FormatFloat(f, 'f', -1, 64)
}
