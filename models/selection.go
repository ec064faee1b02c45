package models

import (
	"errors"
	"fmt"
	"math"
	"regexp"
)

// Mode identifies how the garment is sized
type Mode string

const (
	ModeMTO Mode = "MTO" // Made-to-order: predefined size
	ModeMTM Mode = "MTM" // Made-to-measure: customer measurements
)

// ErrInvalidSelection is wrapped by every Validate failure
var ErrInvalidSelection = errors.New("invalid selection")

var categoryNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 -]*$`)

// ParseMode accepts "MTO" or "MTM"
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeMTO, ModeMTM:
		return Mode(s), nil
	}
	return "", fmt.Errorf("%w: unknown mode %q", ErrInvalidSelection, s)
}

// Fit is either MadeToOrder or MadeToMeasure. The variant decides the mode,
// so a selection can never carry both a size and a measurement set.
type Fit interface {
	Mode() Mode
	isFit()
}

// MadeToOrder carries the predefined size, which may still be unpicked
type MadeToOrder struct {
	Size *SizeOption
}

func (MadeToOrder) Mode() Mode { return ModeMTO }
func (MadeToOrder) isFit()     {}

// MadeToMeasure carries the customer's own measurements
type MadeToMeasure struct {
	Measurements MeasurementSet
}

func (MadeToMeasure) Mode() Mode { return ModeMTM }
func (MadeToMeasure) isFit()     {}

// Selection is the immutable customization a quote is computed from
type Selection struct {
	Fabric *FabricOption
	Styles map[string]StyleOption // category -> option
	Fit    Fit
}

// Mode returns the selection mode. A selection without a fit reads as MTO.
func (s Selection) Mode() Mode {
	if s.Fit == nil {
		return ModeMTO
	}
	return s.Fit.Mode()
}

// Size returns the picked size for MTO selections, nil otherwise
func (s Selection) Size() *SizeOption {
	if mto, ok := s.Fit.(MadeToOrder); ok {
		return mto.Size
	}
	return nil
}

// Measurements returns the measurement set for MTM selections, nil otherwise
func (s Selection) Measurements() MeasurementSet {
	if mtm, ok := s.Fit.(MadeToMeasure); ok {
		return mtm.Measurements
	}
	return nil
}

// Validate checks the selection before it reaches pricing or checkout.
// Category names are restricted so generated line item keys cannot collide.
func (s Selection) Validate() error {
	if s.Fit == nil {
		return fmt.Errorf("%w: mode is required", ErrInvalidSelection)
	}

	if s.Fabric != nil && s.Fabric.PricePerUnit.IsNegative() {
		return fmt.Errorf("%w: fabric %s has a negative price", ErrInvalidSelection, s.Fabric.ID)
	}

	for category, option := range s.Styles {
		if !categoryNamePattern.MatchString(category) {
			return fmt.Errorf("%w: style category %q must contain only letters, digits, spaces or hyphens", ErrInvalidSelection, category)
		}
		if option.Category != "" && option.Category != category {
			return fmt.Errorf("%w: style %s belongs to category %q, not %q", ErrInvalidSelection, option.ID, option.Category, category)
		}
	}

	for name, value := range s.Measurements() {
		if name == "" {
			return fmt.Errorf("%w: measurement name cannot be empty", ErrInvalidSelection)
		}
		if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
			return fmt.Errorf("%w: measurement %s must be a non-negative number", ErrInvalidSelection, name)
		}
	}

	return nil
}
