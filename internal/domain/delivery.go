// Package domain contains core business entities and rules.
package domain

import "strings"

// Size is the package size category of a shipment.
type Size string

// Recognized size categories.
const (
	SizeSmall Size = "SMALL"
	SizeLarge Size = "LARGE"
)

// LoadLevel is the current demand level of the delivery network.
// The set is open: unrecognized levels are valid and carry no surcharge.
type LoadLevel string

// Known load levels.
const (
	LoadNormal   LoadLevel = "NORMAL"
	LoadElevated LoadLevel = "ELEVATED"
	LoadHigh     LoadLevel = "HIGH"
	LoadVeryHigh LoadLevel = "VERY_HIGH"
)

// sizeAliases maps the legacy category labels onto canonical sizes.
var sizeAliases = map[string]Size{
	"маленькие": SizeSmall,
	"большие":   SizeLarge,
}

// loadAliases maps the legacy load labels onto canonical levels.
var loadAliases = map[string]LoadLevel{
	"норма":         LoadNormal,
	"повышенная":    LoadElevated,
	"высокая":       LoadHigh,
	"очень высокая": LoadVeryHigh,
}

// ParseSize normalizes a size label. Canonical labels match case-insensitively,
// legacy labels map to their canonical value, anything else is returned as-is
// and rejected later by the calculator.
func ParseSize(label string) Size {
	trimmed := strings.TrimSpace(label)

	if s, ok := sizeAliases[strings.ToLower(trimmed)]; ok {
		return s
	}

	switch s := Size(strings.ToUpper(trimmed)); s {
	case SizeSmall, SizeLarge:
		return s
	}

	return Size(label)
}

// ParseLoadLevel normalizes a load level label the same way ParseSize does.
func ParseLoadLevel(label string) LoadLevel {
	trimmed := strings.TrimSpace(label)

	if l, ok := loadAliases[strings.ToLower(trimmed)]; ok {
		return l
	}

	switch l := LoadLevel(strings.ToUpper(trimmed)); l {
	case LoadNormal, LoadElevated, LoadHigh, LoadVeryHigh:
		return l
	}

	return LoadLevel(label)
}

// QuoteRequest holds the inputs of a single price calculation.
type QuoteRequest struct {
	// DistanceKm is the travel distance in kilometers.
	DistanceKm float64

	Size Size

	Fragile bool

	LoadLevel LoadLevel
}

// Supplement is one additive price component.
type Supplement struct {
	// Rule names the rule that produced the amount: distance, size or fragile.
	Rule string

	Amount int
}

// Quote is a computed delivery price with its breakdown.
type Quote struct {
	Request QuoteRequest

	// Supplements lists the additive components in evaluation order.
	Supplements []Supplement

	// Subtotal is the sum of all supplements.
	Subtotal int

	// LoadFactor is the factor the request's load level maps to.
	LoadFactor float64

	// MinimumApplied reports whether the total was raised to MinimumPrice.
	MinimumApplied bool

	// Total is the final price.
	Total int
}

// QuoteOutcome pairs a quote with the error that prevented it, if any.
type QuoteOutcome struct {
	Quote *Quote
	Err   error
}
