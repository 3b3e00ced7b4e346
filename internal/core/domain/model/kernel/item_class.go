package kernel

import (
	"fmt"
	"strings"

	"tracking/internal/pkg/errs"
)

// ItemClass classifies a manufactured item for routing purposes. The class
// is resolved once at unit creation from the item description and consumed
// by the router thereafter, so routing never re-inspects free text.
type ItemClass int

const (
	// ItemClassUnknown represents an invalid or undefined classification.
	// This value (0) helps catch uninitialized ItemClass values.
	ItemClassUnknown ItemClass = iota

	// ItemClassStandard covers plain pipe items that route through the
	// regular post-processing station.
	ItemClassStandard

	// ItemClassFlanged covers flanged variants, which route through the
	// Mazak machining station for flange finishing.
	ItemClassFlanged
)

func getItemClassStrings() map[ItemClass]string {
	return map[ItemClass]string{
		ItemClassUnknown:  "Unknown",
		ItemClassStandard: "Standard",
		ItemClassFlanged:  "Flanged",
	}
}

func getValidItemClassStrings() map[ItemClass]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[ItemClass]string{
		ItemClassStandard: "Standard",
		ItemClassFlanged:  "Flanged",
	}
}

// ClassifyItem resolves the routing class of an item from its description.
// Descriptions mentioning a flange (Dutch "flens" or English "flange",
// any casing) classify as Flanged; everything else is Standard.
func ClassifyItem(description string) ItemClass {
	lowered := strings.ToLower(description)
	if strings.Contains(lowered, "flens") || strings.Contains(lowered, "flange") {
		return ItemClassFlanged
	}
	return ItemClassStandard
}

// RequiredMeasurement returns the inspection measurement field that must be
// supplied for items of this class: wall thickness for standard items,
// flange thickness for flanged ones.
func (c ItemClass) RequiredMeasurement() string {
	if c == ItemClassFlanged {
		return "flensdikte"
	}
	return "wanddikte"
}

// Validate checks that the ItemClass is one of the defined valid classes.
func (c ItemClass) Validate() error {
	if _, ok := getValidItemClassStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"itemClass", fmt.Errorf("%d is not a valid item class", c))
	}
	return nil
}

// String returns the human-readable name of the item class.
// Implements fmt.Stringer and is safe on invalid values.
func (c ItemClass) String() string {
	if str, ok := getItemClassStrings()[c]; ok {
		return str
	}
	return "Unknown"
}
