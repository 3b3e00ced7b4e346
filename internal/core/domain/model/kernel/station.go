package kernel

import (
	"strings"

	"tracking/internal/pkg/errs"
)

// stationCodeDigits is the fixed width of the numeric station code embedded
// in a lot number.
const stationCodeDigits = 3

// NormalizeStationCode converts a free-text workstation name into the
// fixed-width numeric code used inside lot numbers. Non-digit characters are
// stripped, the result is truncated to three digits and left-padded with
// zeros ("BH11" -> "011", "MZ1" -> "001", "X" -> "000").
//
// Normalization happens once at the boundary where external station names
// are ingested; everything downstream works with the normalized code.
func NormalizeStationCode(station string) string {
	var b strings.Builder
	for _, r := range station {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	digits := b.String()
	if len(digits) > stationCodeDigits {
		digits = digits[:stationCodeDigits]
	}
	for len(digits) < stationCodeDigits {
		digits = "0" + digits
	}
	return digits
}

// ValidateStationName checks that a free-text station name is usable as a
// unit location. Only emptiness is rejected; malformed names degrade
// gracefully through NormalizeStationCode.
func ValidateStationName(station string) error {
	if strings.TrimSpace(station) == "" {
		return errs.NewValueIsRequiredError("station")
	}
	return nil
}
