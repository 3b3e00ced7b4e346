package kernel

import (
	"fmt"
	"strconv"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

const (
	// lotDomainPrefix is the constant two-digit prefix that brands every lot
	// number. It appears twice in the encoding: at the start and between the
	// station code and the sequence.
	lotDomainPrefix = "40"

	// LotNumberLength is the fixed width of every encoded lot number:
	// prefix(2) + year(2) + week(2) + station(3) + prefix(2) + sequence(4).
	LotNumberLength = 15

	maxWeek     = 53
	maxSequence = 9999
)

// LotNumber is the unique, information-bearing identifier minted for one
// physical unit at production start. It encodes the production year and ISO
// week, the originating workstation, and a per-station sequence number.
//
// A LotNumber is immutable once constructed. The generator is pure: it never
// consults the unit registry, so uniqueness is the caller's responsibility
// through choice of a starting sequence not already in use for the station.
//
// Example:
//
//	lot, err := kernel.NewLotNumber(26, 35, "BH11", 1)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(lot.String()) // "402635011400001"
type LotNumber struct {
	year        int
	week        int
	stationCode string
	sequence    int

	guard guard.ConstructorGuard
}

// ErrLotNumberIsNotConstructed is returned when validating a zero-value
// LotNumber that bypassed its constructors.
var ErrLotNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"LotNumber must be created via NewLotNumber or ParseLotNumber",
)

// NewLotNumber mints the lot number for (year, ISO week, station, sequence).
// The year may be supplied in full (2026) or as two digits (26); only the
// last two digits are encoded. The station name is normalized via
// NormalizeStationCode, so malformed station names degrade gracefully
// instead of failing.
//
// Week must be in [1, 53] and sequence in [1, 9999]; out-of-range values are
// rejected because they cannot be represented in the fixed-width encoding.
func NewLotNumber(year, week int, station string, sequence int) (LotNumber, error) {
	if year < 0 {
		return LotNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"year", fmt.Errorf("%d is negative", year))
	}
	if week < 1 || week > maxWeek {
		return LotNumber{}, errs.NewValueIsOutOfRangeError("week", week, 1, maxWeek)
	}
	if sequence < 1 || sequence > maxSequence {
		return LotNumber{}, errs.NewValueIsOutOfRangeError("sequence", sequence, 1, maxSequence)
	}

	return LotNumber{
		year:        year % 100,
		week:        week,
		stationCode: NormalizeStationCode(station),
		sequence:    sequence,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// ParseLotNumber decodes an encoded lot number back into its parts. The
// round trip holds for year, week, and station code:
// ParseLotNumber(lot.String()) yields a LotNumber equal to lot.
func ParseLotNumber(s string) (LotNumber, error) {
	if len(s) != LotNumberLength {
		return LotNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"lotNumber", fmt.Errorf("%q is not %d characters", s, LotNumberLength))
	}
	if s[0:2] != lotDomainPrefix || s[9:11] != lotDomainPrefix {
		return LotNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"lotNumber", fmt.Errorf("%q does not carry the %s domain prefix", s, lotDomainPrefix))
	}

	year, err := strconv.Atoi(s[2:4])
	if err != nil {
		return LotNumber{}, errs.NewValueIsInvalidErrorWithCause("lotNumber", err)
	}
	week, err := strconv.Atoi(s[4:6])
	if err != nil {
		return LotNumber{}, errs.NewValueIsInvalidErrorWithCause("lotNumber", err)
	}
	stationCode := s[6:9]
	if _, err = strconv.Atoi(stationCode); err != nil {
		return LotNumber{}, errs.NewValueIsInvalidErrorWithCause("lotNumber", err)
	}
	sequence, err := strconv.Atoi(s[11:15])
	if err != nil {
		return LotNumber{}, errs.NewValueIsInvalidErrorWithCause("lotNumber", err)
	}

	lot, err := NewLotNumber(year, week, stationCode, sequence)
	if err != nil {
		return LotNumber{}, err
	}
	return lot, nil
}

// String returns the fixed-width 15-character encoding.
func (l LotNumber) String() string {
	return fmt.Sprintf("%s%02d%02d%s%s%04d",
		lotDomainPrefix, l.year, l.week, l.stationCode, lotDomainPrefix, l.sequence)
}

// Year returns the two-digit production year.
func (l LotNumber) Year() int {
	return l.year
}

// Week returns the ISO week of production.
func (l LotNumber) Week() int {
	return l.week
}

// StationCode returns the normalized three-digit originating station code.
func (l LotNumber) StationCode() string {
	return l.stationCode
}

// Sequence returns the per-station sequence number.
func (l LotNumber) Sequence() int {
	return l.sequence
}

// IsEqual compares two lot numbers by their full encoding.
func (l LotNumber) IsEqual(other LotNumber) bool {
	return l.year == other.year &&
		l.week == other.week &&
		l.stationCode == other.stationCode &&
		l.sequence == other.sequence
}

// Validate ensures the LotNumber was created through a constructor.
func (l LotNumber) Validate() error {
	return l.guard.Validate(ErrLotNumberIsNotConstructed)
}
