// Package gst validates GSTIN/state consistency for client records.
package gst

import (
	"fmt"
	"strings"
)

// GSTINLength is the fixed length of an Indian GST taxpayer identifier.
// Its first two characters encode the registration state.
const GSTINLength = 15

// PANLength is the fixed length of a Permanent Account Number.
const PANLength = 10

// MatchResult is the outcome of a GSTIN/state comparison.
type MatchResult int

const (
	// Indeterminate means the inputs are too short or unset to compare.
	// Callers surfacing incremental feedback treat this as "no verdict yet".
	Indeterminate MatchResult = iota
	Match
	Mismatch
)

func (r MatchResult) String() string {
	switch r {
	case Match:
		return "match"
	case Mismatch:
		return "mismatch"
	default:
		return "indeterminate"
	}
}

// CheckGSTINStateMatch compares the state code embedded in a GSTIN against
// the selected state's code. It runs incrementally as the GSTIN is typed, so
// partial input yields Indeterminate rather than Mismatch.
func CheckGSTINStateMatch(gstin, stateCode string) MatchResult {
	gstin = strings.TrimSpace(gstin)
	if len(gstin) < 2 || stateCode == "" {
		return Indeterminate
	}
	if strings.ToUpper(gstin[:2]) == stateCode {
		return Match
	}
	return Mismatch
}

// ValidateGSTIN is the hard gate applied at save time: an empty GSTIN is
// accepted, but a present one must be exactly 15 characters and its prefix
// must match the client's state code.
func ValidateGSTIN(gstin, stateCode string) error {
	gstin = strings.TrimSpace(gstin)
	if gstin == "" {
		return nil
	}
	if len(gstin) != GSTINLength {
		return fmt.Errorf("gstin must be %d characters, got %d", GSTINLength, len(gstin))
	}
	if CheckGSTINStateMatch(gstin, stateCode) != Match {
		return fmt.Errorf("gstin state code %q does not match state code %q", strings.ToUpper(gstin[:2]), stateCode)
	}
	return nil
}

// ValidatePAN accepts an empty PAN; a present one must be exactly 10 characters.
func ValidatePAN(pan string) error {
	pan = strings.TrimSpace(pan)
	if pan == "" {
		return nil
	}
	if len(pan) != PANLength {
		return fmt.Errorf("pan must be %d characters, got %d", PANLength, len(pan))
	}
	return nil
}
