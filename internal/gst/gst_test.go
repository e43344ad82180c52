package gst

import "testing"

func TestCheckGSTINStateMatch(t *testing.T) {
	cases := []struct {
		name      string
		gstin     string
		stateCode string
		want      MatchResult
	}{
		{"matching prefix", "27ABCDE1234F1Z5", "27", Match},
		{"mismatching prefix", "07ABCDE1234F1Z5", "27", Mismatch},
		{"empty gstin", "", "27", Indeterminate},
		{"single char", "2", "27", Indeterminate},
		{"no state selected", "27ABCDE1234F1Z5", "", Indeterminate},
		{"lowercase input", "27abcde1234f1z5", "27", Match},
		{"partial but comparable", "27AB", "27", Match},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CheckGSTINStateMatch(tc.gstin, tc.stateCode); got != tc.want {
				t.Fatalf("CheckGSTINStateMatch(%q, %q) = %v, want %v", tc.gstin, tc.stateCode, got, tc.want)
			}
		})
	}
}

func TestValidateGSTIN(t *testing.T) {
	if err := ValidateGSTIN("", "27"); err != nil {
		t.Fatalf("empty gstin should pass the save gate: %v", err)
	}
	if err := ValidateGSTIN("27ABCDE1234F1Z5", "27"); err != nil {
		t.Fatalf("valid gstin rejected: %v", err)
	}
	// Matching prefix is not enough: length must be exactly 15.
	if err := ValidateGSTIN("27AB", "27"); err == nil {
		t.Fatal("short gstin with matching prefix must be rejected")
	}
	if err := ValidateGSTIN("07ABCDE1234F1Z5", "27"); err == nil {
		t.Fatal("state mismatch must be rejected")
	}
}

func TestValidatePAN(t *testing.T) {
	if err := ValidatePAN(""); err != nil {
		t.Fatalf("empty pan should pass: %v", err)
	}
	if err := ValidatePAN("ABCDE1234F"); err != nil {
		t.Fatalf("valid pan rejected: %v", err)
	}
	if err := ValidatePAN("ABCDE1234"); err == nil {
		t.Fatal("9-char pan must be rejected")
	}
}
