package client

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	enc "github.com/nexinvo/gstledger/internal/encoding"
	"github.com/nexinvo/gstledger/internal/ledger"
)

// bulkHeader is the fixed 14-column upload template.
var bulkHeader = []string{
	"Client Name*", "Client Code", "Email*", "Phone", "Mobile", "Address",
	"City", "State", "PIN Code", "State Code", "GSTIN", "PAN",
	"Date of Birth", "Date of Incorporation",
}

// RowError is a per-row bulk-upload failure. Accumulated; never aborts the
// remaining rows.
type RowError struct {
	Row    int
	Name   string
	Reason string
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d (%s): %s", e.Row, e.Name, e.Reason)
}

// ParseBulkCSV reads the client upload file into candidate records plus
// per-row errors. Rows failing validation are rejected individually.
func ParseBulkCSV(r io.Reader, validate func(ledger.Client) error) ([]ledger.Client, []RowError, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("detect encoding: %w", err)
	}
	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) < 2 {
		return nil, nil, fmt.Errorf("file has no data rows")
	}

	var clients []ledger.Client
	var rejects []RowError
	for i, rec := range records[1:] {
		rowNum := i + 2
		c := ledger.Client{
			Name:      cell(rec, 0),
			Code:      cell(rec, 1),
			Email:     cell(rec, 2),
			Phone:     cell(rec, 3),
			Mobile:    cell(rec, 4),
			Address:   cell(rec, 5),
			City:      cell(rec, 6),
			State:     cell(rec, 7),
			PINCode:   cell(rec, 8),
			StateCode: cell(rec, 9),
			GSTIN:     cell(rec, 10),
			PAN:       cell(rec, 11),
		}
		if c.Name == "" && c.Email == "" {
			continue
		}
		if dob := cell(rec, 12); dob != "" {
			t, err := parseDate(dob)
			if err != nil {
				rejects = append(rejects, RowError{Row: rowNum, Name: c.Name, Reason: "Invalid date of birth"})
				continue
			}
			c.DateOfBirth = &t
		}
		if doi := cell(rec, 13); doi != "" {
			t, err := parseDate(doi)
			if err != nil {
				rejects = append(rejects, RowError{Row: rowNum, Name: c.Name, Reason: "Invalid date of incorporation"})
				continue
			}
			c.DateOfIncorporation = &t
		}
		c = normalize(c)
		if err := validate(c); err != nil {
			rejects = append(rejects, RowError{Row: rowNum, Name: c.Name, Reason: err.Error()})
			continue
		}
		clients = append(clients, c)
	}
	return clients, rejects, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{"02-01-2006", "2006-01-02", "02/01/2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

func cell(rec []string, idx int) string {
	if idx < 0 || idx >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[idx])
}

// Template is the downloadable bulk-upload template with two example rows.
func Template() string {
	return strings.Join(bulkHeader, ",") + "\n" +
		"Acme Traders,CL0001,accounts@acmetraders.in,02212345678,9876543210,12 MG Road,Mumbai,Maharashtra,400001,27,27ABCDE1234F1Z5,ABCDE1234F,,01-04-2010\n" +
		"Sharma & Sons,,sharma.sons@example.in,,9123456780,5 Park Street,Kolkata,West Bengal,700016,19,19FGHIJ5678K2Z3,FGHIJ5678K,15-08-1975,\n"
}
