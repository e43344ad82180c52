package opening

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	enc "github.com/nexinvo/gstledger/internal/encoding"
)

// ParseCSV reads an opening-balance CSV export into rows ready for
// ImportFromTable. The header row is located by matching column names
// against known substrings, so extra columns and preamble lines above the
// header are tolerated.
func ParseCSV(r io.Reader) ([]Row, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	nameIdx, debitIdx, creditIdx, headerIdx := detectHeader(records)
	if nameIdx < 0 {
		return nil, fmt.Errorf("no header row found: expected columns for ledger name, debit and credit")
	}

	rows := make([]Row, 0, len(records)-headerIdx-1)
	for i, rec := range records[headerIdx+1:] {
		name := cell(rec, nameIdx)
		debit := cell(rec, debitIdx)
		credit := cell(rec, creditIdx)
		if name == "" && debit == "" && credit == "" {
			continue
		}
		rows = append(rows, Row{
			// 1-based row number in the original file
			Number:     headerIdx + i + 2,
			LedgerName: name,
			Debit:      debit,
			Credit:     credit,
		})
	}
	return rows, nil
}

// detectHeader scans for the first row whose cells match the expected
// column substrings (case-insensitively): ledger/name/account, debit/dr,
// credit/cr.
func detectHeader(records [][]string) (nameIdx, debitIdx, creditIdx, headerIdx int) {
	for rowIdx, rec := range records {
		name, debit, credit := -1, -1, -1
		for i, c := range rec {
			h := strings.ToLower(strings.TrimSpace(c))
			switch {
			case h == "":
			case name < 0 && (strings.Contains(h, "ledger") || strings.Contains(h, "name") || strings.Contains(h, "account")):
				name = i
			case debit < 0 && (strings.Contains(h, "debit") || strings.Contains(h, "dr")):
				debit = i
			case credit < 0 && (strings.Contains(h, "credit") || strings.Contains(h, "cr")):
				credit = i
			}
		}
		if name >= 0 && debit >= 0 && credit >= 0 {
			return name, debit, credit, rowIdx
		}
	}
	return -1, -1, -1, 0
}

func cell(rec []string, idx int) string {
	if idx < 0 || idx >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[idx])
}

// Template is the downloadable import template with example rows.
func Template() string {
	return "Ledger Name,Debit Balance,Credit Balance\n" +
		"Cash in Hand,50000,0\n" +
		"HDFC Bank,150000,0\n" +
		"Capital Account,0,200000\n"
}
