package opening

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	in := "Ledger Name,Debit Balance,Credit Balance\n" +
		"Cash in Hand,₹50000,0\n" +
		"Capital Account,0,\"2,00,000\"\n"
	rows, err := ParseCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 2, rows[0].Number)
	assert.Equal(t, "Cash in Hand", rows[0].LedgerName)
	assert.Equal(t, "₹50000", rows[0].Debit)
	assert.Equal(t, 3, rows[1].Number)
	assert.Equal(t, "2,00,000", rows[1].Credit)
}

func TestParseCSV_HeaderVariants(t *testing.T) {
	in := "Account,Dr,Cr\nCash in Hand,100,\n"
	rows, err := ParseCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "100", rows[0].Debit)
	assert.Equal(t, "", rows[0].Credit)
}

func TestParseCSV_PreambleAndBlankRows(t *testing.T) {
	in := "Opening Balances Export,,\n" +
		"ledger name,debit,credit\n" +
		"Cash in Hand,100,0\n" +
		",,\n" +
		"HDFC Bank,0,100\n"
	rows, err := ParseCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 3, rows[0].Number)
	assert.Equal(t, 5, rows[1].Number)
}

func TestParseCSV_NoHeader(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("a,b,c\n1,2,3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no header row")
}

func TestParseCSV_UTF8BOM(t *testing.T) {
	in := "\xEF\xBB\xBFLedger Name,Debit,Credit\nCash in Hand,100,0\n"
	rows, err := ParseCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Cash in Hand", rows[0].LedgerName)
}

func TestTemplate(t *testing.T) {
	lines := strings.Split(strings.TrimSpace(Template()), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, "Ledger Name,Debit Balance,Credit Balance", lines[0])

	// the template must round-trip through our own parser
	rows, err := ParseCSV(strings.NewReader(Template()))
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}
