package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"bookstore-management/bookstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *bookstore.Store {
	t.Helper()
	s, err := bookstore.Open(filepath.Join(t.TempDir(), "pos.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// runScript drives the menu loop with scripted input and captures the output.
func runScript(t *testing.T, s *bookstore.Store, input string) string {
	t.Helper()
	var out bytes.Buffer
	runMenu(s, strings.NewReader(input), &out)
	return out.String()
}

func TestMenuExitChoice(t *testing.T) {
	s := testStore(t)
	out := runScript(t, s, "5\n")
	assert.Contains(t, out, "Thanks for using the bookstore ledger!")
}

func TestMenuExitLiteralEnter(t *testing.T) {
	s := testStore(t)
	out := runScript(t, s, "ENTER\n")
	assert.Contains(t, out, "Thanks for using the bookstore ledger!")
}

func TestMenuInvalidChoiceRedisplays(t *testing.T) {
	s := testStore(t)
	out := runScript(t, s, "9\n5\n")
	assert.Contains(t, out, "Please choose a valid option (1-5).")
	// Menu shown twice: once initially, once after the bad choice.
	assert.Equal(t, 2, strings.Count(out, "*************** Menu ***************"))
}

func TestMenuReportChoice(t *testing.T) {
	s := testStore(t)
	out := runScript(t, s, "2\n5\n")
	assert.Contains(t, out, "Sales Report")
	assert.Contains(t, out, "Python Programming")
}

func TestMenuAddSaleRepromptsUntilValid(t *testing.T) {
	s := testStore(t)

	// Bad date, then good; zero quantity, then good; negative discount,
	// then good.
	input := strings.Join([]string{
		"1",
		"2024/01/05",
		"2024-01-05",
		"M001",
		"B001",
		"0",
		"2",
		"-5",
		"100",
		"5",
	}, "\n") + "\n"

	out := runScript(t, s, input)
	assert.Contains(t, out, "Invalid date format, expected YYYY-MM-DD.")
	assert.Contains(t, out, "Quantity must be a positive integer.")
	assert.Contains(t, out, "Discount must be a non-negative integer.")
	assert.Contains(t, out, "=> Sale recorded! (total: 1,100)")

	b, err := s.GetBook("B001")
	require.NoError(t, err)
	assert.Equal(t, int64(48), b.Stock)
}

func TestMenuAddSaleStoreErrorReturnsToMenu(t *testing.T) {
	s := testStore(t)

	input := "1\n2024-01-05\nM999\nB001\n1\n0\n5\n"
	out := runScript(t, s, input)
	assert.Contains(t, out, "=> Error: invalid member id M999")
	assert.Contains(t, out, "Thanks for using the bookstore ledger!")
}

func TestMenuUpdateSaleFlow(t *testing.T) {
	s := testStore(t)

	// Unknown id re-prompts, then seeded sale 1 gets discount 200.
	input := "3\n999\n1\n200\n5\n"
	out := runScript(t, s, input)
	assert.Contains(t, out, "That sale id does not exist, try again.")
	assert.Contains(t, out, "=> Sale 1 updated! (total: 1,000)")
}

func TestMenuUpdateSaleCancel(t *testing.T) {
	s := testStore(t)
	out := runScript(t, s, "3\n\n5\n")
	assert.Contains(t, out, "Cancelled.")
	assert.NotContains(t, out, "updated!")
}

func TestMenuDeleteSaleFlow(t *testing.T) {
	s := testStore(t)

	before, err := s.SaleSummaries()
	require.NoError(t, err)

	input := "4\nabc\n2\n5\n"
	out := runScript(t, s, input)
	assert.Contains(t, out, "Please enter a number or press Enter to cancel.")
	assert.Contains(t, out, "=> Sale 2 deleted")

	after, err := s.SaleSummaries()
	require.NoError(t, err)
	assert.Len(t, after, len(before)-1)
	for _, sum := range after {
		assert.NotEqual(t, int64(2), sum.ID)
	}
}

func TestDBPathDefault(t *testing.T) {
	t.Setenv("BOOKSTORE_DB", "")
	assert.Equal(t, defaultDBFile, dbPath())

	t.Setenv("BOOKSTORE_DB", "custom.db")
	assert.Equal(t, "custom.db", dbPath())
}
