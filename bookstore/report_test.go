package bookstore

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedFixture replaces the today-dated seed sales with fixed-date rows so
// the rendered report is stable across runs. Sale ids continue from the seed
// sequence (5, 6, 7).
func fixedFixture(t *testing.T) *Store {
	t.Helper()
	s := tempStore(t)

	_, err := s.db.Exec(`DELETE FROM sale`)
	require.NoError(t, err)

	_, err = s.RecordSale("2024-01-05", "M001", "B001", 2, 100)
	require.NoError(t, err)
	_, err = s.RecordSale("2024-01-06", "M002", "B003", 1, 0)
	require.NoError(t, err)
	_, err = s.RecordSale("2024-01-07", "M003", "B002", 3, 2500) // negative total
	require.NoError(t, err)

	return s
}

func TestWriteReportGolden(t *testing.T) {
	s := fixedFixture(t)

	var buf bytes.Buffer
	require.NoError(t, s.WriteReport(&buf))

	g := goldie.New(t)
	g.Assert(t, "sales_report", buf.Bytes())
}

func TestWriteReportGroupsAmounts(t *testing.T) {
	s := fixedFixture(t)

	var buf bytes.Buffer
	require.NoError(t, s.WriteReport(&buf))

	out := buf.String()
	assert.Contains(t, out, "Total: 1,100")
	assert.Contains(t, out, "Total: 1,200")
	assert.Contains(t, out, "Total: -100")
}

func TestWriteReportEmpty(t *testing.T) {
	s := tempStore(t)

	_, err := s.db.Exec(`DELETE FROM sale`)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, s.WriteReport(&buf))
	assert.Contains(t, buf.String(), "No sales recorded yet.")
	assert.NotContains(t, buf.String(), "Sales Report")
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0", FormatAmount(0))
	assert.Equal(t, "600", FormatAmount(600))
	assert.Equal(t, "1,100", FormatAmount(1100))
	assert.Equal(t, "1,234,567", FormatAmount(1234567))
	assert.Equal(t, "-100", FormatAmount(-100))
}
