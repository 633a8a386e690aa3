package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullRow(name string) Row {
	row := make(Row, len(Columns))
	for _, col := range Columns {
		row[col] = ""
	}
	row[ColInternName] = name
	return row
}

func TestSafeIntCoercion(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"-", 0},
		{"   ", 0},
		{"n/a", 0},
		{"abc", 0},
		{"5", 5},
		{" 12 ", 12},
		{"7.9", 7},
		{"3.1", 3},
		{"-4", 0},
		{"0", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, safeInt(tc.in), "safeInt(%q)", tc.in)
	}
}

func TestNormalizeSkipsEmptyNameAndHeaderEcho(t *testing.T) {
	rec, err := Normalize(fullRow(""))
	require.NoError(t, err)
	assert.Nil(t, rec)

	rec, err = Normalize(fullRow("   "))
	require.NoError(t, err)
	assert.Nil(t, rec)

	// A header row pasted back in as data must not become an intern.
	rec, err = Normalize(fullRow("Intern Name"))
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestNormalizeMissingColumn(t *testing.T) {
	row := fullRow("Alex Doe")
	delete(row, ColSchoolLeadDB)

	_, err := Normalize(row)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing column "School Lead DB"`)
}

func TestNormalizeFullRow(t *testing.T) {
	row := fullRow("Alex Doe")
	row[ColEmailID] = " alex@example.com "
	row[ColPost] = "Human Resources"
	row[ColDOJ] = "2026-03-15 00:00:00"
	row[ColReferenceNumber] = "REF-7"
	row[ColPOC] = "Priya Gava"
	row[ColTotalEnrollments] = "12"
	row[ColMSAzure900] = "3.7"
	row[ColSEOStarter] = "-"
	row[ColRecruitment] = "oops"

	rec, err := Normalize(row)
	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.Equal(t, "Alex Doe", rec.Name)
	assert.Equal(t, "alex@example.com", rec.Email)
	assert.Equal(t, "Human Resources", rec.Post)
	assert.Equal(t, "2026-03-15", rec.DOJ)
	assert.Equal(t, "REF-7", rec.ReferenceNumber)
	assert.Equal(t, "Priya Gava", rec.POCName)
	assert.Equal(t, 12, rec.TotalEnrollments)
	assert.Equal(t, 3, rec.MSAzure900)
	assert.Equal(t, 0, rec.SEOStarter)
	assert.Equal(t, 0, rec.Recruitment)
	assert.Equal(t, 0, rec.ClientDB)
}

func TestNormalizeDate(t *testing.T) {
	assert.Equal(t, "", normalizeDate("  "))
	assert.Equal(t, "2026-01-05", normalizeDate("2026-01-05"))
	assert.Equal(t, "2026-03-15", normalizeDate("2026-03-15 00:00:00"))
	assert.Equal(t, "2026-01-02", normalizeDate("01/02/2026"))
	// Not a date: keep the raw text rather than invent one.
	assert.Equal(t, "joined last spring", normalizeDate("joined last spring"))
}

func TestNormalizeAllCountsSpreadsheetRows(t *testing.T) {
	rows := []Row{
		fullRow("Alex Doe"),
		fullRow(""), // skipped, not an error
		fullRow("Jamie Ray"),
	}
	recs, err := NormalizeAll(rows)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "Alex Doe", recs[0].Name)
	assert.Equal(t, "Jamie Ray", recs[1].Name)

	bad := fullRow("Pat Smith")
	delete(bad, ColPOC)
	_, err = NormalizeAll([]Row{fullRow("Alex Doe"), bad})
	require.Error(t, err)
	// Row 1 is the header, so the first data row is row 2.
	assert.Contains(t, err.Error(), "row 3:")
}

func TestDeriveUsername(t *testing.T) {
	assert.Equal(t, "alex.d", DeriveUsername("Alex Doe", "alex.d@example.com"))
	assert.Equal(t, "alex.doe", DeriveUsername("Alex Doe", ""))
	assert.Equal(t, "jamie", DeriveUsername("", "jamie@x.org"))
	assert.Equal(t, "noat", DeriveUsername("Some One", "noat"))
}
