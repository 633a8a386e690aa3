package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadFileRejectsUnknownExtension(t *testing.T) {
	_, err := ReadFile("data.pdf", strings.NewReader("whatever"))
	require.ErrorIs(t, err, ErrBadExtension)
}

func TestReadCSV(t *testing.T) {
	csv := "Intern Name,Email Id,Post\n" +
		"Alex Doe,alex@example.com,Marketing\n" +
		"Jamie Ray\n" // short row: missing cells read as empty
	rows, err := ReadFile("upload.csv", strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Alex Doe", rows[0]["Intern Name"])
	assert.Equal(t, "Marketing", rows[0]["Post"])
	assert.Equal(t, "Jamie Ray", rows[1]["Intern Name"])
	assert.Equal(t, "", rows[1]["Post"])
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"Intern Name", "Email Id", "Total Enrollments"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"Alex Doe", "alex@example.com", 12}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{"Jamie Ray"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	rows, err := ReadFile("upload.xlsx", buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Alex Doe", rows[0]["Intern Name"])
	assert.Equal(t, "12", rows[0]["Total Enrollments"])
	assert.Equal(t, "", rows[1]["Email Id"])
}
