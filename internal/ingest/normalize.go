package ingest

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Column labels of the export file, matched verbatim.
const (
	ColInternName       = "Intern Name"
	ColEmailID          = "Email Id"
	ColPost             = "Post"
	ColDOJ              = "DOJ"
	ColReferenceNumber  = "Reference Number"
	ColPOC              = "POC"
	ColTotalEnrollments = "Total Enrollments"
	ColMSAzure900       = "MS Azure 900"
	ColSEOStarter       = "SEO Starter"
	ColSEOSMM           = "SEO + SMM"
	ColDMCrash          = "DM-Crash"
	ColJobReady         = "8Hrs Job Ready"
	ColAzureCombo       = "Azure Combo"
	ColRecruitment      = "Recruitment"
	ColCollegeDB        = "College DB"
	ColClientDB         = "Client DB"
	ColSchoolLeadDB     = "School Lead DB"
)

// Columns is the full expected header set, in file order.
var Columns = []string{
	ColInternName, ColEmailID, ColPost, ColDOJ, ColReferenceNumber, ColPOC,
	ColTotalEnrollments, ColMSAzure900, ColSEOStarter, ColSEOSMM, ColDMCrash,
	ColJobReady, ColAzureCombo, ColRecruitment, ColCollegeDB, ColClientDB,
	ColSchoolLeadDB,
}

// Row is one raw tabular row keyed by column label.
type Row map[string]string

// Record is a normalized row. Empty string stands for a missing text cell.
type Record struct {
	Name            string
	Email           string
	Post            string
	DOJ             string
	ReferenceNumber string
	POCName         string

	TotalEnrollments int
	MSAzure900       int
	SEOStarter       int
	SEOSMM           int
	DMCrash          int
	JobReady         int
	AzureCombo       int
	Recruitment      int
	CollegeDB        int
	ClientDB         int
	SchoolLeadDB     int
}

// Normalize validates one raw row against the fixed schema and coerces its
// cells. A nil record with nil error means the row was skipped (empty name or
// a header row re-included as data).
func Normalize(row Row) (*Record, error) {
	for _, col := range Columns {
		if _, ok := row[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}

	name := strings.TrimSpace(row[ColInternName])
	if name == "" || name == ColInternName {
		return nil, nil
	}

	return &Record{
		Name:            name,
		Email:           strings.TrimSpace(row[ColEmailID]),
		Post:            strings.TrimSpace(row[ColPost]),
		DOJ:             normalizeDate(row[ColDOJ]),
		ReferenceNumber: strings.TrimSpace(row[ColReferenceNumber]),
		POCName:         strings.TrimSpace(row[ColPOC]),

		TotalEnrollments: safeInt(row[ColTotalEnrollments]),
		MSAzure900:       safeInt(row[ColMSAzure900]),
		SEOStarter:       safeInt(row[ColSEOStarter]),
		SEOSMM:           safeInt(row[ColSEOSMM]),
		DMCrash:          safeInt(row[ColDMCrash]),
		JobReady:         safeInt(row[ColJobReady]),
		AzureCombo:       safeInt(row[ColAzureCombo]),
		Recruitment:      safeInt(row[ColRecruitment]),
		CollegeDB:        safeInt(row[ColCollegeDB]),
		ClientDB:         safeInt(row[ColClientDB]),
		SchoolLeadDB:     safeInt(row[ColSchoolLeadDB]),
	}, nil
}

// NormalizeAll runs Normalize over every row, dropping skipped ones. The row
// number in the error counts from 2 so it matches the spreadsheet (row 1 is
// the header).
func NormalizeAll(rows []Row) ([]Record, error) {
	recs := make([]Record, 0, len(rows))
	for i, row := range rows {
		rec, err := Normalize(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if rec == nil {
			continue
		}
		recs = append(recs, *rec)
	}
	return recs, nil
}

// safeInt coerces a counter cell. Empty, dash-only or non-numeric text is 0;
// fractional values truncate; counters are never negative.
func safeInt(s string) int {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return 0
		}
		n = int(f)
	}
	if n < 0 {
		return 0
	}
	return n
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01-02-06",
	"1/2/06",
	"01/02/2006",
	"2/1/2006",
	"02-Jan-06",
	"Jan 2, 2006",
}

// normalizeDate turns a date-looking cell into an ISO calendar date. Text
// that is not a date is kept as-is; an empty cell stays empty.
func normalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}

// DeriveUsername computes the login handle used when ingestion creates a new
// user: the email local-part when present, else the display name lower-cased
// with spaces turned into dots.
func DeriveUsername(name, email string) string {
	if email != "" {
		if i := strings.Index(email, "@"); i >= 0 {
			return email[:i]
		}
		return email
	}
	return strings.ReplaceAll(strings.ToLower(name), " ", ".")
}
