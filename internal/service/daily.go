package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pms-tracker/internal/model"

	"gorm.io/gorm"
)

// Sections a member can submit against.
var Sections = []string{"Human Resources", "Business Development", "Sales & Marketing", "Marketing"}

var ErrInvalidSection = errors.New("invalid section")

type DailyService struct {
	db *gorm.DB
}

func NewDailyService(db *gorm.DB) *DailyService { return &DailyService{db: db} }

// Submit records a member's counters for one section today. Resubmitting the
// same (user, date, section) updates the existing row, so a member can
// correct their numbers without duplicating the day.
func (s *DailyService) Submit(ctx context.Context, userID int, section string, c model.Counters) (*model.Entry, error) {
	if !validSection(section) {
		return nil, ErrInvalidSection
	}

	var user model.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}

	clampCounters(&c)
	today := time.Now().Format("2006-01-02")

	var entry model.Entry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ? AND section = ?", userID, today, section).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		entry = model.Entry{
			UserID:          userID,
			Date:            today,
			Section:         section,
			InternName:      user.Name,
			Post:            user.Post,
			POC:             user.POCName,
			DOJ:             user.DOJ,
			ReferenceNumber: user.ReferenceNumber,
			EmailID:         user.Email,
		}
		applyCounters(&entry, c)
		if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
			return nil, fmt.Errorf("insert entry: %w", err)
		}
		return &entry, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query entry: %w", err)
	}

	applyCounters(&entry, c)
	if err := s.db.WithContext(ctx).Save(&entry).Error; err != nil {
		return nil, fmt.Errorf("update entry: %w", err)
	}
	return &entry, nil
}

// EntryFilter narrows History and Entries listings; zero values mean "any".
type EntryFilter struct {
	UserID    int
	Section   string
	StartDate string
	EndDate   string
}

// History lists one member's entries, newest first.
func (s *DailyService) History(ctx context.Context, userID int, f EntryFilter) ([]model.Entry, error) {
	f.UserID = userID
	return s.Entries(ctx, f)
}

// Entries lists entries across all members, newest first.
func (s *DailyService) Entries(ctx context.Context, f EntryFilter) ([]model.Entry, error) {
	q := s.db.WithContext(ctx).Model(&model.Entry{})
	if f.UserID != 0 {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.Section != "" {
		q = q.Where("section = ?", f.Section)
	}
	if f.StartDate != "" {
		q = q.Where("date >= ?", f.StartDate)
	}
	if f.EndDate != "" {
		q = q.Where("date <= ?", f.EndDate)
	}
	var entries []model.Entry
	if err := q.Order("date DESC, id DESC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

// TodayBySection returns today's entries for one member keyed by section.
func (s *DailyService) TodayBySection(ctx context.Context, userID int) (map[string]*model.Entry, error) {
	today := time.Now().Format("2006-01-02")
	var entries []model.Entry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, today).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("query today: %w", err)
	}

	bySection := make(map[string]*model.Entry, len(Sections))
	for _, sec := range Sections {
		bySection[sec] = nil
	}
	for i := range entries {
		if _, ok := bySection[entries[i].Section]; ok {
			bySection[entries[i].Section] = &entries[i]
		}
	}
	return bySection, nil
}

func validSection(s string) bool {
	for _, sec := range Sections {
		if sec == s {
			return true
		}
	}
	return false
}

// clampCounters keeps every counter non-negative.
func clampCounters(c *model.Counters) {
	for _, p := range []*int{
		&c.TotalEnrollments, &c.MTDLeads,
		&c.MSAzure900, &c.SEOStarter, &c.SEOSMM, &c.DMCrash, &c.JobReady, &c.AzureCombo,
		&c.Recruitment, &c.CollegeDB, &c.ClientDB, &c.SchoolLeadDB,
		&c.DailyLeadsGenerated, &c.DailyLeadsContacted, &c.DailyProspects, &c.DailySuspects,
		&c.ApplicationsReceived, &c.Interviewed, &c.OnHold, &c.Shortlisted, &c.Rejected,
	} {
		if *p < 0 {
			*p = 0
		}
	}
}

func applyCounters(e *model.Entry, c model.Counters) {
	e.TotalEnrollments = c.TotalEnrollments
	e.MTDLeads = c.MTDLeads
	e.MSAzure900 = c.MSAzure900
	e.SEOStarter = c.SEOStarter
	e.SEOSMM = c.SEOSMM
	e.DMCrash = c.DMCrash
	e.JobReady = c.JobReady
	e.AzureCombo = c.AzureCombo
	e.Recruitment = c.Recruitment
	e.CollegeDB = c.CollegeDB
	e.ClientDB = c.ClientDB
	e.SchoolLeadDB = c.SchoolLeadDB
	e.DailyLeadsGenerated = c.DailyLeadsGenerated
	e.DailyLeadsContacted = c.DailyLeadsContacted
	e.DailyProspects = c.DailyProspects
	e.DailySuspects = c.DailySuspects
	e.ApplicationsReceived = c.ApplicationsReceived
	e.Interviewed = c.Interviewed
	e.OnHold = c.OnHold
	e.Shortlisted = c.Shortlisted
	e.Rejected = c.Rejected
	e.SupportRequired = c.SupportRequired
}
