package service

import (
	"context"
	"fmt"

	"pms-tracker/internal/model"

	"gorm.io/gorm"
)

// TargetPerIntern is the enrollment target each member contributes to their
// group's total.
const TargetPerIntern = 50

type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService { return &ReportService{db: db} }

// Analytics recomputes the dashboard projection from scratch: members grouped
// by post, per-group target and achievement, global metrics and the flat chart
// arrays. Read-only, cheap enough to run per request.
func (s *ReportService) Analytics(ctx context.Context) (*model.Analytics, error) {
	var interns []model.User
	err := s.db.WithContext(ctx).
		Where("role = ?", model.RoleMember).
		Preload("Entries").
		Order("id").
		Find(&interns).Error
	if err != nil {
		return nil, fmt.Errorf("load members: %w", err)
	}

	var posts []string
	seen := make(map[string]bool)
	for _, in := range interns {
		if in.Post != "" && !seen[in.Post] {
			seen[in.Post] = true
			posts = append(posts, in.Post)
		}
	}

	out := &model.Analytics{
		Teams: make([]model.TeamReport, 0, len(posts)),
		Chart: model.ChartData{
			Labels:       make([]string, 0, len(posts)),
			Targets:      make([]int, 0, len(posts)),
			Achievements: make([]int, 0, len(posts)),
			Distribution: make([]int, 0, len(posts)),
		},
	}

	for _, post := range posts {
		var members []model.User
		var entries []model.Entry
		for _, in := range interns {
			if in.Post == post {
				members = append(members, in)
				entries = append(entries, in.Entries...)
			}
		}

		achieved := 0
		for _, e := range entries {
			achieved += e.TotalEnrollments
		}
		target := len(members) * TargetPerIntern

		out.Teams = append(out.Teams, model.TeamReport{
			Post:     post,
			POC:      pickPOC(members),
			Members:  members,
			Entries:  entries,
			Target:   target,
			Achieved: achieved,
			Progress: progressPct(achieved, target),
		})

		out.Chart.Labels = append(out.Chart.Labels, post)
		out.Chart.Targets = append(out.Chart.Targets, target)
		out.Chart.Achievements = append(out.Chart.Achievements, achieved)
		out.Chart.Distribution = append(out.Chart.Distribution, achieved)
	}

	totalEnrollments, schoolLeadDB := 0, 0
	for _, in := range interns {
		for _, e := range in.Entries {
			totalEnrollments += e.TotalEnrollments
			schoolLeadDB += e.SchoolLeadDB
		}
	}
	out.Metrics = model.Metrics{
		TotalInterns:     len(interns),
		TotalEnrollments: totalEnrollments,
		OverallProgress:  progressPct(totalEnrollments, len(interns)*TargetPerIntern),
		SchoolLeadDB:     schoolLeadDB,
	}

	return out, nil
}

// pickPOC prefers the first flagged member, falling back to the first member.
func pickPOC(members []model.User) *model.User {
	if len(members) == 0 {
		return nil
	}
	for i := range members {
		if members[i].IsPOC {
			return &members[i]
		}
	}
	return &members[0]
}

// progressPct is the integer percentage, defined as 0 when there is no
// target so an empty group can never divide by zero.
func progressPct(achieved, target int) int {
	if target <= 0 {
		return 0
	}
	return achieved * 100 / target
}
