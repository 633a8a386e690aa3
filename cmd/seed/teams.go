package main

import (
	"context"

	"pms-tracker/internal/logger"
	"pms-tracker/internal/service"
)

// The standing team roster. POCs get the higher personal target; regular
// members the lower one. Names that do not resolve to a user are skipped, so
// seeding is safe to run before or after the first data import.
var standingTeams = []service.TeamSpec{
	{
		Name:    "TND",
		POCName: "Smriti Panigrahi",
		Members: []string{"Kanak Bansal", "Alishala Sai Suhitha", "Mubashshira Qureshi"},
	},
	{
		Name:    "COLLEGE COLLAB",
		POCName: "Priya Gava",
		Members: []string{"Shivani Mewada", "Shruti Malviya", "Taniya Soni"},
	},
	{
		Name:    "COMPANY COLLAB",
		POCName: "Ishvpreet Kaur",
		Members: []string{"Riya Kapoor", "Bavleen Kaur Bhandari", "Gourav"},
	},
	{
		Name:    "SCHOOL COLLAB",
		POCName: "Yatharth Sharma",
		Members: []string{"Ipshita Guha", "Namrata Kumari", "Harman Choudhary"},
	},
	{
		Name:    "RECRUITMENT",
		POCName: "Nidhi Singh",
		Members: []string{"Anshika Srivastava", "Sagar Suman", "Maninder Singh"},
	},
}

const (
	pocTarget    = 50
	memberTarget = 30
	teamTarget   = 150
)

func seedTeams(ctx context.Context, teams *service.TeamService) error {
	for _, spec := range standingTeams {
		spec.POCTarget = pocTarget
		spec.MemberTarget = memberTarget
		spec.TeamTarget = teamTarget
		team, err := teams.Ensure(ctx, spec)
		if err != nil {
			return err
		}
		logger.Info("team ensured", "team", team.Name, "id", team.ID)
	}
	return nil
}
