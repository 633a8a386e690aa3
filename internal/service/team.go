package service

import (
	"context"
	"errors"
	"fmt"

	"pms-tracker/internal/logger"
	"pms-tracker/internal/model"

	"gorm.io/gorm"
)

type TeamService struct {
	db *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService { return &TeamService{db: db} }

// TeamSpec describes a team to ensure: its point of contact and members are
// display names, matched against existing users; unknown names are skipped.
type TeamSpec struct {
	Name         string   `json:"name"`
	POCName      string   `json:"poc_name"`
	Members      []string `json:"members"`
	POCTarget    int      `json:"poc_target"`
	MemberTarget int      `json:"member_target"`
	TeamTarget   int      `json:"team_target"`
}

// Ensure creates the team if missing and wires up its POC and members.
func (s *TeamService) Ensure(ctx context.Context, spec TeamSpec) (*model.Team, error) {
	var team model.Team
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("name = ?", spec.Name).First(&team).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			team = model.Team{Name: spec.Name, Target: spec.TeamTarget}
			if err := tx.Create(&team).Error; err != nil {
				return fmt.Errorf("create team: %w", err)
			}
		} else if err != nil {
			return fmt.Errorf("lookup team: %w", err)
		}

		if spec.POCName != "" {
			var poc model.User
			err := tx.Where("name = ?", spec.POCName).First(&poc).Error
			if err == nil {
				updates := map[string]interface{}{
					"is_poc":  true,
					"team_id": team.ID,
				}
				if spec.POCTarget > 0 {
					updates["target"] = spec.POCTarget
				}
				if err := tx.Model(&poc).Updates(updates).Error; err != nil {
					return fmt.Errorf("assign poc: %w", err)
				}
				if err := tx.Model(&team).Update("poc_id", poc.ID).Error; err != nil {
					return fmt.Errorf("set team poc: %w", err)
				}
				logger.Info("team poc assigned", "team", team.Name, "poc", poc.Name)
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("lookup poc: %w", err)
			}
		}

		for _, name := range spec.Members {
			var member model.User
			err := tx.Where("name = ?", name).First(&member).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			if err != nil {
				return fmt.Errorf("lookup member %q: %w", name, err)
			}
			updates := map[string]interface{}{"team_id": team.ID}
			if spec.MemberTarget > 0 {
				updates["target"] = spec.MemberTarget
			}
			if err := tx.Model(&member).Updates(updates).Error; err != nil {
				return fmt.Errorf("assign member %q: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (s *TeamService) List(ctx context.Context) ([]model.Team, error) {
	var teams []model.Team
	if err := s.db.WithContext(ctx).Order("id").Find(&teams).Error; err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

// Members lists the users assigned to a team.
func (s *TeamService) Members(ctx context.Context, teamID int) ([]model.User, error) {
	var users []model.User
	err := s.db.WithContext(ctx).Where("team_id = ?", teamID).Order("id").Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	return users, nil
}
