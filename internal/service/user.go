package service

import (
	"context"
	"errors"
	"fmt"

	"pms-tracker/internal/logger"
	"pms-tracker/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrRootAdmin     = errors.New("cannot delete the admin user")
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidRole   = errors.New("role must be admin or member")
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService { return &UserService{db: db} }

type UserInput struct {
	Username string
	Password string
	Role     string
	Name     string
	Email    string
	Post     string
}

func (s *UserService) Create(ctx context.Context, in UserInput) (*model.User, error) {
	if in.Role != model.RoleAdmin && in.Role != model.RoleMember {
		return nil, ErrInvalidRole
	}
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.User{}).
		Where("username = ?", in.Username).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := model.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         in.Role,
		Name:         in.Name,
		Email:        in.Email,
		Post:         in.Post,
	}
	if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	logger.Info("user created", "uid", u.ID, "username", u.Username, "role", u.Role)
	return &u, nil
}

func (s *UserService) Update(ctx context.Context, id int, in UserInput) (*model.User, error) {
	var u model.User
	if err := s.db.WithContext(ctx).First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	updates := map[string]interface{}{
		"username": in.Username,
		"role":     in.Role,
		"name":     in.Name,
		"email":    in.Email,
	}
	if in.Post != "" {
		updates["post"] = in.Post
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		updates["password_hash"] = string(hash)
	}
	if err := s.db.WithContext(ctx).Model(&u).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return &u, nil
}

// Delete removes a user and their entries. The root admin account is
// protected.
func (s *UserService) Delete(ctx context.Context, id int) error {
	var u model.User
	if err := s.db.WithContext(ctx).First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("load user: %w", err)
	}
	if u.Username == model.RootAdminUsername {
		return ErrRootAdmin
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", u.ID).Delete(&model.Entry{}).Error; err != nil {
			return fmt.Errorf("delete entries: %w", err)
		}
		if err := tx.Delete(&u).Error; err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		logger.Info("user deleted", "uid", u.ID, "username", u.Username)
		return nil
	})
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := s.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *UserService) Interns(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := s.db.WithContext(ctx).Where("role = ?", model.RoleMember).Order("id").Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("list interns: %w", err)
	}
	return users, nil
}

// ResetData wipes every entry and every member account; admins survive.
func (s *UserService) ResetData(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.Entry{}).Error; err != nil {
			return fmt.Errorf("delete entries: %w", err)
		}
		if err := tx.Where("role = ?", model.RoleMember).Delete(&model.User{}).Error; err != nil {
			return fmt.Errorf("delete members: %w", err)
		}
		logger.Warn("all tracking data reset")
		return nil
	})
}

// ApplyDefaultTargets stamps the standing category targets on every member.
// Human Resources carries a recruitment target the other posts do not.
func (s *UserService) ApplyDefaultTargets(ctx context.Context) (int, error) {
	var interns []model.User
	if err := s.db.WithContext(ctx).Where("role = ?", model.RoleMember).Find(&interns).Error; err != nil {
		return 0, fmt.Errorf("list interns: %w", err)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, in := range interns {
			recruitment := 0
			if in.Post == "Human Resources" {
				recruitment = 10
			}
			updates := map[string]interface{}{
				"tnd_total_target":      10,
				"recruitment_target":    recruitment,
				"college_db_target":     10,
				"client_db_target":      5,
				"school_lead_db_target": 50,
			}
			if err := tx.Model(&model.User{}).Where("id = ?", in.ID).Updates(updates).Error; err != nil {
				return fmt.Errorf("update targets for %d: %w", in.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	logger.Info("default targets applied", "interns", len(interns))
	return len(interns), nil
}
