package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pms-tracker/internal/ingest"
	"pms-tracker/internal/logger"
	"pms-tracker/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the placeholder credential for users the import creates;
// interns are expected to change it on first login.
const DefaultPassword = "password123"

type ImportService struct {
	db *gorm.DB
}

func NewImportService(db *gorm.DB) *ImportService { return &ImportService{db: db} }

// Import applies one file's normalized records as a single transaction.
// Users are matched by exact display name and created on first sight; every
// record becomes an entry dated today. A second pass flags users named in the
// POC column. Any failure rolls the whole batch back and reports 0 imported.
func (s *ImportService) Import(ctx context.Context, recs []ingest.Record) (int, error) {
	imported := 0
	today := time.Now().Format("2006-01-02")

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Within-batch cache so later rows for the same intern reuse the
		// provisional user before anything commits.
		byName := make(map[string]*model.User)
		pocNames := make(map[string]bool)

		for i, rec := range recs {
			user, err := s.findOrCreate(tx, byName, rec)
			if err != nil {
				return fmt.Errorf("record %d (%s): %w", i+1, rec.Name, err)
			}

			entry := model.Entry{
				UserID:          user.ID,
				Date:            today,
				POC:             rec.POCName,
				InternName:      rec.Name,
				Post:            rec.Post,
				DOJ:             rec.DOJ,
				ReferenceNumber: rec.ReferenceNumber,
				EmailID:         rec.Email,

				TotalEnrollments: rec.TotalEnrollments,
				MSAzure900:       rec.MSAzure900,
				SEOStarter:       rec.SEOStarter,
				SEOSMM:           rec.SEOSMM,
				DMCrash:          rec.DMCrash,
				JobReady:         rec.JobReady,
				AzureCombo:       rec.AzureCombo,
				Recruitment:      rec.Recruitment,
				CollegeDB:        rec.CollegeDB,
				ClientDB:         rec.ClientDB,
				SchoolLeadDB:     rec.SchoolLeadDB,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return fmt.Errorf("record %d (%s): insert entry: %w", i+1, rec.Name, err)
			}

			if rec.POCName != "" {
				pocNames[rec.POCName] = true
			}
			imported++
		}

		// Second pass: the POC flag is monotonic, set but never unset.
		for name := range pocNames {
			var u model.User
			err := tx.Where("name = ?", name).First(&u).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			if err != nil {
				return fmt.Errorf("lookup poc %q: %w", name, err)
			}
			if !u.IsPOC {
				if err := tx.Model(&u).Update("is_poc", true).Error; err != nil {
					return fmt.Errorf("flag poc %q: %w", name, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		logger.Warn("import rolled back", "err", err)
		return 0, err
	}

	logger.Info("import done", "imported", imported)
	return imported, nil
}

func (s *ImportService) findOrCreate(tx *gorm.DB, byName map[string]*model.User, rec ingest.Record) (*model.User, error) {
	if u, ok := byName[rec.Name]; ok {
		return u, nil
	}

	var u model.User
	err := tx.Where("name = ?", rec.Name).First(&u).Error
	if err == nil {
		byName[rec.Name] = &u
		return &u, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u = model.User{
		Username:        ingest.DeriveUsername(rec.Name, rec.Email),
		PasswordHash:    string(hash),
		Role:            model.RoleMember,
		Name:            rec.Name,
		Email:           rec.Email,
		Post:            rec.Post,
		DOJ:             rec.DOJ,
		ReferenceNumber: rec.ReferenceNumber,
		POCName:         rec.POCName,
		IsPOC:           false,
	}
	if err := tx.Create(&u).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	byName[rec.Name] = &u
	return &u, nil
}
