package main

import (
	"context"
	"flag"
	"log"

	"pms-tracker/internal/config"
	"pms-tracker/internal/logger"
	"pms-tracker/internal/model"
	"pms-tracker/internal/service"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	configFile := flag.String("config", "etc/config-dev.yaml", "config file")
	adminPass := flag.String("admin-pass", "admin123", "root admin password (only used on first run)")
	withTeams := flag.Bool("teams", true, "seed the standing teams")
	withTargets := flag.Bool("targets", false, "apply default category targets to all members")
	flag.Parse()

	logger.Init(config.LogConfig{Level: "info", Console: true})

	cfg := config.Load(*configFile)
	db, err := cfg.OpenGormDB()
	if err != nil {
		log.Fatal("db connect failed: ", err)
	}
	ctx := context.Background()

	if err := db.AutoMigrate(&model.User{}, &model.Entry{}, &model.Team{}); err != nil {
		log.Fatal("migrate failed: ", err)
	}

	if err := ensureRootAdmin(db, *adminPass); err != nil {
		log.Fatal("root admin: ", err)
	}

	if *withTeams {
		if err := seedTeams(ctx, service.NewTeamService(db)); err != nil {
			log.Fatal("seed teams failed: ", err)
		}
	}

	if *withTargets {
		n, err := service.NewUserService(db).ApplyDefaultTargets(ctx)
		if err != nil {
			log.Fatal("apply targets failed: ", err)
		}
		logger.Info("targets applied", "interns", n)
	}

	logger.Info("=== all done ===")
}

func ensureRootAdmin(db *gorm.DB, password string) error {
	var count int64
	if err := db.Model(&model.User{}).
		Where("username = ?", model.RootAdminUsername).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Info("root admin already exists")
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u := model.User{
		Username:     model.RootAdminUsername,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
		Name:         "Administrator",
	}
	if err := db.Create(&u).Error; err != nil {
		return err
	}
	logger.Info("root admin created", "uid", u.ID)
	return nil
}
