package main

import (
	"flag"
	"log/slog"
	"os"

	"pms-tracker/internal/config"
	"pms-tracker/internal/handler"
	"pms-tracker/internal/logger"
	"pms-tracker/internal/middleware"
	"pms-tracker/internal/model"
	"pms-tracker/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)
	middleware.SetSecret(cfg.Auth.JWTSecret)

	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Entry{}, &model.Team{}); err != nil {
		slog.Error("migrate failed", "err", err)
		os.Exit(1)
	}

	authSvc := service.NewAuthService(db)
	userSvc := service.NewUserService(db)
	dailySvc := service.NewDailyService(db)
	reportSvc := service.NewReportService(db)
	teamSvc := service.NewTeamService(db)
	importSvc := service.NewImportService(db)

	authH := handler.NewAuthHandler(authSvc)
	adminH := handler.NewAdminHandler(userSvc, dailySvc, reportSvc, teamSvc)
	dailyH := handler.NewDailyHandler(dailySvc)
	importH := handler.NewImportHandler(importSvc)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.POST("/api/login", authH.Login)

	admin := r.Group("/api/admin", middleware.JWTAuth(), middleware.RequireRole(model.RoleAdmin))
	admin.GET("/analytics", adminH.Analytics)
	admin.GET("/reports", adminH.Reports)
	admin.POST("/upload", importH.Upload)
	admin.POST("/reset", adminH.ResetData)
	admin.GET("/users", adminH.ListUsers)
	admin.POST("/users", adminH.CreateUser)
	admin.PUT("/users/:id", adminH.UpdateUser)
	admin.DELETE("/users/:id", adminH.DeleteUser)
	admin.POST("/targets/defaults", adminH.ApplyDefaultTargets)
	admin.GET("/teams", adminH.ListTeams)
	admin.POST("/teams", adminH.EnsureTeam)

	member := r.Group("/api/daily", middleware.JWTAuth(), middleware.RequireRole(model.RoleMember))
	member.POST("", dailyH.Submit)
	member.GET("/today", dailyH.Today)
	member.GET("/history", dailyH.History)

	slog.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
