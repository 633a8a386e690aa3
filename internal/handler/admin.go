package handler

import (
	"errors"
	"net/http"
	"strconv"

	"pms-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	users   *service.UserService
	daily   *service.DailyService
	reports *service.ReportService
	teams   *service.TeamService
}

func NewAdminHandler(users *service.UserService, daily *service.DailyService, reports *service.ReportService, teams *service.TeamService) *AdminHandler {
	return &AdminHandler{users: users, daily: daily, reports: reports, teams: teams}
}

// GET /api/admin/analytics
func (h *AdminHandler) Analytics(c *gin.Context) {
	out, err := h.reports.Analytics(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

type userRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password"`
	Role     string `json:"role" binding:"required"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Post     string `json:"post"`
}

// POST /api/admin/users
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password required"})
		return
	}
	u, err := h.users.Create(c.Request.Context(), service.UserInput{
		Username: req.Username, Password: req.Password, Role: req.Role,
		Name: req.Name, Email: req.Email, Post: req.Post,
	})
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, u)
}

// PUT /api/admin/users/:id
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	u, err := h.users.Update(c.Request.Context(), id, service.UserInput{
		Username: req.Username, Password: req.Password, Role: req.Role,
		Name: req.Name, Email: req.Email, Post: req.Post,
	})
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, u)
}

// DELETE /api/admin/users/:id
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GET /api/admin/reports?user_id=&section=&start_date=&end_date=
func (h *AdminHandler) Reports(c *gin.Context) {
	userID, _ := strconv.Atoi(c.Query("user_id"))
	entries, err := h.daily.Entries(c.Request.Context(), service.EntryFilter{
		UserID:    userID,
		Section:   c.Query("section"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// POST /api/admin/reset
func (h *AdminHandler) ResetData(c *gin.Context) {
	if err := h.users.ResetData(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// POST /api/admin/targets/defaults
func (h *AdminHandler) ApplyDefaultTargets(c *gin.Context) {
	n, err := h.users.ApplyDefaultTargets(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": n})
}

// GET /api/admin/teams
func (h *AdminHandler) ListTeams(c *gin.Context) {
	teams, err := h.teams.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, teams)
}

// POST /api/admin/teams
func (h *AdminHandler) EnsureTeam(c *gin.Context) {
	var spec service.TeamSpec
	if err := c.ShouldBindJSON(&spec); err != nil || spec.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	team, err := h.teams.Ensure(c.Request.Context(), spec)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, team)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrRootAdmin),
		errors.Is(err, service.ErrInvalidRole):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
