package handler

import (
	"net/http"

	"pms-tracker/internal/model"
	"pms-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

type DailyHandler struct {
	daily *service.DailyService
}

func NewDailyHandler(daily *service.DailyService) *DailyHandler {
	return &DailyHandler{daily: daily}
}

type submitRequest struct {
	Section  string         `json:"section" binding:"required"`
	Counters model.Counters `json:"counters"`
}

// POST /api/daily — one section per day; resubmission updates in place.
func (h *DailyHandler) Submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	entry, err := h.daily.Submit(c.Request.Context(), c.GetInt("user_id"), req.Section, req.Counters)
	if err != nil {
		if err == service.ErrInvalidSection {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// GET /api/daily/today
func (h *DailyHandler) Today(c *gin.Context) {
	bySection, err := h.daily.TodayBySection(c.Request.Context(), c.GetInt("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sections": service.Sections, "entries": bySection})
}

// GET /api/daily/history?section=&start_date=&end_date=
func (h *DailyHandler) History(c *gin.Context) {
	entries, err := h.daily.History(c.Request.Context(), c.GetInt("user_id"), service.EntryFilter{
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
