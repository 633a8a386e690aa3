package handler

import (
	"errors"
	"net/http"

	"pms-tracker/internal/ingest"
	"pms-tracker/internal/logger"
	"pms-tracker/internal/model"
	"pms-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

type ImportHandler struct {
	importer *service.ImportService
}

func NewImportHandler(importer *service.ImportService) *ImportHandler {
	return &ImportHandler{importer: importer}
}

// Upload handles POST /api/admin/upload: parse, normalize, reconcile. The
// whole batch either lands or rolls back; the response carries how many rows
// became entries.
func (h *ImportHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return
	}
	logger.Info("upload: start", "file", fh.Filename, "size", fh.Size)

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "open upload"})
		return
	}
	defer f.Close()

	rows, err := ingest.ReadFile(fh.Filename, f)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ingest.ErrBadExtension) {
			status = http.StatusBadRequest
		}
		logger.Warn("upload: parse failed", "file", fh.Filename, "err", err)
		c.JSON(status, model.ImportResult{Error: err.Error()})
		return
	}

	recs, err := ingest.NormalizeAll(rows)
	if err != nil {
		logger.Warn("upload: normalize failed", "file", fh.Filename, "err", err)
		c.JSON(http.StatusUnprocessableEntity, model.ImportResult{Error: err.Error()})
		return
	}

	imported, err := h.importer.Import(c.Request.Context(), recs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ImportResult{Error: err.Error()})
		return
	}

	logger.Info("upload: done", "file", fh.Filename, "imported", imported)
	c.JSON(http.StatusOK, model.ImportResult{Imported: imported})
}
