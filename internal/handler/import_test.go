package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"pms-tracker/internal/model"
	"pms-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newUploadRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Entry{}, &model.Team{}))

	r := gin.New()
	r.POST("/api/admin/upload", NewImportHandler(service.NewImportService(db)).Upload)
	return r, db
}

func uploadRequest(t *testing.T, filename, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

const uploadHeader = "Intern Name,Email Id,Post,DOJ,Reference Number,POC," +
	"Total Enrollments,MS Azure 900,SEO Starter,SEO + SMM,DM-Crash," +
	"8Hrs Job Ready,Azure Combo,Recruitment,College DB,Client DB,School Lead DB\n"

func TestUploadCSV(t *testing.T) {
	r, db := newUploadRouter(t)

	csv := uploadHeader +
		"Alex Doe,alex@example.com,Marketing,2026-01-10,REF-1,Priya Gava,5,1,-,,0,2,1,0,3,0,4\n" +
		"Intern Name,,,,,,,,,,,,,,,,\n" + // header echo, skipped
		"Priya Gava,priya@example.com,Marketing,2026-01-02,REF-2,,7,0,0,0,0,0,0,0,0,0,0\n"

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, uploadRequest(t, "data.csv", csv))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var res model.ImportResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 2, res.Imported)
	assert.Empty(t, res.Error)

	var users, entries int64
	require.NoError(t, db.Model(&model.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&model.Entry{}).Count(&entries).Error)
	assert.EqualValues(t, 2, users)
	assert.EqualValues(t, 2, entries)
}

func TestUploadRejectsBadExtension(t *testing.T) {
	r, db := newUploadRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, uploadRequest(t, "data.txt", "whatever"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Rejected before parsing: no partial state.
	var users int64
	require.NoError(t, db.Model(&model.User{}).Count(&users).Error)
	assert.EqualValues(t, 0, users)
}

func TestUploadMissingColumnAbortsBatch(t *testing.T) {
	r, db := newUploadRouter(t)

	csv := "Intern Name,Email Id\nAlex Doe,alex@example.com\n"
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, uploadRequest(t, "data.csv", csv))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var res model.ImportResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Contains(t, res.Error, "missing column")

	var entries int64
	require.NoError(t, db.Model(&model.Entry{}).Count(&entries).Error)
	assert.EqualValues(t, 0, entries)
}
