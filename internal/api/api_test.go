package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/JustJay7/appeal-case-manager/internal/config"
	"github.com/JustJay7/appeal-case-manager/internal/database"
	"github.com/JustJay7/appeal-case-manager/internal/extract"
	"github.com/JustJay7/appeal-case-manager/internal/storage"
	"github.com/JustJay7/appeal-case-manager/pkg/logger"
)

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	log, err := logger.NewLogger("error", "json")
	require.NoError(t, err)

	cfg := &config.Config{
		Env:               "development",
		SecretKey:         "test-secret-key",
		UploadDir:         t.TempDir(),
		MaxUploadSize:     50 * 1024 * 1024,
		AllowedExtensions: []string{"pdf", "docx", "txt"},
		TokenTTL:          time.Hour,
	}

	store, err := storage.New(cfg.UploadDir, log)
	require.NoError(t, err)

	router := gin.New()
	SetupRoutes(router, db, store, extract.New(log), log, cfg)

	return &testEnv{router: router, db: db, cfg: cfg}
}

func (env *testEnv) doJSON(t *testing.T, method, path string, body interface{}, headers ...http.Header) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, values := range h {
			for _, v := range values {
				req.Header.Add(key, v)
			}
		}
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func (env *testEnv) upload(t *testing.T, path, filename, content, title, documentType string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)

	if title != "" {
		require.NoError(t, writer.WriteField("title", title))
	}
	if documentType != "" {
		require.NoError(t, writer.WriteField("document_type", documentType))
	}
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func decodeJSONList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func (env *testEnv) createCase(t *testing.T, caseNumber, defendant string) uint {
	t.Helper()
	w := env.doJSON(t, http.MethodPost, "/api/cases", map[string]string{
		"case_number":    caseNumber,
		"defendant_name": defendant,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeJSON(t, w)
	return uint(body["id"].(float64))
}
