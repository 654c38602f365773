package api

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JustJay7/appeal-case-manager/internal/database"
)

func TestHealthCheck(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(t, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeJSON(t, w)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "healthy", body["database"])
}

func TestCreateCaseRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/api/cases", map[string]string{
		"case_number":    "2023/00123456",
		"defendant_name": "John Citizen",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	created := decodeJSON(t, w)
	assert.Equal(t, "2023/00123456", created["case_number"])
	assert.Equal(t, "John Citizen", created["defendant_name"])
	assert.Equal(t, "Murder", created["offense_type"])
	assert.Equal(t, "NSW Supreme Court", created["court"])
	assert.Equal(t, "Open", created["status"])

	id := uint(created["id"].(float64))
	w = env.doJSON(t, http.MethodGet, fmt.Sprintf("/api/cases/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)

	fetched := decodeJSON(t, w)
	for _, field := range []string{"case_number", "defendant_name", "offense_type", "court", "status"} {
		assert.Equal(t, created[field], fetched[field], field)
	}
}

func TestCreateCaseMissingFields(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/api/cases", map[string]string{
		"case_number": "2023/1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.doJSON(t, http.MethodPost, "/api/cases", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateCaseDuplicateNumber(t *testing.T) {
	env := newTestEnv(t)
	env.createCase(t, "2023/77", "Original Defendant")

	w := env.doJSON(t, http.MethodPost, "/api/cases", map[string]string{
		"case_number":    "2023/77",
		"defendant_name": "Impostor",
	})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Case number already exists", decodeJSON(t, w)["error"])

	// Original record stays untouched
	var kase database.Case
	require.NoError(t, env.db.Where("case_number = ?", "2023/77").First(&kase).Error)
	assert.Equal(t, "Original Defendant", kase.DefendantName)

	var count int64
	env.db.Model(&database.Case{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestListCasesNewestFirstWithFilters(t *testing.T) {
	env := newTestEnv(t)

	for i, name := range []string{"Alpha Defendant", "Beta Defendant", "Gamma Person"} {
		env.createCase(t, fmt.Sprintf("2023/%d", i+1), name)
		time.Sleep(5 * time.Millisecond)
	}
	require.NoError(t, env.db.Model(&database.Case{}).
		Where("case_number = ?", "2023/2").
		Update("status", "Closed").Error)

	w := env.doJSON(t, http.MethodGet, "/api/cases", nil)
	require.Equal(t, http.StatusOK, w.Code)
	cases := decodeJSONList(t, w)
	require.Len(t, cases, 3)
	assert.Equal(t, "2023/3", cases[0]["case_number"])
	assert.Equal(t, "2023/1", cases[2]["case_number"])

	w = env.doJSON(t, http.MethodGet, "/api/cases?status=Closed", nil)
	cases = decodeJSONList(t, w)
	require.Len(t, cases, 1)
	assert.Equal(t, "2023/2", cases[0]["case_number"])

	w = env.doJSON(t, http.MethodGet, "/api/cases?search=Gamma", nil)
	cases = decodeJSONList(t, w)
	require.Len(t, cases, 1)
	assert.Equal(t, "Gamma Person", cases[0]["defendant_name"])
}

func TestUpdateCaseWhitelistAndTimestampBump(t *testing.T) {
	env := newTestEnv(t)
	id := env.createCase(t, "2023/5", "Jane Doe")

	time.Sleep(5 * time.Millisecond)

	w := env.doJSON(t, http.MethodPut, fmt.Sprintf("/api/cases/%d", id), map[string]string{
		"status": "Under Appeal",
		"court":  "NSW Court of Criminal Appeal",
	})
	require.Equal(t, http.StatusOK, w.Code)

	updated := decodeJSON(t, w)
	assert.Equal(t, "Under Appeal", updated["status"])
	assert.Equal(t, "NSW Court of Criminal Appeal", updated["court"])
	assert.Equal(t, "Jane Doe", updated["defendant_name"])

	createdAt, err := time.Parse(time.RFC3339, updated["created_at"].(string))
	require.NoError(t, err)
	updatedAt, err := time.Parse(time.RFC3339, updated["updated_at"].(string))
	require.NoError(t, err)
	assert.True(t, updatedAt.After(createdAt))
}

func TestGetCaseNotFound(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(t, http.MethodGet, "/api/cases/999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Case not found", decodeJSON(t, w)["error"])
}

func TestDeleteCaseCascades(t *testing.T) {
	env := newTestEnv(t)
	id := env.createCase(t, "2023/9", "Cascade Target")

	w := env.upload(t, fmt.Sprintf("/api/cases/%d/documents", id), "brief.txt", "trial brief", "Trial Brief", "brief")
	require.Equal(t, http.StatusCreated, w.Code)
	filePath := decodeJSON(t, w)["file_path"].(string)
	require.FileExists(t, filePath)

	w = env.doJSON(t, http.MethodPost, fmt.Sprintf("/api/cases/%d/timeline", id), map[string]interface{}{
		"event_date":  "2023-03-01",
		"event_type":  "Sentencing",
		"description": "Sentence handed down",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.doJSON(t, http.MethodPost, fmt.Sprintf("/api/cases/%d/analyze", id), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.doJSON(t, http.MethodPost, fmt.Sprintf("/api/cases/%d/reports", id), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.doJSON(t, http.MethodDelete, fmt.Sprintf("/api/cases/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)

	for _, model := range []interface{}{
		&database.Case{}, &database.Document{}, &database.TimelineEvent{},
		&database.LegalAnalysis{}, &database.BarristerReport{},
	} {
		var count int64
		env.db.Model(model).Count(&count)
		assert.EqualValues(t, 0, count, fmt.Sprintf("%T", model))
	}

	_, err := os.Stat(filePath)
	assert.True(t, os.IsNotExist(err), "uploaded file should be removed")
}

func TestDeleteCaseFileCleanupBestEffort(t *testing.T) {
	env := newTestEnv(t)
	id := env.createCase(t, "2023/10", "Missing File")

	w := env.upload(t, fmt.Sprintf("/api/cases/%d/documents", id), "notes.txt", "case notes", "Case Notes", "case_notes")
	require.Equal(t, http.StatusCreated, w.Code)
	filePath := decodeJSON(t, w)["file_path"].(string)

	// Remove the file out-of-band; cascade delete must still succeed.
	require.NoError(t, os.Remove(filePath))

	w = env.doJSON(t, http.MethodDelete, fmt.Sprintf("/api/cases/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)

	entries, err := filepath.Glob(filepath.Join(env.cfg.UploadDir, "case_*", "*"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}
