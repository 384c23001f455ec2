package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/htx-labs/transcriber-api/api/types"
	"github.com/htx-labs/transcriber-api/internal/database"
	"github.com/htx-labs/transcriber-api/internal/models"
	"github.com/htx-labs/transcriber-api/internal/services/transcripts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) (*gin.Engine, transcripts.Repository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Initialize(":memory:", false)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.AutoMigrate(&models.Transcript{}))

	repo := transcripts.NewRepository(db.DB)

	router := gin.New()
	RegisterRoutes(router, &types.Dependencies{
		DB:                db,
		TranscriptService: transcripts.NewService(repo),
	})
	return router, repo
}

func seed(t *testing.T, repo transcripts.Repository, names ...string) {
	t.Helper()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range names {
		text := "text for " + name
		createdAt := base.Add(time.Duration(i) * time.Second)
		require.NoError(t, repo.Insert(context.Background(), &models.Transcript{
			AudioFileName:   name,
			TranscribedText: &text,
			CreatedAt:       createdAt,
			UpdatedAt:       createdAt,
		}))
	}
}

func doSearch(router *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestGet_CaseInsensitiveMatch(t *testing.T) {
	router, repo := setupRouter(t)
	seed(t, repo, "Meeting_ver_1.mp3", "standup_ver_1.wav")

	w := doSearch(router, "/search?query=meeting")
	require.Equal(t, http.StatusOK, w.Code)

	var results []models.Transcript
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "Meeting_ver_1.mp3", results[0].AudioFileName)
}

func TestGet_NameDescendingOrder(t *testing.T) {
	router, repo := setupRouter(t)
	seed(t, repo, "call_ver_1.mp3", "call_ver_2.mp3", "call_ver_3.mp3")

	w := doSearch(router, "/search?query=call")
	require.Equal(t, http.StatusOK, w.Code)

	var results []models.Transcript
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.Len(t, results, 3)
	assert.Equal(t, "call_ver_3.mp3", results[0].AudioFileName)
	assert.Equal(t, "call_ver_2.mp3", results[1].AudioFileName)
	assert.Equal(t, "call_ver_1.mp3", results[2].AudioFileName)
}

func TestGet_NoMatches(t *testing.T) {
	router, repo := setupRouter(t)
	seed(t, repo, "meeting_ver_1.mp3")

	w := doSearch(router, "/search?query=podcast")
	require.Equal(t, http.StatusOK, w.Code)

	var results []models.Transcript
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	assert.Empty(t, results)
}

func TestGet_MissingQuery(t *testing.T) {
	router, _ := setupRouter(t)

	for _, target := range []string{"/search", "/search?query="} {
		w := doSearch(router, target)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)

		var resp types.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, types.StatusError, resp.Status)
	}
}
