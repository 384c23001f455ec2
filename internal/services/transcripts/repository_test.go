package transcripts

import (
	"context"
	"testing"
	"time"

	"github.com/htx-labs/transcriber-api/internal/database"
	"github.com/htx-labs/transcriber-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) Repository {
	t.Helper()

	db, err := database.Initialize(":memory:", false)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.AutoMigrate(&models.Transcript{}))
	return NewRepository(db.DB)
}

func insertNamed(t *testing.T, repo Repository, name, text string, createdAt time.Time) *models.Transcript {
	t.Helper()

	transcript := &models.Transcript{
		AudioFileName:   name,
		TranscribedText: &text,
		CreatedAt:       createdAt,
		UpdatedAt:       createdAt,
	}
	require.NoError(t, repo.Insert(context.Background(), transcript))
	return transcript
}

func TestRepository_ExistsExact(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	insertNamed(t, repo, "test_ver_1.mp3", "hello", time.Now().UTC())

	exists, err := repo.ExistsExact(ctx, "test_ver_1.mp3")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsExact(ctx, "test_ver_2.mp3")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRepository_Insert_DuplicateName(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	insertNamed(t, repo, "test_ver_1.mp3", "first", time.Now().UTC())

	text := "second"
	err := repo.Insert(ctx, &models.Transcript{
		AudioFileName:   "test_ver_1.mp3",
		TranscribedText: &text,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNameTaken)
}

func TestRepository_FindLatestByPrefix(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	insertNamed(t, repo, "test_ver_1.mp3", "v1", base)
	insertNamed(t, repo, "test_ver_2.mp3", "v2", base.Add(time.Minute))
	insertNamed(t, repo, "other_ver_1.mp3", "other", base.Add(2*time.Minute))

	t.Run("newest matching row wins", func(t *testing.T) {
		found, err := repo.FindLatestByPrefix(ctx, "test")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "test_ver_2.mp3", found.AudioFileName)
	})

	t.Run("no match returns nil without error", func(t *testing.T) {
		found, err := repo.FindLatestByPrefix(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("literal underscore does not act as wildcard", func(t *testing.T) {
		insertNamed(t, repo, "testx_ver_1.mp3", "x", base.Add(3*time.Minute))

		// "test_" must not match "testx"
		found, err := repo.FindLatestByPrefix(ctx, "test_")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "test_ver_2.mp3", found.AudioFileName)
	})
}

func TestRepository_ListAll_NewestFirst(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	insertNamed(t, repo, "audio1_ver_1.mp3", "one", base)
	insertNamed(t, repo, "audio2_ver_1.mp3", "two", base.Add(time.Minute))
	insertNamed(t, repo, "audio3_ver_1.mp3", "three", base.Add(2*time.Minute))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "audio3_ver_1.mp3", all[0].AudioFileName)
	assert.Equal(t, "audio2_ver_1.mp3", all[1].AudioFileName)
	assert.Equal(t, "audio1_ver_1.mp3", all[2].AudioFileName)
}

func TestRepository_Search(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	insertNamed(t, repo, "audio1_ver_1.mp3", "first text", base)
	insertNamed(t, repo, "audio2_ver_1.mp3", "second text", base.Add(time.Minute))

	t.Run("exact substring", func(t *testing.T) {
		results, err := repo.Search(ctx, "audio1")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "audio1_ver_1.mp3", results[0].AudioFileName)
		require.NotNil(t, results[0].TranscribedText)
		assert.Equal(t, "first text", *results[0].TranscribedText)
	})

	t.Run("case insensitive", func(t *testing.T) {
		results, err := repo.Search(ctx, "AUDIO2")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "audio2_ver_1.mp3", results[0].AudioFileName)
	})

	t.Run("no match returns empty", func(t *testing.T) {
		results, err := repo.Search(ctx, "nonexistent")
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("ordered by name descending", func(t *testing.T) {
		results, err := repo.Search(ctx, "audio")
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "audio2_ver_1.mp3", results[0].AudioFileName)
		assert.Equal(t, "audio1_ver_1.mp3", results[1].AudioFileName)
	})
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `test\_2`, escapeLike("test_2"))
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\\b`, escapeLike(`a\b`))
}
