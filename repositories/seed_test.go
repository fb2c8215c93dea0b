package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitializeSampleData(t *testing.T) {
	store := NewMemoryStorage()
	require.NoError(t, InitializeSampleData(store, zap.NewNop()))

	users, err := store.GetAllUsers()
	require.NoError(t, err)
	assert.Len(t, users, 2)

	categories, err := store.GetAllCategories()
	require.NoError(t, err)
	assert.Len(t, categories, 7)

	// Evidence for God hangs under Why Islam
	sub, err := store.GetCategoryBySlug("evidence-for-god")
	require.NoError(t, err)
	whyIslam, err := store.GetCategoryBySlug("why-islam")
	require.NoError(t, err)
	require.NotNil(t, sub.ParentID)
	assert.Equal(t, whyIslam.ID, *sub.ParentID)

	articles, err := store.GetAllArticles()
	require.NoError(t, err)
	assert.Len(t, articles, 2)
	for _, a := range articles {
		assert.True(t, a.Published)
	}

	media, err := store.GetAllMedia()
	require.NoError(t, err)
	assert.Len(t, media, 2)

	questions, err := store.GetAllQuestions()
	require.NoError(t, err)
	assert.Len(t, questions, 2)

	libraries, err := store.GetAllLibraries()
	require.NoError(t, err)
	require.Len(t, libraries, 1)
	books, err := store.GetBooksByLibrary(libraries[0].ID)
	require.NoError(t, err)
	assert.Len(t, books, 2)
	collections, err := store.GetAllCollections()
	require.NoError(t, err)
	require.Len(t, collections, 1)
	assert.Len(t, collections[0].BookIDs, 2)
}

func TestInitializeSampleDataIsIdempotent(t *testing.T) {
	store := NewMemoryStorage()
	log := zap.NewNop()
	require.NoError(t, InitializeSampleData(store, log))
	require.NoError(t, InitializeSampleData(store, log))

	categories, err := store.GetAllCategories()
	require.NoError(t, err)
	assert.Len(t, categories, 7, "second seed run must not duplicate content")
}
