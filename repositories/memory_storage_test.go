package repositories

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daleel-cms/models"
)

func testArticle(slug string) models.InsertArticle {
	return models.InsertArticle{
		TitleEn:    "Title " + slug,
		ContentEn:  "Content",
		Slug:       slug,
		Type:       "evidence",
		CategoryID: 1,
		Published:  true,
		AddedBy:    1,
	}
}

func TestIDsNeverReused(t *testing.T) {
	store := NewMemoryStorage()

	first, err := store.AddCategory(models.InsertCategory{NameEn: "First", Slug: "first", CreatedBy: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)

	require.NoError(t, store.DeleteCategory(first.ID))

	second, err := store.AddCategory(models.InsertCategory{NameEn: "Second", Slug: "second", CreatedBy: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID, "deleted ids must not be handed out again")
}

func TestCreateUserDefaults(t *testing.T) {
	store := NewMemoryStorage()

	u, err := store.CreateUser(models.InsertUser{
		Username:       "aisha",
		Password:       "secret",
		Name:           "Aisha",
		Email:          "aisha@example.com",
		AvatarInitials: "AI",
		AvatarColor:    "#333333",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, u.Role)
	assert.False(t, u.Online)
	assert.False(t, u.CreatedAt.IsZero())
}

func TestAddCategoryDefaultsIcon(t *testing.T) {
	store := NewMemoryStorage()

	c, err := store.AddCategory(models.InsertCategory{NameEn: "Plain", Slug: "plain", CreatedBy: 1})
	require.NoError(t, err)
	assert.Equal(t, "folder", c.Icon)
	assert.Nil(t, c.ParentID)
}

func TestMissingRecordsReturnErrNotFound(t *testing.T) {
	store := NewMemoryStorage()

	_, err := store.GetUser(42)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.GetArticleBySlug("nope")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.UpdateCategory(42, map[string]interface{}{"name_en": "x"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.DeleteQuestion(42), ErrNotFound)
	_, err = store.GetCollection(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIncrementArticleView(t *testing.T) {
	store := NewMemoryStorage()

	a, err := store.AddArticle(testArticle("views"))
	require.NoError(t, err)
	assert.Equal(t, 0, a.Views)

	for i := 0; i < 3; i++ {
		_, err = store.IncrementArticleView(a.ID)
		require.NoError(t, err)
	}

	got, err := store.GetArticle(a.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Views)
	assert.Equal(t, a.UpdatedAt, got.UpdatedAt, "view increments must not touch updatedAt")
}

func TestUpdateArticlePatchesOnlyGivenFields(t *testing.T) {
	store := NewMemoryStorage()

	a, err := store.AddArticle(testArticle("patch-me"))
	require.NoError(t, err)

	updated, err := store.UpdateArticle(a.ID, map[string]interface{}{"title_en": "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.TitleEn)
	assert.Equal(t, a.ContentEn, updated.ContentEn)
	assert.Equal(t, a.Slug, updated.Slug)
	assert.False(t, updated.UpdatedAt.Before(a.UpdatedAt))
}

func TestDeleteCategoryCascadesOneLevel(t *testing.T) {
	store := NewMemoryStorage()

	root, err := store.AddCategory(models.InsertCategory{NameEn: "Root", Slug: "root", CreatedBy: 1})
	require.NoError(t, err)
	child, err := store.AddCategory(models.InsertCategory{NameEn: "Child", Slug: "child", ParentID: &root.ID, CreatedBy: 1})
	require.NoError(t, err)
	grandchild, err := store.AddCategory(models.InsertCategory{NameEn: "Grandchild", Slug: "grandchild", ParentID: &child.ID, CreatedBy: 1})
	require.NoError(t, err)

	require.NoError(t, store.DeleteCategory(root.ID))

	_, err = store.GetCategory(root.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.GetCategory(child.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// the cascade stops at direct children
	survivor, err := store.GetCategory(grandchild.ID)
	require.NoError(t, err)
	assert.Equal(t, child.ID, *survivor.ParentID)
}

func TestQuestionLifecycle(t *testing.T) {
	store := NewMemoryStorage()

	q, err := store.AddQuestion(models.InsertQuestion{QuestionEn: "Why?"})
	require.NoError(t, err)
	assert.Equal(t, models.QuestionPending, q.Status)
	assert.Nil(t, q.ResponseArticleID)

	articleID := 7
	answered, err := store.UpdateQuestionStatus(q.ID, models.QuestionAnswered, &articleID)
	require.NoError(t, err)
	assert.Equal(t, models.QuestionAnswered, answered.Status)
	require.NotNil(t, answered.ResponseArticleID)
	assert.Equal(t, 7, *answered.ResponseArticleID)

	rejected, err := store.UpdateQuestionStatus(q.ID, models.QuestionRejected, nil)
	require.NoError(t, err)
	assert.Nil(t, rejected.ResponseArticleID, "a nil article id resets the link")
}

func TestListingIsOrderedByID(t *testing.T) {
	store := NewMemoryStorage()

	for _, slug := range []string{"a", "b", "c"} {
		_, err := store.AddArticle(testArticle(slug))
		require.NoError(t, err)
	}

	articles, err := store.GetAllArticles()
	require.NoError(t, err)
	require.Len(t, articles, 3)
	assert.Equal(t, []int{articles[0].ID, articles[1].ID, articles[2].ID}, []int{1, 2, 3})
}

func TestSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	store := NewMemoryStorage()
	a, err := store.AddArticle(testArticle("kept"))
	require.NoError(t, err)
	doomed, err := store.AddArticle(testArticle("doomed"))
	require.NoError(t, err)
	require.NoError(t, store.DeleteArticle(doomed.ID))
	_, err = store.AddQuestion(models.InsertQuestion{QuestionEn: "Persists?"})
	require.NoError(t, err)

	require.NoError(t, store.SaveSnapshot(path))

	restored := NewMemoryStorage()
	require.NoError(t, restored.LoadSnapshot(path))

	got, err := restored.GetArticle(a.ID)
	require.NoError(t, err)
	assert.Equal(t, "kept", got.Slug)
	_, err = restored.GetArticle(doomed.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	questions, err := restored.GetAllQuestions()
	require.NoError(t, err)
	assert.Len(t, questions, 1)

	// counters travel with the snapshot, so ids issued before the
	// restart stay burned
	next, err := restored.AddArticle(testArticle("after-restart"))
	require.NoError(t, err)
	assert.Equal(t, 3, next.ID)
}

func TestLoadSnapshotMissingFileIsNoop(t *testing.T) {
	store := NewMemoryStorage()
	require.NoError(t, store.LoadSnapshot(filepath.Join(t.TempDir(), "absent.json")))

	users, err := store.GetAllUsers()
	require.NoError(t, err)
	assert.Empty(t, users)
}
