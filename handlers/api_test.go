package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"daleel-cms/handlers"
	"daleel-cms/helper"
	"daleel-cms/models"
	"daleel-cms/repositories"
	"daleel-cms/routes"
	"daleel-cms/services"
)

func newTestRouter(t *testing.T) (*gin.Engine, *repositories.MemoryStorage) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repositories.NewMemoryStorage()
	h := helper.NewHTTPHelper()
	log := zap.NewNop()

	router := gin.New()
	routes.Setup(router, routes.Handlers{
		Users:      handlers.NewUserHandler(services.NewUserService(store), h, log),
		Categories: handlers.NewCategoryHandler(services.NewCategoryService(store), h, log),
		Articles:   handlers.NewArticleHandler(services.NewArticleService(store), h, log),
		Media:      handlers.NewMediaHandler(services.NewMediaService(store), h, log),
		Questions:  handlers.NewQuestionHandler(services.NewQuestionService(store), h, log),
		Bookshelf:  handlers.NewBookshelfHandler(services.NewBookshelfService(store), h, log),
	})
	return router, store
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestSubmitQuestion(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/questions", gin.H{
		"question_en": "Is fasting obligatory while travelling?",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "pending", body["status"])
	val, ok := body["responseArticleId"]
	assert.True(t, ok)
	assert.Nil(t, val)
}

func TestSubmitQuestionRequiresQuestionText(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/questions", gin.H{"name": "Ali"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["message"], "question_en")
}

func TestUpdateQuestionStatusRejectsUnknownStatus(t *testing.T) {
	router, store := newTestRouter(t)
	q, err := store.AddQuestion(models.InsertQuestion{QuestionEn: "Q?"})
	require.NoError(t, err)

	rec := doRequest(t, router, http.MethodPatch, "/api/questions/1/status", gin.H{"status": "archived"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	articleID := 3
	rec = doRequest(t, router, http.MethodPatch, "/api/questions/1/status", gin.H{
		"status":            "answered",
		"responseArticleId": articleID,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "answered", body["status"])
	assert.Equal(t, float64(articleID), body["responseArticleId"])

	got, err := store.GetQuestion(q.ID)
	require.NoError(t, err)
	assert.Equal(t, "answered", got.Status)
}

func TestGetArticleBySlugNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/articles/slug/does-not-exist", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Article not found", decodeBody(t, rec)["message"])
}

func TestMalformedIDFallsThroughToNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/articles/abc", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetArticleIncrementsViews(t *testing.T) {
	router, store := newTestRouter(t)
	a, err := store.AddArticle(models.InsertArticle{
		TitleEn: "Read me", ContentEn: "Body", Slug: "read-me",
		Type: "faq", CategoryID: 1, Published: true, AddedBy: 1,
	})
	require.NoError(t, err)

	first := doRequest(t, router, http.MethodGet, "/api/articles/1", nil)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, float64(0), decodeBody(t, first)["views"], "response carries the pre-increment count")

	second := doRequest(t, router, http.MethodGet, "/api/articles/1", nil)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, float64(1), decodeBody(t, second)["views"])

	got, err := store.GetArticle(a.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Views)
}

func TestListArticlesFeaturedFilter(t *testing.T) {
	router, store := newTestRouter(t)
	_, err := store.AddArticle(models.InsertArticle{
		TitleEn: "Published", ContentEn: "Body", Slug: "published",
		Type: "evidence", CategoryID: 1, Published: true, AddedBy: 1,
	})
	require.NoError(t, err)
	_, err = store.AddArticle(models.InsertArticle{
		TitleEn: "Draft", ContentEn: "Body", Slug: "draft",
		Type: "evidence", CategoryID: 1, Published: false, AddedBy: 1,
	})
	require.NoError(t, err)

	rec := doRequest(t, router, http.MethodGet, "/api/articles?featured=true", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var articles []models.Article
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &articles))
	require.Len(t, articles, 1)
	assert.Equal(t, "published", articles[0].Slug)
}

func TestPartialArticleUpdate(t *testing.T) {
	router, store := newTestRouter(t)
	_, err := store.AddArticle(models.InsertArticle{
		TitleEn: "Old Title", ContentEn: "Original body", Slug: "stable-slug",
		Type: "evidence", CategoryID: 1, AddedBy: 1,
	})
	require.NoError(t, err)

	rec := doRequest(t, router, http.MethodPut, "/api/articles/1", gin.H{"title_en": "New Title"})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "New Title", body["title_en"])
	assert.Equal(t, "Original body", body["content_en"])
	assert.Equal(t, "stable-slug", body["slug"])
}

func TestCreateCategoryValidation(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/categories", gin.H{"slug": "lonely"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	msg := decodeBody(t, rec)["message"].(string)
	assert.Contains(t, msg, "name_en")
	assert.Contains(t, msg, "createdBy")
}

func TestDeleteCategoryCascade(t *testing.T) {
	router, store := newTestRouter(t)
	root, err := store.AddCategory(models.InsertCategory{NameEn: "Root", Slug: "root", CreatedBy: 1})
	require.NoError(t, err)
	child, err := store.AddCategory(models.InsertCategory{NameEn: "Child", Slug: "child", ParentID: &root.ID, CreatedBy: 1})
	require.NoError(t, err)

	rec := doRequest(t, router, http.MethodDelete, "/api/categories/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Category deleted successfully", decodeBody(t, rec)["message"])

	_, err = store.GetCategory(child.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGetCategoriesParentFilter(t *testing.T) {
	router, store := newTestRouter(t)
	root, err := store.AddCategory(models.InsertCategory{NameEn: "Root", Slug: "root", CreatedBy: 1})
	require.NoError(t, err)
	_, err = store.AddCategory(models.InsertCategory{NameEn: "Child", Slug: "child", ParentID: &root.ID, CreatedBy: 1})
	require.NoError(t, err)

	rec := doRequest(t, router, http.MethodGet, "/api/categories?parentId=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var categories []models.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
	require.Len(t, categories, 1)
	assert.Equal(t, "child", categories[0].Slug)
}

func TestUpdateUserStatus(t *testing.T) {
	router, store := newTestRouter(t)
	_, err := store.CreateUser(models.InsertUser{
		Username: "admin", Password: "pw", Name: "Admin",
		Email: "a@example.com", AvatarInitials: "AD", AvatarColor: "#000",
	})
	require.NoError(t, err)

	rec := doRequest(t, router, http.MethodPatch, "/api/users/1/status", gin.H{"online": true})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["online"])

	rec = doRequest(t, router, http.MethodPatch, "/api/users/1/status", gin.H{"online": "yes"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "online must be a valid bool", decodeBody(t, rec)["message"])

	rec = doRequest(t, router, http.MethodPatch, "/api/users/99/status", gin.H{"online": false})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBooksFilteredByLibrary(t *testing.T) {
	router, store := newTestRouter(t)
	lib, err := store.AddLibrary(models.InsertLibrary{Name: "Shelf", CreatedBy: 1})
	require.NoError(t, err)
	other, err := store.AddLibrary(models.InsertLibrary{Name: "Other", CreatedBy: 1})
	require.NoError(t, err)

	_, err = store.AddBook(models.InsertBook{LibraryID: lib.ID, Title: "Kept", Author: "A", AddedBy: 1})
	require.NoError(t, err)
	_, err = store.AddBook(models.InsertBook{LibraryID: other.ID, Title: "Elsewhere", Author: "B", AddedBy: 1})
	require.NoError(t, err)

	rec := doRequest(t, router, http.MethodGet, "/api/books?libraryId=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var books []models.Book
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &books))
	require.Len(t, books, 1)
	assert.Equal(t, "Kept", books[0].Title)
}

func TestCreateBookRatingBounds(t *testing.T) {
	router, store := newTestRouter(t)
	lib, err := store.AddLibrary(models.InsertLibrary{Name: "Shelf", CreatedBy: 1})
	require.NoError(t, err)

	rec := doRequest(t, router, http.MethodPost, "/api/books", gin.H{
		"libraryId": lib.ID, "title": "Bad", "author": "X", "rating": 9, "addedBy": 1,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["message"], "rating")
}
