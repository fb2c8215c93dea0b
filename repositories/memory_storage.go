package repositories

import (
	"encoding/json"
	"sort"
	"sync"
	"time"

	"daleel-cms/models"
)

// MemoryStorage is the default backend: one map per entity kind keyed by a
// per-kind auto-incrementing id. Counters only ever grow, so an id is never
// reused even after a delete. A single RWMutex guards the whole store; the
// data volumes here never make that lock contended.
type MemoryStorage struct {
	mu sync.RWMutex

	users       map[int]models.User
	categories  map[int]models.Category
	articles    map[int]models.Article
	media       map[int]models.Media
	questions   map[int]models.Question
	libraries   map[int]models.Library
	books       map[int]models.Book
	collections map[int]models.Collection

	counters counters
}

type counters struct {
	User       int `json:"user"`
	Category   int `json:"category"`
	Article    int `json:"article"`
	Media      int `json:"media"`
	Question   int `json:"question"`
	Library    int `json:"library"`
	Book       int `json:"book"`
	Collection int `json:"collection"`
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		users:       map[int]models.User{},
		categories:  map[int]models.Category{},
		articles:    map[int]models.Article{},
		media:       map[int]models.Media{},
		questions:   map[int]models.Question{},
		libraries:   map[int]models.Library{},
		books:       map[int]models.Book{},
		collections: map[int]models.Collection{},
	}
}

var _ Storage = (*MemoryStorage)(nil)

// applyPatch merges a partial JSON payload onto an existing entity: fields
// present in updates overwrite, everything else is retained. There is
// deliberately no schema check here, any stored field can be patched.
func applyPatch(entity interface{}, updates map[string]interface{}) error {
	raw, err := json.Marshal(entity)
	if err != nil {
		return err
	}
	merged := map[string]interface{}{}
	if err := json.Unmarshal(raw, &merged); err != nil {
		return err
	}
	for k, v := range updates {
		merged[k] = v
	}
	raw, err = json.Marshal(merged)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, entity)
}

func now() time.Time {
	return time.Now().UTC()
}

// Users

func (s *MemoryStorage) GetUser(id int) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (s *MemoryStorage) GetUserByUsername(username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStorage) GetAllUsers() ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStorage) CreateUser(in models.InsertUser) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters.User++
	role := in.Role
	if role == "" {
		role = models.RoleUser
	}
	u := models.User{
		ID:             s.counters.User,
		Username:       in.Username,
		Password:       in.Password,
		Name:           in.Name,
		Email:          in.Email,
		AvatarInitials: in.AvatarInitials,
		AvatarColor:    in.AvatarColor,
		Role:           role,
		Online:         false,
		CreatedAt:      now(),
	}
	s.users[u.ID] = u
	return &u, nil
}

func (s *MemoryStorage) UpdateUserStatus(id int, online bool) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	u.Online = online
	s.users[id] = u
	return &u, nil
}

// Categories

func (s *MemoryStorage) GetCategory(id int) (*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (s *MemoryStorage) GetCategoryBySlug(slug string) (*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if c.Slug == slug {
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStorage) GetAllCategories() ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStorage) GetSubcategories(parentID int) ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Category{}
	for _, c := range s.categories {
		if c.ParentID != nil && *c.ParentID == parentID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStorage) AddCategory(in models.InsertCategory) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters.Category++
	icon := in.Icon
	if icon == "" {
		icon = "folder"
	}
	c := models.Category{
		ID:            s.counters.Category,
		NameEn:        in.NameEn,
		NameSo:        in.NameSo,
		DescriptionEn: in.DescriptionEn,
		DescriptionSo: in.DescriptionSo,
		Slug:          in.Slug,
		Icon:          icon,
		ParentID:      in.ParentID,
		Order:         in.Order,
		CreatedBy:     in.CreatedBy,
		CreatedAt:     now(),
	}
	s.categories[c.ID] = c
	return &c, nil
}

func (s *MemoryStorage) UpdateCategory(id int, updates map[string]interface{}) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	if err := applyPatch(&c, updates); err != nil {
		return nil, err
	}
	s.categories[id] = c
	return &c, nil
}

// DeleteCategory removes the category and its direct children. The cascade
// is exactly one level deep: children of a deleted child stay in place.
func (s *MemoryStorage) DeleteCategory(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[id]; !ok {
		return ErrNotFound
	}
	delete(s.categories, id)
	for childID, c := range s.categories {
		if c.ParentID != nil && *c.ParentID == id {
			delete(s.categories, childID)
		}
	}
	return nil
}

// Articles

func (s *MemoryStorage) GetArticle(id int) (*models.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.articles[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &a, nil
}

func (s *MemoryStorage) GetArticleBySlug(slug string) (*models.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.articles {
		if a.Slug == slug {
			return &a, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStorage) GetAllArticles() ([]models.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Article, 0, len(s.articles))
	for _, a := range s.articles {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStorage) GetArticlesByCategory(categoryID int) ([]models.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Article{}
	for _, a := range s.articles {
		if a.CategoryID == categoryID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStorage) GetArticlesByType(articleType string) ([]models.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Article{}
	for _, a := range s.articles {
		if a.Type == articleType {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStorage) AddArticle(in models.InsertArticle) (*models.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters.Article++
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	related := in.RelatedArticles
	if related == nil {
		related = []int{}
	}
	ts := now()
	a := models.Article{
		ID:              s.counters.Article,
		TitleEn:         in.TitleEn,
		TitleSo:         in.TitleSo,
		ContentEn:       in.ContentEn,
		ContentSo:       in.ContentSo,
		ExcerptEn:       in.ExcerptEn,
		ExcerptSo:       in.ExcerptSo,
		Slug:            in.Slug,
		FeaturedImage:   in.FeaturedImage,
		Type:            in.Type,
		CategoryID:      in.CategoryID,
		Tags:            tags,
		Views:           0,
		Published:       in.Published,
		AddedBy:         in.AddedBy,
		RelatedArticles: related,
		CreatedAt:       ts,
		UpdatedAt:       ts,
	}
	s.articles[a.ID] = a
	return &a, nil
}

func (s *MemoryStorage) UpdateArticle(id int, updates map[string]interface{}) (*models.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.articles[id]
	if !ok {
		return nil, ErrNotFound
	}
	if err := applyPatch(&a, updates); err != nil {
		return nil, err
	}
	a.UpdatedAt = now()
	s.articles[id] = a
	return &a, nil
}

func (s *MemoryStorage) DeleteArticle(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.articles[id]; !ok {
		return ErrNotFound
	}
	delete(s.articles, id)
	return nil
}

// IncrementArticleView bumps the view counter without touching UpdatedAt.
func (s *MemoryStorage) IncrementArticleView(id int) (*models.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.articles[id]
	if !ok {
		return nil, ErrNotFound
	}
	a.Views++
	s.articles[id] = a
	return &a, nil
}

// Media

func (s *MemoryStorage) GetMedia(id int) (*models.Media, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.media[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &m, nil
}

func (s *MemoryStorage) GetAllMedia() ([]models.Media, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Media, 0, len(s.media))
	for _, m := range s.media {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStorage) GetMediaByCategory(categoryID int) ([]models.Media, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Media{}
	for _, m := range s.media {
		if m.CategoryID == categoryID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStorage) GetMediaByType(mediaType string) ([]models.Media, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Media{}
	for _, m := range s.media {
		if m.Type == mediaType {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStorage) GetMediaByArticle(articleID int) ([]models.Media, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Media{}
	for _, m := range s.media {
		if m.ArticleID != nil && *m.ArticleID == articleID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStorage) AddMedia(in models.InsertMedia) (*models.Media, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters.Media++
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	ts := now()
	m := models.Media{
		ID:            s.counters.Media,
		TitleEn:       in.TitleEn,
		TitleSo:       in.TitleSo,
		DescriptionEn: in.DescriptionEn,
		DescriptionSo: in.DescriptionSo,
		Type:          in.Type,
		URL:           in.URL,
		ThumbnailURL:  in.ThumbnailURL,
		ArticleID:     in.ArticleID,
		CategoryID:    in.CategoryID,
		AddedBy:       in.AddedBy,
		Tags:          tags,
		CreatedAt:     ts,
		UpdatedAt:     ts,
	}
	s.media[m.ID] = m
	return &m, nil
}

func (s *MemoryStorage) UpdateMedia(id int, updates map[string]interface{}) (*models.Media, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.media[id]
	if !ok {
		return nil, ErrNotFound
	}
	if err := applyPatch(&m, updates); err != nil {
		return nil, err
	}
	m.UpdatedAt = now()
	s.media[id] = m
	return &m, nil
}

func (s *MemoryStorage) DeleteMedia(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.media[id]; !ok {
		return ErrNotFound
	}
	delete(s.media, id)
	return nil
}

// Questions

func (s *MemoryStorage) GetQuestion(id int) (*models.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.questions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &q, nil
}

func (s *MemoryStorage) GetAllQuestions() ([]models.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Question, 0, len(s.questions))
	for _, q := range s.questions {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStorage) GetQuestionsByStatus(status string) ([]models.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Question{}
	for _, q := range s.questions {
		if q.Status == status {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStorage) AddQuestion(in models.InsertQuestion) (*models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters.Question++
	q := models.Question{
		ID:                s.counters.Question,
		Name:              in.Name,
		Email:             in.Email,
		QuestionEn:        in.QuestionEn,
		QuestionSo:        in.QuestionSo,
		Status:            models.QuestionPending,
		ResponseArticleID: nil,
		CreatedAt:         now(),
	}
	s.questions[q.ID] = q
	return &q, nil
}

// UpdateQuestionStatus sets the status and the answering article. A nil
// responseArticleID resets the link, matching the reference defaulting.
func (s *MemoryStorage) UpdateQuestionStatus(id int, status string, responseArticleID *int) (*models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.questions[id]
	if !ok {
		return nil, ErrNotFound
	}
	q.Status = status
	q.ResponseArticleID = responseArticleID
	s.questions[id] = q
	return &q, nil
}

func (s *MemoryStorage) DeleteQuestion(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.questions[id]; !ok {
		return ErrNotFound
	}
	delete(s.questions, id)
	return nil
}

// Libraries

func (s *MemoryStorage) GetLibrary(id int) (*models.Library, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.libraries[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &l, nil
}

func (s *MemoryStorage) GetAllLibraries() ([]models.Library, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Library, 0, len(s.libraries))
	for _, l := range s.libraries {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStorage) AddLibrary(in models.InsertLibrary) (*models.Library, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters.Library++
	l := models.Library{
		ID:          s.counters.Library,
		Name:        in.Name,
		Description: in.Description,
		CreatedBy:   in.CreatedBy,
		CreatedAt:   now(),
	}
	s.libraries[l.ID] = l
	return &l, nil
}

func (s *MemoryStorage) UpdateLibrary(id int, updates map[string]interface{}) (*models.Library, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.libraries[id]
	if !ok {
		return nil, ErrNotFound
	}
	if err := applyPatch(&l, updates); err != nil {
		return nil, err
	}
	s.libraries[id] = l
	return &l, nil
}

func (s *MemoryStorage) DeleteLibrary(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.libraries[id]; !ok {
		return ErrNotFound
	}
	delete(s.libraries, id)
	return nil
}

// Books

func (s *MemoryStorage) GetBook(id int) (*models.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.books[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &b, nil
}

func (s *MemoryStorage) GetAllBooks() ([]models.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Book, 0, len(s.books))
	for _, b := range s.books {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStorage) GetBooksByLibrary(libraryID int) ([]models.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Book{}
	for _, b := range s.books {
		if b.LibraryID == libraryID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStorage) AddBook(in models.InsertBook) (*models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters.Book++
	b := models.Book{
		ID:          s.counters.Book,
		LibraryID:   in.LibraryID,
		Title:       in.Title,
		Author:      in.Author,
		Description: in.Description,
		Category:    in.Category,
		CoverImage:  in.CoverImage,
		Rating:      in.Rating,
		AddedBy:     in.AddedBy,
		CreatedAt:   now(),
	}
	s.books[b.ID] = b
	return &b, nil
}

func (s *MemoryStorage) UpdateBook(id int, updates map[string]interface{}) (*models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.books[id]
	if !ok {
		return nil, ErrNotFound
	}
	if err := applyPatch(&b, updates); err != nil {
		return nil, err
	}
	s.books[id] = b
	return &b, nil
}

func (s *MemoryStorage) DeleteBook(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.books[id]; !ok {
		return ErrNotFound
	}
	delete(s.books, id)
	return nil
}

// Collections

func (s *MemoryStorage) GetCollection(id int) (*models.Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.collections[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (s *MemoryStorage) GetAllCollections() ([]models.Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Collection, 0, len(s.collections))
	for _, c := range s.collections {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStorage) AddCollection(in models.InsertCollection) (*models.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters.Collection++
	bookIDs := in.BookIDs
	if bookIDs == nil {
		bookIDs = []int{}
	}
	c := models.Collection{
		ID:          s.counters.Collection,
		Name:        in.Name,
		Description: in.Description,
		BookIDs:     bookIDs,
		CreatedBy:   in.CreatedBy,
		CreatedAt:   now(),
	}
	s.collections[c.ID] = c
	return &c, nil
}

func (s *MemoryStorage) UpdateCollection(id int, updates map[string]interface{}) (*models.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.collections[id]
	if !ok {
		return nil, ErrNotFound
	}
	if err := applyPatch(&c, updates); err != nil {
		return nil, err
	}
	s.collections[id] = c
	return &c, nil
}

func (s *MemoryStorage) DeleteCollection(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.collections[id]; !ok {
		return ErrNotFound
	}
	delete(s.collections, id)
	return nil
}
