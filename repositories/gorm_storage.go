package repositories

import (
	"errors"

	"gorm.io/gorm"

	"daleel-cms/models"
)

// GormStorage implements Storage on Postgres. Serial primary keys give the
// same never-reused id guarantee the in-memory counters do, and they
// survive restarts.
type GormStorage struct {
	db *gorm.DB
}

var _ Storage = (*GormStorage)(nil)

func NewGormStorage(db *gorm.DB) (*GormStorage, error) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Article{},
		&models.Media{},
		&models.Question{},
		&models.Library{},
		&models.Book{},
		&models.Collection{},
	)
	if err != nil {
		return nil, err
	}
	return &GormStorage{db: db}, nil
}

func wrapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// Users

func (g *GormStorage) GetUser(id int) (*models.User, error) {
	var u models.User
	if err := g.db.First(&u, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &u, nil
}

func (g *GormStorage) GetUserByUsername(username string) (*models.User, error) {
	var u models.User
	if err := g.db.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &u, nil
}

func (g *GormStorage) GetAllUsers() ([]models.User, error) {
	users := []models.User{}
	err := g.db.Order("id").Find(&users).Error
	return users, err
}

func (g *GormStorage) CreateUser(in models.InsertUser) (*models.User, error) {
	role := in.Role
	if role == "" {
		role = models.RoleUser
	}
	u := models.User{
		Username:       in.Username,
		Password:       in.Password,
		Name:           in.Name,
		Email:          in.Email,
		AvatarInitials: in.AvatarInitials,
		AvatarColor:    in.AvatarColor,
		Role:           role,
		Online:         false,
	}
	if err := g.db.Create(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (g *GormStorage) UpdateUserStatus(id int, online bool) (*models.User, error) {
	res := g.db.Model(&models.User{}).Where("id = ?", id).Update("online", online)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return g.GetUser(id)
}

// Categories

func (g *GormStorage) GetCategory(id int) (*models.Category, error) {
	var c models.Category
	if err := g.db.First(&c, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &c, nil
}

func (g *GormStorage) GetCategoryBySlug(slug string) (*models.Category, error) {
	var c models.Category
	if err := g.db.Where("slug = ?", slug).First(&c).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &c, nil
}

func (g *GormStorage) GetAllCategories() ([]models.Category, error) {
	categories := []models.Category{}
	err := g.db.Order("id").Find(&categories).Error
	return categories, err
}

func (g *GormStorage) GetSubcategories(parentID int) ([]models.Category, error) {
	categories := []models.Category{}
	err := g.db.Where("parent_id = ?", parentID).Order("id").Find(&categories).Error
	return categories, err
}

func (g *GormStorage) AddCategory(in models.InsertCategory) (*models.Category, error) {
	icon := in.Icon
	if icon == "" {
		icon = "folder"
	}
	c := models.Category{
		NameEn:        in.NameEn,
		NameSo:        in.NameSo,
		DescriptionEn: in.DescriptionEn,
		DescriptionSo: in.DescriptionSo,
		Slug:          in.Slug,
		Icon:          icon,
		ParentID:      in.ParentID,
		Order:         in.Order,
		CreatedBy:     in.CreatedBy,
	}
	if err := g.db.Create(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (g *GormStorage) UpdateCategory(id int, updates map[string]interface{}) (*models.Category, error) {
	c, err := g.GetCategory(id)
	if err != nil {
		return nil, err
	}
	if err := applyPatch(c, updates); err != nil {
		return nil, err
	}
	if err := g.db.Save(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCategory cascades to direct children only, matching the in-memory
// backend.
func (g *GormStorage) DeleteCategory(id int) error {
	res := g.db.Delete(&models.Category{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return g.db.Where("parent_id = ?", id).Delete(&models.Category{}).Error
}

// Articles

func (g *GormStorage) GetArticle(id int) (*models.Article, error) {
	var a models.Article
	if err := g.db.First(&a, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &a, nil
}

func (g *GormStorage) GetArticleBySlug(slug string) (*models.Article, error) {
	var a models.Article
	if err := g.db.Where("slug = ?", slug).First(&a).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &a, nil
}

func (g *GormStorage) GetAllArticles() ([]models.Article, error) {
	articles := []models.Article{}
	err := g.db.Order("id").Find(&articles).Error
	return articles, err
}

func (g *GormStorage) GetArticlesByCategory(categoryID int) ([]models.Article, error) {
	articles := []models.Article{}
	err := g.db.Where("category_id = ?", categoryID).Order("id").Find(&articles).Error
	return articles, err
}

func (g *GormStorage) GetArticlesByType(articleType string) ([]models.Article, error) {
	articles := []models.Article{}
	err := g.db.Where("type = ?", articleType).Order("id").Find(&articles).Error
	return articles, err
}

func (g *GormStorage) AddArticle(in models.InsertArticle) (*models.Article, error) {
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	related := in.RelatedArticles
	if related == nil {
		related = []int{}
	}
	a := models.Article{
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
	}
	if err := g.db.Create(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (g *GormStorage) UpdateArticle(id int, updates map[string]interface{}) (*models.Article, error) {
	a, err := g.GetArticle(id)
	if err != nil {
		return nil, err
	}
	if err := applyPatch(a, updates); err != nil {
		return nil, err
	}
	if err := g.db.Save(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

func (g *GormStorage) DeleteArticle(id int) error {
	res := g.db.Delete(&models.Article{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (g *GormStorage) IncrementArticleView(id int) (*models.Article, error) {
	// UpdateColumn keeps updated_at untouched: a read is not an edit.
	res := g.db.Model(&models.Article{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1"))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return g.GetArticle(id)
}

// Media

func (g *GormStorage) GetMedia(id int) (*models.Media, error) {
	var m models.Media
	if err := g.db.First(&m, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &m, nil
}

func (g *GormStorage) GetAllMedia() ([]models.Media, error) {
	media := []models.Media{}
	err := g.db.Order("id").Find(&media).Error
	return media, err
}

func (g *GormStorage) GetMediaByCategory(categoryID int) ([]models.Media, error) {
	media := []models.Media{}
	err := g.db.Where("category_id = ?", categoryID).Order("id").Find(&media).Error
	return media, err
}

func (g *GormStorage) GetMediaByType(mediaType string) ([]models.Media, error) {
	media := []models.Media{}
	err := g.db.Where("type = ?", mediaType).Order("id").Find(&media).Error
	return media, err
}

func (g *GormStorage) GetMediaByArticle(articleID int) ([]models.Media, error) {
	media := []models.Media{}
	err := g.db.Where("article_id = ?", articleID).Order("id").Find(&media).Error
	return media, err
}

func (g *GormStorage) AddMedia(in models.InsertMedia) (*models.Media, error) {
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	m := models.Media{
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
	}
	if err := g.db.Create(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (g *GormStorage) UpdateMedia(id int, updates map[string]interface{}) (*models.Media, error) {
	m, err := g.GetMedia(id)
	if err != nil {
		return nil, err
	}
	if err := applyPatch(m, updates); err != nil {
		return nil, err
	}
	if err := g.db.Save(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

func (g *GormStorage) DeleteMedia(id int) error {
	res := g.db.Delete(&models.Media{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Questions

func (g *GormStorage) GetQuestion(id int) (*models.Question, error) {
	var q models.Question
	if err := g.db.First(&q, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &q, nil
}

func (g *GormStorage) GetAllQuestions() ([]models.Question, error) {
	questions := []models.Question{}
	err := g.db.Order("id").Find(&questions).Error
	return questions, err
}

func (g *GormStorage) GetQuestionsByStatus(status string) ([]models.Question, error) {
	questions := []models.Question{}
	err := g.db.Where("status = ?", status).Order("id").Find(&questions).Error
	return questions, err
}

func (g *GormStorage) AddQuestion(in models.InsertQuestion) (*models.Question, error) {
	q := models.Question{
		Name:       in.Name,
		Email:      in.Email,
		QuestionEn: in.QuestionEn,
		QuestionSo: in.QuestionSo,
		Status:     models.QuestionPending,
	}
	if err := g.db.Create(&q).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

func (g *GormStorage) UpdateQuestionStatus(id int, status string, responseArticleID *int) (*models.Question, error) {
	res := g.db.Model(&models.Question{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":              status,
		"response_article_id": responseArticleID,
	})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return g.GetQuestion(id)
}

func (g *GormStorage) DeleteQuestion(id int) error {
	res := g.db.Delete(&models.Question{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Libraries

func (g *GormStorage) GetLibrary(id int) (*models.Library, error) {
	var l models.Library
	if err := g.db.First(&l, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &l, nil
}

func (g *GormStorage) GetAllLibraries() ([]models.Library, error) {
	libraries := []models.Library{}
	err := g.db.Order("id").Find(&libraries).Error
	return libraries, err
}

func (g *GormStorage) AddLibrary(in models.InsertLibrary) (*models.Library, error) {
	l := models.Library{
		Name:        in.Name,
		Description: in.Description,
		CreatedBy:   in.CreatedBy,
	}
	if err := g.db.Create(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (g *GormStorage) UpdateLibrary(id int, updates map[string]interface{}) (*models.Library, error) {
	l, err := g.GetLibrary(id)
	if err != nil {
		return nil, err
	}
	if err := applyPatch(l, updates); err != nil {
		return nil, err
	}
	if err := g.db.Save(l).Error; err != nil {
		return nil, err
	}
	return l, nil
}

func (g *GormStorage) DeleteLibrary(id int) error {
	res := g.db.Delete(&models.Library{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Books

func (g *GormStorage) GetBook(id int) (*models.Book, error) {
	var b models.Book
	if err := g.db.First(&b, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &b, nil
}

func (g *GormStorage) GetAllBooks() ([]models.Book, error) {
	books := []models.Book{}
	err := g.db.Order("id").Find(&books).Error
	return books, err
}

func (g *GormStorage) GetBooksByLibrary(libraryID int) ([]models.Book, error) {
	books := []models.Book{}
	err := g.db.Where("library_id = ?", libraryID).Order("id").Find(&books).Error
	return books, err
}

func (g *GormStorage) AddBook(in models.InsertBook) (*models.Book, error) {
	b := models.Book{
		LibraryID:   in.LibraryID,
		Title:       in.Title,
		Author:      in.Author,
		Description: in.Description,
		Category:    in.Category,
		CoverImage:  in.CoverImage,
		Rating:      in.Rating,
		AddedBy:     in.AddedBy,
	}
	if err := g.db.Create(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (g *GormStorage) UpdateBook(id int, updates map[string]interface{}) (*models.Book, error) {
	b, err := g.GetBook(id)
	if err != nil {
		return nil, err
	}
	if err := applyPatch(b, updates); err != nil {
		return nil, err
	}
	if err := g.db.Save(b).Error; err != nil {
		return nil, err
	}
	return b, nil
}

func (g *GormStorage) DeleteBook(id int) error {
	res := g.db.Delete(&models.Book{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Collections

func (g *GormStorage) GetCollection(id int) (*models.Collection, error) {
	var c models.Collection
	if err := g.db.First(&c, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &c, nil
}

func (g *GormStorage) GetAllCollections() ([]models.Collection, error) {
	collections := []models.Collection{}
	err := g.db.Order("id").Find(&collections).Error
	return collections, err
}

func (g *GormStorage) AddCollection(in models.InsertCollection) (*models.Collection, error) {
	bookIDs := in.BookIDs
	if bookIDs == nil {
		bookIDs = []int{}
	}
	c := models.Collection{
		Name:        in.Name,
		Description: in.Description,
		BookIDs:     bookIDs,
		CreatedBy:   in.CreatedBy,
	}
	if err := g.db.Create(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (g *GormStorage) UpdateCollection(id int, updates map[string]interface{}) (*models.Collection, error) {
	c, err := g.GetCollection(id)
	if err != nil {
		return nil, err
	}
	if err := applyPatch(c, updates); err != nil {
		return nil, err
	}
	if err := g.db.Save(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (g *GormStorage) DeleteCollection(id int) error {
	res := g.db.Delete(&models.Collection{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
