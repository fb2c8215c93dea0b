package repositories

import (
	"errors"

	"daleel-cms/models"
)

// ErrNotFound is the absence sentinel shared by both backends. Handlers
// translate it to 404; it is never wrapped with request detail.
var ErrNotFound = errors.New("record not found")

type UserStorage interface {
	GetUser(id int) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetAllUsers() ([]models.User, error)
	CreateUser(in models.InsertUser) (*models.User, error)
	UpdateUserStatus(id int, online bool) (*models.User, error)
}

type CategoryStorage interface {
	GetCategory(id int) (*models.Category, error)
	GetCategoryBySlug(slug string) (*models.Category, error)
	GetAllCategories() ([]models.Category, error)
	GetSubcategories(parentID int) ([]models.Category, error)
	AddCategory(in models.InsertCategory) (*models.Category, error)
	UpdateCategory(id int, updates map[string]interface{}) (*models.Category, error)
	DeleteCategory(id int) error
}

type ArticleStorage interface {
	GetArticle(id int) (*models.Article, error)
	GetArticleBySlug(slug string) (*models.Article, error)
	GetAllArticles() ([]models.Article, error)
	GetArticlesByCategory(categoryID int) ([]models.Article, error)
	GetArticlesByType(articleType string) ([]models.Article, error)
	AddArticle(in models.InsertArticle) (*models.Article, error)
	UpdateArticle(id int, updates map[string]interface{}) (*models.Article, error)
	DeleteArticle(id int) error
	IncrementArticleView(id int) (*models.Article, error)
}

type MediaStorage interface {
	GetMedia(id int) (*models.Media, error)
	GetAllMedia() ([]models.Media, error)
	GetMediaByCategory(categoryID int) ([]models.Media, error)
	GetMediaByType(mediaType string) ([]models.Media, error)
	GetMediaByArticle(articleID int) ([]models.Media, error)
	AddMedia(in models.InsertMedia) (*models.Media, error)
	UpdateMedia(id int, updates map[string]interface{}) (*models.Media, error)
	DeleteMedia(id int) error
}

type QuestionStorage interface {
	GetQuestion(id int) (*models.Question, error)
	GetAllQuestions() ([]models.Question, error)
	GetQuestionsByStatus(status string) ([]models.Question, error)
	AddQuestion(in models.InsertQuestion) (*models.Question, error)
	UpdateQuestionStatus(id int, status string, responseArticleID *int) (*models.Question, error)
	DeleteQuestion(id int) error
}

type BookshelfStorage interface {
	GetLibrary(id int) (*models.Library, error)
	GetAllLibraries() ([]models.Library, error)
	AddLibrary(in models.InsertLibrary) (*models.Library, error)
	UpdateLibrary(id int, updates map[string]interface{}) (*models.Library, error)
	DeleteLibrary(id int) error

	GetBook(id int) (*models.Book, error)
	GetAllBooks() ([]models.Book, error)
	GetBooksByLibrary(libraryID int) ([]models.Book, error)
	AddBook(in models.InsertBook) (*models.Book, error)
	UpdateBook(id int, updates map[string]interface{}) (*models.Book, error)
	DeleteBook(id int) error

	GetCollection(id int) (*models.Collection, error)
	GetAllCollections() ([]models.Collection, error)
	AddCollection(in models.InsertCollection) (*models.Collection, error)
	UpdateCollection(id int, updates map[string]interface{}) (*models.Collection, error)
	DeleteCollection(id int) error
}

// Storage is the full store contract. Two implementations exist: the
// in-memory store (default) and the Postgres store behind GORM.
type Storage interface {
	UserStorage
	CategoryStorage
	ArticleStorage
	MediaStorage
	QuestionStorage
	BookshelfStorage
}
