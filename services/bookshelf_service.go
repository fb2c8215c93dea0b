package services

import (
	"daleel-cms/models"
	"daleel-cms/repositories"
)

type BookshelfService interface {
	GetLibraries() ([]models.Library, error)
	GetLibrary(id int) (*models.Library, error)
	CreateLibrary(in models.InsertLibrary) (*models.Library, error)
	UpdateLibrary(id int, updates map[string]interface{}) (*models.Library, error)
	DeleteLibrary(id int) error

	GetBooks(libraryID int) ([]models.Book, error)
	GetBook(id int) (*models.Book, error)
	CreateBook(in models.InsertBook) (*models.Book, error)
	UpdateBook(id int, updates map[string]interface{}) (*models.Book, error)
	DeleteBook(id int) error

	GetCollections() ([]models.Collection, error)
	GetCollection(id int) (*models.Collection, error)
	CreateCollection(in models.InsertCollection) (*models.Collection, error)
	UpdateCollection(id int, updates map[string]interface{}) (*models.Collection, error)
	DeleteCollection(id int) error
}

type bookshelfService struct {
	store repositories.BookshelfStorage
}

func NewBookshelfService(store repositories.BookshelfStorage) BookshelfService {
	return &bookshelfService{store: store}
}

func (s *bookshelfService) GetLibraries() ([]models.Library, error) {
	return s.store.GetAllLibraries()
}

func (s *bookshelfService) GetLibrary(id int) (*models.Library, error) {
	return s.store.GetLibrary(id)
}

func (s *bookshelfService) CreateLibrary(in models.InsertLibrary) (*models.Library, error) {
	return s.store.AddLibrary(in)
}

func (s *bookshelfService) UpdateLibrary(id int, updates map[string]interface{}) (*models.Library, error) {
	return s.store.UpdateLibrary(id, updates)
}

func (s *bookshelfService) DeleteLibrary(id int) error {
	return s.store.DeleteLibrary(id)
}

// GetBooks lists every book, or only a library's shelf when libraryID > 0.
func (s *bookshelfService) GetBooks(libraryID int) ([]models.Book, error) {
	if libraryID > 0 {
		return s.store.GetBooksByLibrary(libraryID)
	}
	return s.store.GetAllBooks()
}

func (s *bookshelfService) GetBook(id int) (*models.Book, error) {
	return s.store.GetBook(id)
}

func (s *bookshelfService) CreateBook(in models.InsertBook) (*models.Book, error) {
	return s.store.AddBook(in)
}

func (s *bookshelfService) UpdateBook(id int, updates map[string]interface{}) (*models.Book, error) {
	return s.store.UpdateBook(id, updates)
}

func (s *bookshelfService) DeleteBook(id int) error {
	return s.store.DeleteBook(id)
}

func (s *bookshelfService) GetCollections() ([]models.Collection, error) {
	return s.store.GetAllCollections()
}

func (s *bookshelfService) GetCollection(id int) (*models.Collection, error) {
	return s.store.GetCollection(id)
}

func (s *bookshelfService) CreateCollection(in models.InsertCollection) (*models.Collection, error) {
	return s.store.AddCollection(in)
}

func (s *bookshelfService) UpdateCollection(id int, updates map[string]interface{}) (*models.Collection, error) {
	return s.store.UpdateCollection(id, updates)
}

func (s *bookshelfService) DeleteCollection(id int) error {
	return s.store.DeleteCollection(id)
}
