package services

import (
	"daleel-cms/models"
	"daleel-cms/repositories"
)

type CategoryService interface {
	GetCategories(params models.CategoryListParams) ([]models.Category, error)
	GetCategory(id int) (*models.Category, error)
	GetCategoryBySlug(slug string) (*models.Category, error)
	GetSubcategories(parentID int) ([]models.Category, error)
	CreateCategory(in models.InsertCategory) (*models.Category, error)
	UpdateCategory(id int, updates map[string]interface{}) (*models.Category, error)
	DeleteCategory(id int) error
}

type categoryService struct {
	store repositories.CategoryStorage
}

func NewCategoryService(store repositories.CategoryStorage) CategoryService {
	return &categoryService{store: store}
}

func (s *categoryService) GetCategories(params models.CategoryListParams) ([]models.Category, error) {
	if params.ParentID != nil {
		return s.store.GetSubcategories(*params.ParentID)
	}
	return s.store.GetAllCategories()
}

func (s *categoryService) GetCategory(id int) (*models.Category, error) {
	return s.store.GetCategory(id)
}

func (s *categoryService) GetCategoryBySlug(slug string) (*models.Category, error) {
	return s.store.GetCategoryBySlug(slug)
}

func (s *categoryService) GetSubcategories(parentID int) ([]models.Category, error) {
	return s.store.GetSubcategories(parentID)
}

func (s *categoryService) CreateCategory(in models.InsertCategory) (*models.Category, error) {
	return s.store.AddCategory(in)
}

func (s *categoryService) UpdateCategory(id int, updates map[string]interface{}) (*models.Category, error) {
	return s.store.UpdateCategory(id, updates)
}

func (s *categoryService) DeleteCategory(id int) error {
	return s.store.DeleteCategory(id)
}
