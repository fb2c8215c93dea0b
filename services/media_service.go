package services

import (
	"daleel-cms/models"
	"daleel-cms/repositories"
)

type MediaService interface {
	GetAllMedia() ([]models.Media, error)
	GetMedia(id int) (*models.Media, error)
	GetMediaByCategory(categoryID int) ([]models.Media, error)
	GetMediaByType(mediaType string) ([]models.Media, error)
	GetMediaByArticle(articleID int) ([]models.Media, error)
	CreateMedia(in models.InsertMedia) (*models.Media, error)
	UpdateMedia(id int, updates map[string]interface{}) (*models.Media, error)
	DeleteMedia(id int) error
}

type mediaService struct {
	store repositories.MediaStorage
}

func NewMediaService(store repositories.MediaStorage) MediaService {
	return &mediaService{store: store}
}

func (s *mediaService) GetAllMedia() ([]models.Media, error) {
	return s.store.GetAllMedia()
}

func (s *mediaService) GetMedia(id int) (*models.Media, error) {
	return s.store.GetMedia(id)
}

func (s *mediaService) GetMediaByCategory(categoryID int) ([]models.Media, error) {
	return s.store.GetMediaByCategory(categoryID)
}

func (s *mediaService) GetMediaByType(mediaType string) ([]models.Media, error) {
	return s.store.GetMediaByType(mediaType)
}

func (s *mediaService) GetMediaByArticle(articleID int) ([]models.Media, error) {
	return s.store.GetMediaByArticle(articleID)
}

func (s *mediaService) CreateMedia(in models.InsertMedia) (*models.Media, error) {
	return s.store.AddMedia(in)
}

func (s *mediaService) UpdateMedia(id int, updates map[string]interface{}) (*models.Media, error) {
	return s.store.UpdateMedia(id, updates)
}

func (s *mediaService) DeleteMedia(id int) error {
	return s.store.DeleteMedia(id)
}
