package services

import (
	"daleel-cms/models"
	"daleel-cms/repositories"
)

type UserService interface {
	GetUsers() ([]models.User, error)
	GetUser(id int) (*models.User, error)
	UpdateStatus(id int, online bool) (*models.User, error)
}

type userService struct {
	store repositories.UserStorage
}

func NewUserService(store repositories.UserStorage) UserService {
	return &userService{store: store}
}

func (s *userService) GetUsers() ([]models.User, error) {
	return s.store.GetAllUsers()
}

func (s *userService) GetUser(id int) (*models.User, error) {
	return s.store.GetUser(id)
}

func (s *userService) UpdateStatus(id int, online bool) (*models.User, error) {
	return s.store.UpdateUserStatus(id, online)
}
