package services

import (
	"daleel-cms/models"
	"daleel-cms/repositories"
)

type QuestionService interface {
	GetQuestions() ([]models.Question, error)
	GetQuestion(id int) (*models.Question, error)
	GetQuestionsByStatus(status string) ([]models.Question, error)
	SubmitQuestion(in models.InsertQuestion) (*models.Question, error)
	UpdateStatus(id int, status string, responseArticleID *int) (*models.Question, error)
	DeleteQuestion(id int) error
}

type questionService struct {
	store repositories.QuestionStorage
}

func NewQuestionService(store repositories.QuestionStorage) QuestionService {
	return &questionService{store: store}
}

func (s *questionService) GetQuestions() ([]models.Question, error) {
	return s.store.GetAllQuestions()
}

func (s *questionService) GetQuestion(id int) (*models.Question, error) {
	return s.store.GetQuestion(id)
}

func (s *questionService) GetQuestionsByStatus(status string) ([]models.Question, error) {
	return s.store.GetQuestionsByStatus(status)
}

func (s *questionService) SubmitQuestion(in models.InsertQuestion) (*models.Question, error) {
	return s.store.AddQuestion(in)
}

func (s *questionService) UpdateStatus(id int, status string, responseArticleID *int) (*models.Question, error) {
	return s.store.UpdateQuestionStatus(id, status, responseArticleID)
}

func (s *questionService) DeleteQuestion(id int) error {
	return s.store.DeleteQuestion(id)
}
