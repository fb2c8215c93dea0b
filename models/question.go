package models

import "time"

const (
	QuestionPending  = "pending"
	QuestionAnswered = "answered"
	QuestionRejected = "rejected"
)

// Question is a visitor-submitted question. Name and email are optional so
// questions can be asked anonymously. ResponseArticleID stays null until
// the question is answered with an article.
type Question struct {
	ID                int       `json:"id" gorm:"primaryKey"`
	Name              *string   `json:"name"`
	Email             *string   `json:"email"`
	QuestionEn        string    `json:"question_en" gorm:"column:question_en;not null"`
	QuestionSo        *string   `json:"question_so" gorm:"column:question_so"`
	Status            string    `json:"status" gorm:"not null;default:pending"`
	ResponseArticleID *int      `json:"responseArticleId"`
	CreatedAt         time.Time `json:"createdAt"`
}
