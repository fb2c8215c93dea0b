package models

import "time"

// The collaborative bookshelf: shared libraries of recommended books and
// user-curated collections. It rides on the same storage and API pattern
// as the content entities.

type Library struct {
	ID          int       `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description *string   `json:"description"`
	CreatedBy   int       `json:"createdBy" gorm:"not null"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Book struct {
	ID          int       `json:"id" gorm:"primaryKey"`
	LibraryID   int       `json:"libraryId" gorm:"not null"`
	Title       string    `json:"title" gorm:"not null"`
	Author      string    `json:"author" gorm:"not null"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	CoverImage  *string   `json:"coverImage"`
	Rating      int       `json:"rating" gorm:"default:0"`
	AddedBy     int       `json:"addedBy" gorm:"not null"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Collection struct {
	ID          int       `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description *string   `json:"description"`
	BookIDs     []int     `json:"bookIds" gorm:"serializer:json"`
	CreatedBy   int       `json:"createdBy" gorm:"not null"`
	CreatedAt   time.Time `json:"createdAt"`
}
