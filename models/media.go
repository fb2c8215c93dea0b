package models

import "time"

// Media types seen in practice: pdf, video, 3d, image, presentation.
// The type is stored as a free string, as in the reference schema.
type Media struct {
	ID            int       `json:"id" gorm:"primaryKey"`
	TitleEn       string    `json:"title_en" gorm:"column:title_en;not null"`
	TitleSo       *string   `json:"title_so" gorm:"column:title_so"`
	DescriptionEn *string   `json:"description_en" gorm:"column:description_en"`
	DescriptionSo *string   `json:"description_so" gorm:"column:description_so"`
	Type          string    `json:"type" gorm:"not null"`
	URL           string    `json:"url" gorm:"not null"`
	ThumbnailURL  *string   `json:"thumbnailUrl"`
	ArticleID     *int      `json:"articleId"`
	CategoryID    int       `json:"categoryId" gorm:"not null"`
	AddedBy       int       `json:"addedBy" gorm:"not null"`
	Tags          []string  `json:"tags" gorm:"serializer:json"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
