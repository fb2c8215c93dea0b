package models

import "time"

// Article holds bilingual content: evidences, refutations, FAQs and so on.
// Views is bumped only by the read-by-id and read-by-slug endpoints;
// UpdatedAt is refreshed on updates, not on view increments.
type Article struct {
	ID              int       `json:"id" gorm:"primaryKey"`
	TitleEn         string    `json:"title_en" gorm:"column:title_en;not null"`
	TitleSo         *string   `json:"title_so" gorm:"column:title_so"`
	ContentEn       string    `json:"content_en" gorm:"column:content_en;not null"`
	ContentSo       *string   `json:"content_so" gorm:"column:content_so"`
	ExcerptEn       *string   `json:"excerpt_en" gorm:"column:excerpt_en"`
	ExcerptSo       *string   `json:"excerpt_so" gorm:"column:excerpt_so"`
	Slug            string    `json:"slug" gorm:"uniqueIndex;not null"`
	FeaturedImage   *string   `json:"featuredImage"`
	Type            string    `json:"type" gorm:"not null"`
	CategoryID      int       `json:"categoryId" gorm:"not null"`
	Tags            []string  `json:"tags" gorm:"serializer:json"`
	Views           int       `json:"views" gorm:"default:0"`
	Published       bool      `json:"published" gorm:"default:false"`
	AddedBy         int       `json:"addedBy" gorm:"not null"`
	RelatedArticles []int     `json:"relatedArticles" gorm:"serializer:json"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
