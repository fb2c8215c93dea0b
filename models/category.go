package models

import "time"

// Category is a bilingual content category. Categories form a tree through
// ParentID; only one level of nesting is used in practice. Deleting a
// category also deletes its direct children (one level, not recursive).
type Category struct {
	ID            int       `json:"id" gorm:"primaryKey"`
	NameEn        string    `json:"name_en" gorm:"column:name_en;not null"`
	NameSo        *string   `json:"name_so" gorm:"column:name_so"`
	DescriptionEn *string   `json:"description_en" gorm:"column:description_en"`
	DescriptionSo *string   `json:"description_so" gorm:"column:description_so"`
	Slug          string    `json:"slug" gorm:"uniqueIndex;not null"`
	Icon          string    `json:"icon" gorm:"not null;default:folder"`
	ParentID      *int      `json:"parentId"`
	Order         int       `json:"order" gorm:"column:sort_order;default:0"`
	CreatedBy     int       `json:"createdBy" gorm:"not null"`
	CreatedAt     time.Time `json:"createdAt"`
}
