package models

// Insert payloads: the subset of fields the client supplies on creation.
// Server-assigned fields (ids, counters, statuses, timestamps) are filled
// by the storage layer. Optional fields are pointers so "absent" survives
// binding.

type InsertUser struct {
	Username       string `json:"username" binding:"required"`
	Password       string `json:"password" binding:"required"`
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required"`
	AvatarInitials string `json:"avatarInitials" binding:"required"`
	AvatarColor    string `json:"avatarColor" binding:"required"`
	Role           string `json:"role"`
}

type InsertCategory struct {
	NameEn        string  `json:"name_en" binding:"required"`
	NameSo        *string `json:"name_so"`
	DescriptionEn *string `json:"description_en"`
	DescriptionSo *string `json:"description_so"`
	Slug          string  `json:"slug" binding:"required"`
	Icon          string  `json:"icon"`
	ParentID      *int    `json:"parentId"`
	Order         int     `json:"order"`
	CreatedBy     int     `json:"createdBy" binding:"required"`
}

type InsertArticle struct {
	TitleEn         string   `json:"title_en" binding:"required"`
	TitleSo         *string  `json:"title_so"`
	ContentEn       string   `json:"content_en" binding:"required"`
	ContentSo       *string  `json:"content_so"`
	ExcerptEn       *string  `json:"excerpt_en"`
	ExcerptSo       *string  `json:"excerpt_so"`
	Slug            string   `json:"slug" binding:"required"`
	FeaturedImage   *string  `json:"featuredImage"`
	Type            string   `json:"type" binding:"required"`
	CategoryID      int      `json:"categoryId" binding:"required"`
	Tags            []string `json:"tags"`
	Published       bool     `json:"published"`
	AddedBy         int      `json:"addedBy" binding:"required"`
	RelatedArticles []int    `json:"relatedArticles"`
}

type InsertMedia struct {
	TitleEn       string   `json:"title_en" binding:"required"`
	TitleSo       *string  `json:"title_so"`
	DescriptionEn *string  `json:"description_en"`
	DescriptionSo *string  `json:"description_so"`
	Type          string   `json:"type" binding:"required"`
	URL           string   `json:"url" binding:"required"`
	ThumbnailURL  *string  `json:"thumbnailUrl"`
	ArticleID     *int     `json:"articleId"`
	CategoryID    int      `json:"categoryId" binding:"required"`
	AddedBy       int      `json:"addedBy" binding:"required"`
	Tags          []string `json:"tags"`
}

type InsertQuestion struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	QuestionEn string  `json:"question_en" binding:"required"`
	QuestionSo *string `json:"question_so"`
}

type InsertLibrary struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	CreatedBy   int     `json:"createdBy" binding:"required"`
}

type InsertBook struct {
	LibraryID   int     `json:"libraryId" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Author      string  `json:"author" binding:"required"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	CoverImage  *string `json:"coverImage"`
	Rating      int     `json:"rating" binding:"omitempty,min=0,max=5"`
	AddedBy     int     `json:"addedBy" binding:"required"`
}

type InsertCollection struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	BookIDs     []int   `json:"bookIds"`
	CreatedBy   int     `json:"createdBy" binding:"required"`
}

// Query parameters accepted by the list endpoints.

type CategoryListParams struct {
	ParentID *int `form:"parentId"`
}

type ArticleListParams struct {
	CategoryID int    `form:"categoryId"`
	Type       string `form:"type"`
	Limit      int    `form:"limit"`
	Featured   bool   `form:"featured"`
}

// Status-update payloads for the PATCH routes. Online is a pointer so a
// missing field is a validation error rather than a silent false.

type UpdateUserStatusRequest struct {
	Online *bool `json:"online" binding:"required"`
}

type UpdateQuestionStatusRequest struct {
	Status            string `json:"status" binding:"required,oneof=pending answered rejected"`
	ResponseArticleID *int   `json:"responseArticleId"`
}
