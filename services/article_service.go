package services

import (
	"daleel-cms/models"
	"daleel-cms/repositories"
)

type ArticleService interface {
	GetArticles(params models.ArticleListParams) ([]models.Article, error)
	GetArticle(id int) (*models.Article, error)
	GetArticleBySlug(slug string) (*models.Article, error)
	GetArticlesByCategory(categoryID int) ([]models.Article, error)
	GetArticlesByType(articleType string) ([]models.Article, error)
	CreateArticle(in models.InsertArticle) (*models.Article, error)
	UpdateArticle(id int, updates map[string]interface{}) (*models.Article, error)
	DeleteArticle(id int) error
}

type articleService struct {
	store repositories.ArticleStorage
}

func NewArticleService(store repositories.ArticleStorage) ArticleService {
	return &articleService{store: store}
}

// GetArticles applies the list filters client-side of storage: category,
// type, featured (published only) and a result cap, in that order.
func (s *articleService) GetArticles(params models.ArticleListParams) ([]models.Article, error) {
	articles, err := s.store.GetAllArticles()
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Article, 0, len(articles))
	for _, a := range articles {
		if params.CategoryID > 0 && a.CategoryID != params.CategoryID {
			continue
		}
		if params.Type != "" && a.Type != params.Type {
			continue
		}
		if params.Featured && !a.Published {
			continue
		}
		filtered = append(filtered, a)
	}
	if params.Limit > 0 && len(filtered) > params.Limit {
		filtered = filtered[:params.Limit]
	}
	return filtered, nil
}

// GetArticle returns the article and bumps its view counter. The response
// carries the pre-increment count, matching the reference read path.
func (s *articleService) GetArticle(id int) (*models.Article, error) {
	article, err := s.store.GetArticle(id)
	if err != nil {
		return nil, err
	}
	if _, err := s.store.IncrementArticleView(article.ID); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *articleService) GetArticleBySlug(slug string) (*models.Article, error) {
	article, err := s.store.GetArticleBySlug(slug)
	if err != nil {
		return nil, err
	}
	if _, err := s.store.IncrementArticleView(article.ID); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *articleService) GetArticlesByCategory(categoryID int) ([]models.Article, error) {
	return s.store.GetArticlesByCategory(categoryID)
}

func (s *articleService) GetArticlesByType(articleType string) ([]models.Article, error) {
	return s.store.GetArticlesByType(articleType)
}

func (s *articleService) CreateArticle(in models.InsertArticle) (*models.Article, error) {
	return s.store.AddArticle(in)
}

func (s *articleService) UpdateArticle(id int, updates map[string]interface{}) (*models.Article, error) {
	return s.store.UpdateArticle(id, updates)
}

func (s *articleService) DeleteArticle(id int) error {
	return s.store.DeleteArticle(id)
}
