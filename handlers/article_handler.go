package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"daleel-cms/helper"
	"daleel-cms/models"
	"daleel-cms/repositories"
	"daleel-cms/services"
)

type ArticleHandler struct {
	articleService services.ArticleService
	helper         *helper.HTTPHelper
	log            *zap.Logger
}

func NewArticleHandler(articleService services.ArticleService, h *helper.HTTPHelper, log *zap.Logger) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, helper: h, log: log}
}

func (h *ArticleHandler) GetArticles(c *gin.Context) {
	var params models.ArticleListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.helper.SendValidationError(c, err)
		return
	}

	articles, err := h.articleService.GetArticles(params)
	if err != nil {
		h.log.Error("get articles failed", zap.Error(err))
		h.helper.SendInternalError(c, "Failed to get articles")
		return
	}
	c.JSON(http.StatusOK, articles)
}

// GetArticle also counts the read; see ArticleService.GetArticle.
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id := helper.ParseID(c.Param("id"))
	article, err := h.articleService.GetArticle(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.helper.SendNotFound(c, "Article")
			return
		}
		h.log.Error("get article failed", zap.Int("id", id), zap.Error(err))
		h.helper.SendInternalError(c, "Failed to get article")
		return
	}
	c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) GetArticleBySlug(c *gin.Context) {
	slug := c.Param("slug")
	article, err := h.articleService.GetArticleBySlug(slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.helper.SendNotFound(c, "Article")
			return
		}
		h.log.Error("get article by slug failed", zap.String("slug", slug), zap.Error(err))
		h.helper.SendInternalError(c, "Failed to get article")
		return
	}
	c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) GetArticlesByCategory(c *gin.Context) {
	categoryID := helper.ParseID(c.Param("categoryId"))
	articles, err := h.articleService.GetArticlesByCategory(categoryID)
	if err != nil {
		h.log.Error("get articles by category failed", zap.Int("categoryId", categoryID), zap.Error(err))
		h.helper.SendInternalError(c, "Failed to get articles")
		return
	}
	c.JSON(http.StatusOK, articles)
}

func (h *ArticleHandler) GetArticlesByType(c *gin.Context) {
	articleType := c.Param("type")
	articles, err := h.articleService.GetArticlesByType(articleType)
	if err != nil {
		h.log.Error("get articles by type failed", zap.String("type", articleType), zap.Error(err))
		h.helper.SendInternalError(c, "Failed to get articles")
		return
	}
	c.JSON(http.StatusOK, articles)
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req models.InsertArticle
	if err := c.ShouldBindJSON(&req); err != nil {
		h.helper.SendValidationError(c, err)
		return
	}

	article, err := h.articleService.CreateArticle(req)
	if err != nil {
		h.log.Error("add article failed", zap.Error(err))
		h.helper.SendInternalError(c, "Failed to add article")
		return
	}
	c.JSON(http.StatusCreated, article)
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	id := helper.ParseID(c.Param("id"))

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		h.helper.SendValidationError(c, err)
		return
	}

	article, err := h.articleService.UpdateArticle(id, updates)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.helper.SendNotFound(c, "Article")
			return
		}
		h.log.Error("update article failed", zap.Int("id", id), zap.Error(err))
		h.helper.SendInternalError(c, "Failed to update article")
		return
	}
	c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id := helper.ParseID(c.Param("id"))
	if err := h.articleService.DeleteArticle(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.helper.SendNotFound(c, "Article")
			return
		}
		h.log.Error("delete article failed", zap.Int("id", id), zap.Error(err))
		h.helper.SendInternalError(c, "Failed to delete article")
		return
	}
	h.helper.SendMessage(c, "Article deleted successfully")
}
