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

type CategoryHandler struct {
	categoryService services.CategoryService
	helper          *helper.HTTPHelper
	log             *zap.Logger
}

func NewCategoryHandler(categoryService services.CategoryService, h *helper.HTTPHelper, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, helper: h, log: log}
}

func (h *CategoryHandler) GetCategories(c *gin.Context) {
	var params models.CategoryListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.helper.SendValidationError(c, err)
		return
	}

	categories, err := h.categoryService.GetCategories(params)
	if err != nil {
		h.log.Error("get categories failed", zap.Error(err))
		h.helper.SendInternalError(c, "Failed to get categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id := helper.ParseID(c.Param("id"))
	category, err := h.categoryService.GetCategory(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.helper.SendNotFound(c, "Category")
			return
		}
		h.log.Error("get category failed", zap.Int("id", id), zap.Error(err))
		h.helper.SendInternalError(c, "Failed to get category")
		return
	}
	c.JSON(http.StatusOK, category)
}

// GetSubcategories answers an empty array for unknown parents; absence is
// not an error on this route.
func (h *CategoryHandler) GetSubcategories(c *gin.Context) {
	parentID := helper.ParseID(c.Param("id"))
	subcategories, err := h.categoryService.GetSubcategories(parentID)
	if err != nil {
		h.log.Error("get subcategories failed", zap.Int("parentId", parentID), zap.Error(err))
		h.helper.SendInternalError(c, "Failed to get subcategories")
		return
	}
	c.JSON(http.StatusOK, subcategories)
}

func (h *CategoryHandler) GetCategoryBySlug(c *gin.Context) {
	slug := c.Param("slug")
	category, err := h.categoryService.GetCategoryBySlug(slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.helper.SendNotFound(c, "Category")
			return
		}
		h.log.Error("get category by slug failed", zap.String("slug", slug), zap.Error(err))
		h.helper.SendInternalError(c, "Failed to get category")
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req models.InsertCategory
	if err := c.ShouldBindJSON(&req); err != nil {
		h.helper.SendValidationError(c, err)
		return
	}

	category, err := h.categoryService.CreateCategory(req)
	if err != nil {
		h.log.Error("add category failed", zap.Error(err))
		h.helper.SendInternalError(c, "Failed to add category")
		return
	}
	c.JSON(http.StatusCreated, category)
}

// UpdateCategory accepts an arbitrary partial payload; provided fields
// overwrite, absent fields are retained.
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id := helper.ParseID(c.Param("id"))

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		h.helper.SendValidationError(c, err)
		return
	}

	category, err := h.categoryService.UpdateCategory(id, updates)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.helper.SendNotFound(c, "Category")
			return
		}
		h.log.Error("update category failed", zap.Int("id", id), zap.Error(err))
		h.helper.SendInternalError(c, "Failed to update category")
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id := helper.ParseID(c.Param("id"))
	if err := h.categoryService.DeleteCategory(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.helper.SendNotFound(c, "Category")
			return
		}
		h.log.Error("delete category failed", zap.Int("id", id), zap.Error(err))
		h.helper.SendInternalError(c, "Failed to delete category")
		return
	}
	h.helper.SendMessage(c, "Category deleted successfully")
}
