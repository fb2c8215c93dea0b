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

type MediaHandler struct {
	mediaService services.MediaService
	helper       *helper.HTTPHelper
	log          *zap.Logger
}

func NewMediaHandler(mediaService services.MediaService, h *helper.HTTPHelper, log *zap.Logger) *MediaHandler {
	return &MediaHandler{mediaService: mediaService, helper: h, log: log}
}

func (h *MediaHandler) GetAllMedia(c *gin.Context) {
	media, err := h.mediaService.GetAllMedia()
	if err != nil {
		h.log.Error("get media failed", zap.Error(err))
		h.helper.SendInternalError(c, "Failed to get media")
		return
	}
	c.JSON(http.StatusOK, media)
}

func (h *MediaHandler) GetMedia(c *gin.Context) {
	id := helper.ParseID(c.Param("id"))
	media, err := h.mediaService.GetMedia(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.helper.SendNotFound(c, "Media")
			return
		}
		h.log.Error("get media failed", zap.Int("id", id), zap.Error(err))
		h.helper.SendInternalError(c, "Failed to get media")
		return
	}
	c.JSON(http.StatusOK, media)
}

func (h *MediaHandler) GetMediaByCategory(c *gin.Context) {
	categoryID := helper.ParseID(c.Param("categoryId"))
	media, err := h.mediaService.GetMediaByCategory(categoryID)
	if err != nil {
		h.log.Error("get media by category failed", zap.Int("categoryId", categoryID), zap.Error(err))
		h.helper.SendInternalError(c, "Failed to get media")
		return
	}
	c.JSON(http.StatusOK, media)
}

func (h *MediaHandler) GetMediaByType(c *gin.Context) {
	mediaType := c.Param("type")
	media, err := h.mediaService.GetMediaByType(mediaType)
	if err != nil {
		h.log.Error("get media by type failed", zap.String("type", mediaType), zap.Error(err))
		h.helper.SendInternalError(c, "Failed to get media")
		return
	}
	c.JSON(http.StatusOK, media)
}

func (h *MediaHandler) GetMediaByArticle(c *gin.Context) {
	articleID := helper.ParseID(c.Param("articleId"))
	media, err := h.mediaService.GetMediaByArticle(articleID)
	if err != nil {
		h.log.Error("get media by article failed", zap.Int("articleId", articleID), zap.Error(err))
		h.helper.SendInternalError(c, "Failed to get media")
		return
	}
	c.JSON(http.StatusOK, media)
}

func (h *MediaHandler) CreateMedia(c *gin.Context) {
	var req models.InsertMedia
	if err := c.ShouldBindJSON(&req); err != nil {
		h.helper.SendValidationError(c, err)
		return
	}

	media, err := h.mediaService.CreateMedia(req)
	if err != nil {
		h.log.Error("add media failed", zap.Error(err))
		h.helper.SendInternalError(c, "Failed to add media")
		return
	}
	c.JSON(http.StatusCreated, media)
}

func (h *MediaHandler) UpdateMedia(c *gin.Context) {
	id := helper.ParseID(c.Param("id"))

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		h.helper.SendValidationError(c, err)
		return
	}

	media, err := h.mediaService.UpdateMedia(id, updates)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.helper.SendNotFound(c, "Media")
			return
		}
		h.log.Error("update media failed", zap.Int("id", id), zap.Error(err))
		h.helper.SendInternalError(c, "Failed to update media")
		return
	}
	c.JSON(http.StatusOK, media)
}

func (h *MediaHandler) DeleteMedia(c *gin.Context) {
	id := helper.ParseID(c.Param("id"))
	if err := h.mediaService.DeleteMedia(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.helper.SendNotFound(c, "Media")
			return
		}
		h.log.Error("delete media failed", zap.Int("id", id), zap.Error(err))
		h.helper.SendInternalError(c, "Failed to delete media")
		return
	}
	h.helper.SendMessage(c, "Media deleted successfully")
}
