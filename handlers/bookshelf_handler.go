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

// BookshelfHandler serves the collaborative bookshelf: libraries, the books
// on them, and user-curated collections.
type BookshelfHandler struct {
	bookshelfService services.BookshelfService
	helper           *helper.HTTPHelper
	log              *zap.Logger
}

func NewBookshelfHandler(bookshelfService services.BookshelfService, h *helper.HTTPHelper, log *zap.Logger) *BookshelfHandler {
	return &BookshelfHandler{bookshelfService: bookshelfService, helper: h, log: log}
}

// Libraries

func (h *BookshelfHandler) GetLibraries(c *gin.Context) {
	libraries, err := h.bookshelfService.GetLibraries()
	if err != nil {
		h.log.Error("get libraries failed", zap.Error(err))
		h.helper.SendInternalError(c, "Failed to get libraries")
		return
	}
	c.JSON(http.StatusOK, libraries)
}

func (h *BookshelfHandler) GetLibrary(c *gin.Context) {
	id := helper.ParseID(c.Param("id"))
	library, err := h.bookshelfService.GetLibrary(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.helper.SendNotFound(c, "Library")
			return
		}
		h.log.Error("get library failed", zap.Int("id", id), zap.Error(err))
		h.helper.SendInternalError(c, "Failed to get library")
		return
	}
	c.JSON(http.StatusOK, library)
}

func (h *BookshelfHandler) CreateLibrary(c *gin.Context) {
	var req models.InsertLibrary
	if err := c.ShouldBindJSON(&req); err != nil {
		h.helper.SendValidationError(c, err)
		return
	}

	library, err := h.bookshelfService.CreateLibrary(req)
	if err != nil {
		h.log.Error("add library failed", zap.Error(err))
		h.helper.SendInternalError(c, "Failed to add library")
		return
	}
	c.JSON(http.StatusCreated, library)
}

func (h *BookshelfHandler) UpdateLibrary(c *gin.Context) {
	id := helper.ParseID(c.Param("id"))

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		h.helper.SendValidationError(c, err)
		return
	}

	library, err := h.bookshelfService.UpdateLibrary(id, updates)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.helper.SendNotFound(c, "Library")
			return
		}
		h.log.Error("update library failed", zap.Int("id", id), zap.Error(err))
		h.helper.SendInternalError(c, "Failed to update library")
		return
	}
	c.JSON(http.StatusOK, library)
}

func (h *BookshelfHandler) DeleteLibrary(c *gin.Context) {
	id := helper.ParseID(c.Param("id"))
	if err := h.bookshelfService.DeleteLibrary(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.helper.SendNotFound(c, "Library")
			return
		}
		h.log.Error("delete library failed", zap.Int("id", id), zap.Error(err))
		h.helper.SendInternalError(c, "Failed to delete library")
		return
	}
	h.helper.SendMessage(c, "Library deleted successfully")
}

// Books

func (h *BookshelfHandler) GetBooks(c *gin.Context) {
	libraryID := helper.ParseID(c.Query("libraryId"))
	books, err := h.bookshelfService.GetBooks(libraryID)
	if err != nil {
		h.log.Error("get books failed", zap.Error(err))
		h.helper.SendInternalError(c, "Failed to get books")
		return
	}
	c.JSON(http.StatusOK, books)
}

func (h *BookshelfHandler) GetBook(c *gin.Context) {
	id := helper.ParseID(c.Param("id"))
	book, err := h.bookshelfService.GetBook(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.helper.SendNotFound(c, "Book")
			return
		}
		h.log.Error("get book failed", zap.Int("id", id), zap.Error(err))
		h.helper.SendInternalError(c, "Failed to get book")
		return
	}
	c.JSON(http.StatusOK, book)
}

func (h *BookshelfHandler) CreateBook(c *gin.Context) {
	var req models.InsertBook
	if err := c.ShouldBindJSON(&req); err != nil {
		h.helper.SendValidationError(c, err)
		return
	}

	book, err := h.bookshelfService.CreateBook(req)
	if err != nil {
		h.log.Error("add book failed", zap.Error(err))
		h.helper.SendInternalError(c, "Failed to add book")
		return
	}
	c.JSON(http.StatusCreated, book)
}

func (h *BookshelfHandler) UpdateBook(c *gin.Context) {
	id := helper.ParseID(c.Param("id"))

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		h.helper.SendValidationError(c, err)
		return
	}

	book, err := h.bookshelfService.UpdateBook(id, updates)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.helper.SendNotFound(c, "Book")
			return
		}
		h.log.Error("update book failed", zap.Int("id", id), zap.Error(err))
		h.helper.SendInternalError(c, "Failed to update book")
		return
	}
	c.JSON(http.StatusOK, book)
}

func (h *BookshelfHandler) DeleteBook(c *gin.Context) {
	id := helper.ParseID(c.Param("id"))
	if err := h.bookshelfService.DeleteBook(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.helper.SendNotFound(c, "Book")
			return
		}
		h.log.Error("delete book failed", zap.Int("id", id), zap.Error(err))
		h.helper.SendInternalError(c, "Failed to delete book")
		return
	}
	h.helper.SendMessage(c, "Book deleted successfully")
}

// Collections

func (h *BookshelfHandler) GetCollections(c *gin.Context) {
	collections, err := h.bookshelfService.GetCollections()
	if err != nil {
		h.log.Error("get collections failed", zap.Error(err))
		h.helper.SendInternalError(c, "Failed to get collections")
		return
	}
	c.JSON(http.StatusOK, collections)
}

func (h *BookshelfHandler) GetCollection(c *gin.Context) {
	id := helper.ParseID(c.Param("id"))
	collection, err := h.bookshelfService.GetCollection(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.helper.SendNotFound(c, "Collection")
			return
		}
		h.log.Error("get collection failed", zap.Int("id", id), zap.Error(err))
		h.helper.SendInternalError(c, "Failed to get collection")
		return
	}
	c.JSON(http.StatusOK, collection)
}

func (h *BookshelfHandler) CreateCollection(c *gin.Context) {
	var req models.InsertCollection
	if err := c.ShouldBindJSON(&req); err != nil {
		h.helper.SendValidationError(c, err)
		return
	}

	collection, err := h.bookshelfService.CreateCollection(req)
	if err != nil {
		h.log.Error("add collection failed", zap.Error(err))
		h.helper.SendInternalError(c, "Failed to add collection")
		return
	}
	c.JSON(http.StatusCreated, collection)
}

func (h *BookshelfHandler) UpdateCollection(c *gin.Context) {
	id := helper.ParseID(c.Param("id"))

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		h.helper.SendValidationError(c, err)
		return
	}

	collection, err := h.bookshelfService.UpdateCollection(id, updates)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.helper.SendNotFound(c, "Collection")
			return
		}
		h.log.Error("update collection failed", zap.Int("id", id), zap.Error(err))
		h.helper.SendInternalError(c, "Failed to update collection")
		return
	}
	c.JSON(http.StatusOK, collection)
}

func (h *BookshelfHandler) DeleteCollection(c *gin.Context) {
	id := helper.ParseID(c.Param("id"))
	if err := h.bookshelfService.DeleteCollection(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.helper.SendNotFound(c, "Collection")
			return
		}
		h.log.Error("delete collection failed", zap.Int("id", id), zap.Error(err))
		h.helper.SendInternalError(c, "Failed to delete collection")
		return
	}
	h.helper.SendMessage(c, "Collection deleted successfully")
}
