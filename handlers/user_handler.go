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

type UserHandler struct {
	userService services.UserService
	helper      *helper.HTTPHelper
	log         *zap.Logger
}

func NewUserHandler(userService services.UserService, h *helper.HTTPHelper, log *zap.Logger) *UserHandler {
	return &UserHandler{userService: userService, helper: h, log: log}
}

func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.userService.GetUsers()
	if err != nil {
		h.log.Error("get users failed", zap.Error(err))
		h.helper.SendInternalError(c, "Failed to get users")
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id := helper.ParseID(c.Param("id"))
	user, err := h.userService.GetUser(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.helper.SendNotFound(c, "User")
			return
		}
		h.log.Error("get user failed", zap.Int("id", id), zap.Error(err))
		h.helper.SendInternalError(c, "Failed to get user")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateStatus(c *gin.Context) {
	id := helper.ParseID(c.Param("id"))

	var req models.UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.helper.SendValidationError(c, err)
		return
	}

	user, err := h.userService.UpdateStatus(id, *req.Online)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.helper.SendNotFound(c, "User")
			return
		}
		h.log.Error("update user status failed", zap.Int("id", id), zap.Error(err))
		h.helper.SendInternalError(c, "Failed to update user status")
		return
	}
	c.JSON(http.StatusOK, user)
}
