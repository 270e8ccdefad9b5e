package settings

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"propertyhub/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/settings", h.List)
	protected.PUT("/settings", h.BulkUpdate)
	protected.GET("/settings/:key", h.Get)
	protected.PUT("/settings/:key", h.UpdateByKey)
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to load settings")
		return
	}
	response.JSON(c, http.StatusOK, items)
}

func (h *Handler) Get(c *gin.Context) {
	setting, err := h.svc.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Setting not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to load setting")
		return
	}
	response.JSON(c, http.StatusOK, setting)
}

func (h *Handler) BulkUpdate(c *gin.Context) {
	var req BulkUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	items, err := h.svc.BulkUpdate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to update settings")
		return
	}
	response.JSON(c, http.StatusOK, items)
}

func (h *Handler) UpdateByKey(c *gin.Context) {
	var req UpdateValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	setting, err := h.svc.UpdateByKey(c.Request.Context(), c.Param("key"), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to update setting")
		return
	}
	response.JSON(c, http.StatusOK, setting)
}
