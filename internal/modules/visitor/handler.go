package visitor

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
	protected.GET("/visitors", h.List)
	protected.GET("/visitors/:id", h.GetByID)
	protected.POST("/visitors/admin", h.Create)
	protected.PUT("/visitors/:id", h.Update)
	protected.DELETE("/visitors/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to load visitors")
		return
	}
	response.JSON(c, http.StatusOK, items)
}

func (h *Handler) GetByID(c *gin.Context) {
	v, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Visitor not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to load visitor")
		return
	}
	response.JSON(c, http.StatusOK, v)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateVisitorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	v, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create visitor")
		return
	}
	response.JSON(c, http.StatusCreated, v)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateVisitorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	v, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Visitor not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to update visitor")
		return
	}
	response.JSON(c, http.StatusOK, v)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Visitor not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to delete visitor")
		return
	}
	response.Deleted(c)
}
