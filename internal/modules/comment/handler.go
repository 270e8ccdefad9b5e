package comment

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

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	api.POST("/comments", h.Create)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/comments", h.List)
	protected.PATCH("/comments/:id/approve", h.Approve)
	protected.PATCH("/comments/:id/reject", h.Reject)
	protected.POST("/comments/:id/reply", h.Reply)
	protected.DELETE("/comments/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context(), c.Query("status"), c.Query("propertyId"))
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			response.Error(c, http.StatusBadRequest, "Invalid status filter")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to load comments")
		return
	}
	response.JSON(c, http.StatusOK, items)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	cm, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidRequest) {
			response.Error(c, http.StatusBadRequest, "Invalid comment data")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to create comment")
		return
	}

	response.JSON(c, http.StatusCreated, cm)
}

func (h *Handler) Approve(c *gin.Context) {
	cm, err := h.svc.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Comment not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to approve comment")
		return
	}
	response.JSON(c, http.StatusOK, cm)
}

func (h *Handler) Reject(c *gin.Context) {
	cm, err := h.svc.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Comment not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to reject comment")
		return
	}
	response.JSON(c, http.StatusOK, cm)
}

func (h *Handler) Reply(c *gin.Context) {
	var req ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	cm, err := h.svc.Reply(c.Request.Context(), c.Param("id"), req.Reply)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Comment not found")
		case errors.Is(err, ErrInvalidRequest):
			response.Error(c, http.StatusBadRequest, "Reply must not be empty")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to reply to comment")
		}
		return
	}
	response.JSON(c, http.StatusOK, cm)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Comment not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to delete comment")
		return
	}
	response.Deleted(c)
}
