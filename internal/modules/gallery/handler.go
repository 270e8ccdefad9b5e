package gallery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"propertyhub/internal/pkg/response"
)

const maxFormMemory = 64 << 20

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	api.GET("/properties/:id/gallery", h.ListByProperty)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.POST("/properties/:id/gallery", h.Upload)
	protected.PATCH("/properties/gallery/:imageId", h.UpdateTag)
	protected.DELETE("/properties/gallery/:imageId", h.Delete)
}

func (h *Handler) ListByProperty(c *gin.Context) {
	items, err := h.svc.ListByProperty(c.Request.Context(), c.Param("id"), c.Query("tag"))
	if err != nil {
		if errors.Is(err, ErrInvalidTag) {
			response.Error(c, http.StatusBadRequest, "Invalid gallery tag")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to load gallery")
		return
	}
	response.JSON(c, http.StatusOK, items)
}

func (h *Handler) Upload(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(maxFormMemory); err != nil {
		response.Error(c, http.StatusBadRequest, "Failed to parse form")
		return
	}

	mf := c.Request.MultipartForm
	files := mf.File["images[]"]
	if len(files) == 0 {
		files = mf.File["images"]
	}
	tags := c.PostFormArray("tags[]")
	if len(tags) == 0 {
		tags = c.PostFormArray("tags")
	}

	items, err := h.svc.Upload(c.Request.Context(), c.Param("id"), files, tags)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoFiles):
			response.Error(c, http.StatusBadRequest, "No image files uploaded")
		case errors.Is(err, ErrInvalidTag):
			response.Error(c, http.StatusBadRequest, "Invalid gallery tag")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Property not found")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to upload gallery images")
		}
		return
	}

	response.JSON(c, http.StatusCreated, items)
}

func (h *Handler) UpdateTag(c *gin.Context) {
	var req struct {
		Tag string `json:"tag" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	img, err := h.svc.UpdateTag(c.Request.Context(), c.Param("imageId"), req.Tag)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidTag):
			response.Error(c, http.StatusBadRequest, "Invalid gallery tag")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Gallery image not found")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update gallery image")
		}
		return
	}

	response.JSON(c, http.StatusOK, img)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("imageId")); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Gallery image not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to delete gallery image")
		return
	}
	response.Deleted(c)
}
