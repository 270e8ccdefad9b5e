package property

import (
	"errors"
	"net/http"
	"strconv"

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
	api.GET("/properties", h.List)
	api.GET("/properties/:id", h.GetByID)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.POST("/properties", h.Create)
	protected.PUT("/properties/:id", h.Update)
	protected.DELETE("/properties/:id", h.Delete)
	protected.POST("/properties/update-featured-images/:id", h.ReplaceFeatured)
	protected.POST("/properties/featured-gallery/:id", h.RemoveFeatured)
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to load properties")
		return
	}
	response.JSON(c, http.StatusOK, items)
}

func (h *Handler) GetByID(c *gin.Context) {
	p, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Property not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to load property")
		return
	}
	response.JSON(c, http.StatusOK, p)
}

func (h *Handler) Create(c *gin.Context) {
	form, err := bindForm(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Failed to parse form")
		return
	}

	p, err := h.svc.Create(c.Request.Context(), form)
	if err != nil {
		if errors.Is(err, ErrInvalidRequest) {
			response.Error(c, http.StatusBadRequest, "Invalid property data")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to create property")
		return
	}

	response.JSON(c, http.StatusCreated, p)
}

func (h *Handler) Update(c *gin.Context) {
	form, err := bindForm(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Failed to parse form")
		return
	}

	p, err := h.svc.Update(c.Request.Context(), c.Param("id"), form)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Property not found")
		case errors.Is(err, ErrInvalidRequest):
			response.Error(c, http.StatusBadRequest, "Invalid property data")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update property")
		}
		return
	}

	response.JSON(c, http.StatusOK, p)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Property not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to delete property")
		return
	}
	response.Deleted(c)
}

func (h *Handler) ReplaceFeatured(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(maxFormMemory); err != nil {
		response.Error(c, http.StatusBadRequest, "Failed to parse form")
		return
	}

	form := Form{Images: c.Request.MultipartForm.File["images"]}

	p, err := h.svc.ReplaceFeaturedImages(c.Request.Context(), c.Param("id"), form)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Property not found")
		case errors.Is(err, ErrWrongImageCount):
			response.Error(c, http.StatusBadRequest, "Exactly 4 featured images required")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update featured images")
		}
		return
	}

	response.JSON(c, http.StatusOK, p)
}

func (h *Handler) RemoveFeatured(c *gin.Context) {
	var req RemoveFeaturedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	p, err := h.svc.RemoveFeaturedImage(c.Request.Context(), c.Param("id"), req.URL)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Property not found")
		case errors.Is(err, ErrImageNotListed):
			response.Error(c, http.StatusBadRequest, "Image url not found on property")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to remove featured image")
		}
		return
	}

	response.JSON(c, http.StatusOK, p)
}

func bindForm(c *gin.Context) (Form, error) {
	if err := c.Request.ParseMultipartForm(maxFormMemory); err != nil {
		return Form{}, err
	}

	form := Form{
		Name:        c.PostForm("name"),
		Nickname:    c.PostForm("nickname"),
		Description: c.PostForm("description"),
		Address:     c.PostForm("address"),
		RefNo:       c.PostForm("refNo"),
		CleaningFee: c.PostForm("cleaning_fee"),
		Pets:        c.PostForm("pets"),
		PetsFee:     c.PostForm("pets_fee"),
		Bedrooms:    c.PostForm("bedrooms"),
		Bathrooms:   c.PostForm("bathrooms"),
		Guests:      c.PostForm("guests"),
		Status:      c.PostForm("status"),
		Features:    c.PostFormArray("features[]"),
	}
	form.Price, _ = strconv.ParseFloat(c.PostForm("price"), 64)
	form.Longitude, _ = strconv.ParseFloat(c.PostForm("longitude"), 64)
	form.Latitude, _ = strconv.ParseFloat(c.PostForm("latitude"), 64)

	if mf := c.Request.MultipartForm; mf != nil {
		form.Images = mf.File["images[]"]
		if len(form.Images) == 0 {
			form.Images = mf.File["images"]
		}
	}
	if len(form.Features) == 0 {
		form.Features = c.PostFormArray("features")
	}

	return form, nil
}
