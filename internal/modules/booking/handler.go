package booking

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
	api.POST("/enquiry-bookings", h.Create)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/enquiry-bookings", h.List)
	protected.GET("/enquiry-bookings/count", h.Count)
	protected.GET("/enquiry-bookings/:id", h.GetByID)
	protected.PUT("/enquiry-bookings/:id", h.Update)
	protected.DELETE("/enquiry-bookings/:id", h.Delete)
	protected.PATCH("/enquiry-bookings/:id/confirm", h.Confirm)
	protected.PATCH("/enquiry-bookings/:id/cancel", h.Cancel)
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context(), c.Query("status"), c.Query("propertyId"))
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			response.Error(c, http.StatusBadRequest, "Invalid status filter")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to load enquiry bookings")
		return
	}
	response.JSON(c, http.StatusOK, items)
}

func (h *Handler) Count(c *gin.Context) {
	count, err := h.svc.CountPending(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to count enquiry bookings")
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"count": count})
}

func (h *Handler) GetByID(c *gin.Context) {
	e, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Enquiry booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to load enquiry booking")
		return
	}
	response.JSON(c, http.StatusOK, e)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	e, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create enquiry booking")
		return
	}

	response.JSON(c, http.StatusCreated, e)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	e, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Enquiry booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to update enquiry booking")
		return
	}
	response.JSON(c, http.StatusOK, e)
}

func (h *Handler) Confirm(c *gin.Context) {
	e, err := h.svc.Confirm(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Enquiry booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to confirm enquiry booking")
		return
	}
	response.JSON(c, http.StatusOK, e)
}

func (h *Handler) Cancel(c *gin.Context) {
	e, err := h.svc.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Enquiry booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to cancel enquiry booking")
		return
	}
	response.JSON(c, http.StatusOK, e)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Enquiry booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to delete enquiry booking")
		return
	}
	response.Deleted(c)
}
