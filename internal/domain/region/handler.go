package region

import (
	"errors"
	"net/http"
	"strconv"

	"medialabel/internal/domain/asset"
	"medialabel/internal/domain/label"
	"medialabel/internal/pkg/response"
	"medialabel/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	assetID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	var req CreateRegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", details)
		return
	}
	rg, err := h.service.Create(c.Request.Context(), assetID, c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, rg)
}

func (h *Handler) List(c *gin.Context) {
	assetID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	var labelID *int64
	if raw := c.Query("label_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid label_id")
			return
		}
		labelID = &id
	}
	rows, err := h.service.List(c.Request.Context(), assetID, c.GetInt64("user_id"), labelID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rows)
}

func (h *Handler) Update(c *gin.Context) {
	regionID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	var req UpdateRegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", details)
		return
	}
	rg, err := h.service.Update(c.Request.Context(), regionID, c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rg)
}

func (h *Handler) Delete(c *gin.Context) {
	regionID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), regionID, c.GetInt64("user_id")); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrRegionNotFound),
		errors.Is(err, asset.ErrAssetNotFound),
		errors.Is(err, label.ErrLabelNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, asset.ErrNotOwner):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "you do not own this asset")
	case errors.Is(err, ErrInvalidDimensions),
		errors.Is(err, ErrNegativeOrigin),
		errors.Is(err, ErrLabelMismatch),
		errors.Is(err, ErrNotImageAsset):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "operation failed")
	}
}

func paramInt64(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid "+name)
		return 0, false
	}
	return id, true
}
