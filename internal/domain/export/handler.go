package export

import (
	"errors"
	"net/http"
	"strconv"

	"medialabel/internal/domain/asset"
	"medialabel/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Export(c *gin.Context) {
	assetID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid asset ID")
		return
	}

	art, err := h.service.Export(c.Request.Context(), assetID, c.GetInt64("user_id"))
	if err != nil {
		switch {
		case errors.Is(err, asset.ErrAssetNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "asset not found")
		case errors.Is(err, asset.ErrNotOwner):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "you do not own this asset")
		case errors.Is(err, asset.ErrInvalidTransition):
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "export failed")
		}
		return
	}
	response.Success(c, http.StatusOK, art)
}
