package export

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the export route under the authenticated group.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/assets/:id/export", h.Export)
}
