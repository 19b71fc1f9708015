package asset

import "github.com/gin-gonic/gin"

// RegisterRoutes registers asset routes under the authenticated group.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	assets := r.Group("/assets")
	{
		assets.POST("", h.Create)
		assets.GET("", h.ListMine)
		assets.GET("/:id", h.Get)
		assets.PATCH("/:id", h.UpdateMetadata)
		assets.POST("/:id/labeled", h.MarkLabeled)
		assets.DELETE("/:id", h.SoftDelete)
		assets.DELETE("/:id/purge", h.HardDelete)
	}
}
