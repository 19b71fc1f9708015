package label

import "github.com/gin-gonic/gin"

// RegisterRoutes registers label routes under the authenticated group.
// Creation and listing are scoped to the owning asset.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/assets/:id/labels", h.Create)
	r.GET("/assets/:id/labels", h.List)

	labels := r.Group("/labels")
	{
		labels.PATCH("/:id", h.Update)
		labels.POST("/:id/deactivate", h.Deactivate)
		labels.DELETE("/:id", h.Delete)
	}
}
