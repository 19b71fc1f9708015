package region

import "github.com/gin-gonic/gin"

// RegisterRoutes registers region routes under the authenticated group.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/assets/:id/regions", h.Create)
	r.GET("/assets/:id/regions", h.List)

	regions := r.Group("/regions")
	{
		regions.PATCH("/:id", h.Update)
		regions.DELETE("/:id", h.Delete)
	}
}
