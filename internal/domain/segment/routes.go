package segment

import "github.com/gin-gonic/gin"

// RegisterRoutes registers segment routes under the authenticated group.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/assets/:id/segments", h.Create)
	r.GET("/assets/:id/segments", h.List)

	segments := r.Group("/segments")
	{
		segments.PATCH("/:id", h.Update)
		segments.DELETE("/:id", h.Delete)
	}
}
