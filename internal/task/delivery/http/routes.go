package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to Handler methods under rg.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.DELETE("", h.Clear)
		tasks.GET("/matrix", h.Matrix)
		tasks.DELETE("/:id", h.Delete)
	}
}
