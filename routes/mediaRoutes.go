package routes

import (
	"civicai-be/controllers"

	"github.com/gin-gonic/gin"
)

// MediaRoutes sets up public media streaming
func MediaRoutes(r *gin.Engine, media *controllers.MediaController) {
	r.GET("/media/:bucket/:key", media.ServeMedia)
}
