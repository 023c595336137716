package routes

import (
	"github.com/blog-post/api-go/controllers"
	"github.com/gin-gonic/gin"
)

func SetupInteractionRoutes(protected *gin.RouterGroup, likedController *controllers.LikedController, favoriteController *controllers.FavoriteController) {
	liked := protected.Group("/liked")
	{
		liked.GET("", likedController.ListLiked)
		liked.POST("", likedController.CreateLiked)
		liked.DELETE("/:id", likedController.DeleteLiked)
	}

	favorite := protected.Group("/favorite")
	{
		favorite.GET("", favoriteController.GetFavorites)
		favorite.POST("", favoriteController.AddFavorite)
		favorite.DELETE("/:post_id", favoriteController.RemoveFavorite)
	}
}
