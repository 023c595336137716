package routes

import (
	"github.com/blog-post/api-go/controllers"
	"github.com/gin-gonic/gin"
)

func SetupPostRoutes(protected *gin.RouterGroup, postController *controllers.PostController, commentController *controllers.CommentController) {
	posts := protected.Group("/post")
	{
		posts.POST("", postController.CreatePost)
		posts.PUT("/:id", postController.UpdatePost)
		posts.DELETE("/:id", postController.DeletePost)
	}

	comments := protected.Group("/comments")
	{
		comments.POST("", commentController.CreateComment)
		comments.PUT("/:id", commentController.UpdateComment)
		comments.DELETE("/:id", commentController.DeleteComment)
	}
}
