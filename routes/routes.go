package routes

import (
	"github.com/blog-post/api-go/config"
	"github.com/blog-post/api-go/controllers"
	"github.com/blog-post/api-go/favorites"
	"github.com/blog-post/api-go/middleware"
	"github.com/blog-post/api-go/policy"
	"github.com/blog-post/api-go/ratings"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cache *redis.Client) {
	ratingService := ratings.NewService(
		ratings.NewGormStore(db),
		cache,
		ratings.PolicyFromName(config.RatingPolicyName()),
	)
	favoriteService := favorites.NewService(favorites.NewGormStore(db))
	postPolicy := policy.FromName(config.AuthPolicyName(), config.AdminUserID())

	// Initialize controllers
	authController := controllers.NewAuthController(db)
	postController := controllers.NewPostController(db, ratingService, postPolicy)
	commentController := controllers.NewCommentController(db)
	likedController := controllers.NewLikedController(ratingService)
	favoriteController := controllers.NewFavoriteController(favoriteService)
	uploadController := controllers.NewUploadController()

	// Public routes
	public := r.Group("/api/v1")
	{
		public.POST("/users", authController.Register)
		public.POST("/users/login", authController.Login)
		public.POST("/token/refresh", authController.RefreshToken)
		public.POST("/token/verify", authController.VerifyToken)

		// Read views are open; mutations require a principal
		public.GET("/post", postController.ListPosts)
		public.GET("/post/:id", postController.GetPost)
		public.GET("/comments", commentController.ListComments)
	}

	// Protected routes
	protected := r.Group("/api/v1")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/logout", authController.Logout)
		protected.GET("/profile", authController.GetProfile)

		SetupPostRoutes(protected, postController, commentController)
		SetupInteractionRoutes(protected, likedController, favoriteController)
		SetupUploadRoutes(protected, uploadController)
	}
}
