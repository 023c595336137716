package middleware

import (
	"os"
	"strings"

	"github.com/blog-post/api-go/apperrors"
	"github.com/blog-post/api-go/utils"
	"github.com/gin-gonic/gin"
)

func AuthMiddleware() gin.HandlerFunc {
	tokens := utils.NewTokenService(os.Getenv("JWT_SECRET"))

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			apperrors.Respond(c, apperrors.Unauthenticated("authorization header is required"))
			c.Abort()
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || !strings.EqualFold(bearerToken[0], "Bearer") {
			apperrors.Respond(c, apperrors.Unauthenticated("invalid token format"))
			c.Abort()
			return
		}

		claims, err := tokens.ValidateToken(bearerToken[1])
		if err != nil {
			apperrors.Respond(c, apperrors.Unauthenticated("invalid token"))
			c.Abort()
			return
		}

		c.Set(string(utils.UserContextKey), &utils.UserClaims{UserID: claims.UserID})
		c.Next()
	}
}
