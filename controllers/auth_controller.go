package controllers

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/blog-post/api-go/apperrors"
	"github.com/blog-post/api-go/models"
	"github.com/blog-post/api-go/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB     *gorm.DB
	Tokens *utils.TokenService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		DB:     db,
		Tokens: utils.NewTokenService(os.Getenv("JWT_SECRET")),
	}
}

// Register godoc
// @Summary Register a new user
// @Description Creates a user and returns an access/refresh token pair
// @Tags users
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Router /users [post]
func (ac *AuthController) Register(c *gin.Context) {
	var input struct {
		Name        string `json:"name" binding:"required"`
		PhoneNumber string `json:"phone_number" binding:"required,min=9"`
		Password    string `json:"password" binding:"required,min=6"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.Respond(c, apperrors.Validation(err.Error()))
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		apperrors.Respond(c, apperrors.Internal("could not hash password"))
		return
	}

	user := models.User{
		Name:        input.Name,
		PhoneNumber: input.PhoneNumber,
		Password:    string(hashedPassword),
	}

	if err := ac.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			apperrors.Respond(c, apperrors.Conflict("phone number already registered"))
			return
		}
		apperrors.Respond(c, err)
		return
	}

	accessToken, refreshToken, err := ac.issueTokenPair(&user)
	if err != nil {
		apperrors.Respond(c, apperrors.Internal("could not generate token"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token_type":    "Bearer",
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"user":          user.Brief(),
	})
}

// Login godoc
// @Summary Log in with phone number and password
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /users/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		PhoneNumber string `json:"phone_number" binding:"required"`
		Password    string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.Respond(c, apperrors.Validation(err.Error()))
		return
	}

	var user models.User
	if err := ac.DB.Where("phone_number = ?", input.PhoneNumber).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apperrors.Respond(c, apperrors.NotFound("user not found"))
			return
		}
		apperrors.Respond(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		apperrors.Respond(c, apperrors.InvalidCredentials("invalid password"))
		return
	}

	accessToken, refreshToken, err := ac.issueTokenPair(&user)
	if err != nil {
		apperrors.Respond(c, apperrors.Internal("could not generate token"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token_type":    "Bearer",
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"user":          user.Brief(),
	})
}

// RefreshToken rotates a stored refresh token and mints a new pair.
func (ac *AuthController) RefreshToken(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.Respond(c, apperrors.Validation(err.Error()))
		return
	}

	var refreshToken models.RefreshToken
	if err := ac.DB.Where("token = ?", input.RefreshToken).First(&refreshToken).Error; err != nil {
		apperrors.Respond(c, apperrors.Unauthenticated("invalid refresh token"))
		return
	}

	if time.Now().After(refreshToken.ExpirationDate) {
		ac.DB.Delete(&refreshToken)
		apperrors.Respond(c, apperrors.Unauthenticated("refresh token expired"))
		return
	}

	var user models.User
	if err := ac.DB.First(&user, refreshToken.UserID).Error; err != nil {
		apperrors.Respond(c, apperrors.Unauthenticated("user not found"))
		return
	}

	accessToken, err := ac.Tokens.GenerateAccessToken(user.ID)
	if err != nil {
		apperrors.Respond(c, apperrors.Internal("could not generate access token"))
		return
	}

	newRefreshToken, err := ac.Tokens.GenerateRefreshToken(user.ID)
	if err != nil {
		apperrors.Respond(c, apperrors.Internal("could not generate refresh token"))
		return
	}

	refreshToken.Token = newRefreshToken
	refreshToken.ExpirationDate = time.Now().Add(utils.RefreshTokenTTL)
	ac.DB.Save(&refreshToken)

	c.JSON(http.StatusOK, gin.H{
		"token_type":    "Bearer",
		"access_token":  accessToken,
		"refresh_token": newRefreshToken,
		"user":          user.Brief(),
	})
}

// VerifyToken reports whether the presented access token is valid.
func (ac *AuthController) VerifyToken(c *gin.Context) {
	var input struct {
		Token string `json:"token" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.Respond(c, apperrors.Validation(err.Error()))
		return
	}

	claims, err := ac.Tokens.ValidateToken(input.Token)
	if err != nil {
		apperrors.Respond(c, apperrors.Unauthenticated("invalid token"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true, "user_id": claims.UserID})
}

func (ac *AuthController) Logout(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.Respond(c, apperrors.Validation(err.Error()))
		return
	}

	// Token already gone still counts as logged out
	ac.DB.Where("token = ?", input.RefreshToken).Delete(&models.RefreshToken{})

	c.JSON(http.StatusOK, gin.H{"message": "logged out successfully"})
}

func (ac *AuthController) GetProfile(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		apperrors.Respond(c, apperrors.Unauthenticated("user not found in context"))
		return
	}

	var dbUser models.User
	if err := ac.DB.First(&dbUser, user.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apperrors.Respond(c, apperrors.NotFound("user not found"))
			return
		}
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dbUser)
}

func (ac *AuthController) issueTokenPair(user *models.User) (string, string, error) {
	accessToken, err := ac.Tokens.GenerateAccessToken(user.ID)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := ac.Tokens.GenerateRefreshToken(user.ID)
	if err != nil {
		return "", "", err
	}

	if err := ac.DB.Create(&models.RefreshToken{
		UserID:         user.ID,
		Token:          refreshToken,
		ExpirationDate: time.Now().Add(utils.RefreshTokenTTL),
	}).Error; err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}
