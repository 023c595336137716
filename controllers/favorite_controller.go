package controllers

import (
	"net/http"
	"strconv"

	"github.com/blog-post/api-go/apperrors"
	"github.com/blog-post/api-go/models"
	"github.com/blog-post/api-go/utils"
	"github.com/gin-gonic/gin"
)

// FavoriteService is what the favorite endpoints need from the service.
type FavoriteService interface {
	Add(userID, postID uint) (*models.Favorite, error)
	List(userID uint) (*models.Favorite, error)
	Remove(userID, postID uint) error
}

type FavoriteController struct {
	Service FavoriteService
}

type AddFavoriteRequest struct {
	Post uint `json:"post" binding:"required"`
}

func NewFavoriteController(service FavoriteService) *FavoriteController {
	return &FavoriteController{Service: service}
}

// AddFavorite godoc
// @Summary Bookmark a post
// @Description Adds a post to the caller's favorite collection; a post may appear at most once
// @Tags favorite
// @Accept json
// @Produce json
// @Param favorite body AddFavoriteRequest true "Favorite request"
// @Success 201 {object} models.Favorite
// @Router /favorite [post]
func (fc *FavoriteController) AddFavorite(c *gin.Context) {
	user := utils.GetUser(c)

	var req AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation(err.Error()))
		return
	}

	favorite, err := fc.Service.Add(user.UserID, req.Post)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, favorite)
}

// GetFavorites godoc
// @Summary Get the caller's favorite collection
// @Tags favorite
// @Produce json
// @Success 200 {object} models.Favorite
// @Router /favorite [get]
func (fc *FavoriteController) GetFavorites(c *gin.Context) {
	user := utils.GetUser(c)

	favorite, err := fc.Service.List(user.UserID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, favorite)
}

// RemoveFavorite godoc
// @Summary Remove a post from the caller's favorites
// @Tags favorite
// @Param post_id path integer true "Post ID"
// @Success 204
// @Router /favorite/{post_id} [delete]
func (fc *FavoriteController) RemoveFavorite(c *gin.Context) {
	user := utils.GetUser(c)

	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 32)
	if err != nil {
		apperrors.Respond(c, apperrors.Validation("invalid post id"))
		return
	}

	if err := fc.Service.Remove(user.UserID, uint(postID)); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
