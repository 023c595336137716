package controllers

import (
	"net/http"
	"strconv"

	"github.com/blog-post/api-go/apperrors"
	"github.com/blog-post/api-go/models"
	"github.com/blog-post/api-go/utils"
	"github.com/gin-gonic/gin"
)

// RatingService is what the liked endpoints need from the rating service.
type RatingService interface {
	Rate(userID, postID uint, grade int) (*models.Liked, error)
	ListByUser(userID uint) ([]models.Liked, error)
	Delete(userID, id uint) error
}

type LikedController struct {
	Service RatingService
}

type CreateLikedRequest struct {
	Post  uint `json:"post" binding:"required"`
	Grade *int `json:"grade" binding:"required"` // pointer so grade 0 binds
}

func NewLikedController(service RatingService) *LikedController {
	return &LikedController{Service: service}
}

// CreateLiked godoc
// @Summary Rate a post
// @Description Records a 0-10 grade under the configured duplicate policy
// @Tags liked
// @Accept json
// @Produce json
// @Param liked body CreateLikedRequest true "Rating request"
// @Success 201 {object} models.Liked
// @Router /liked [post]
func (lc *LikedController) CreateLiked(c *gin.Context) {
	user := utils.GetUser(c)

	var req CreateLikedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation(err.Error()))
		return
	}

	liked, err := lc.Service.Rate(user.UserID, req.Post, *req.Grade)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, liked)
}

// ListLiked godoc
// @Summary List the caller's ratings
// @Tags liked
// @Produce json
// @Success 200 {array} models.Liked
// @Router /liked [get]
func (lc *LikedController) ListLiked(c *gin.Context) {
	user := utils.GetUser(c)

	liked, err := lc.Service.ListByUser(user.UserID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, liked)
}

// DeleteLiked godoc
// @Summary Delete one of the caller's ratings
// @Tags liked
// @Param id path integer true "Rating ID"
// @Success 204
// @Router /liked/{id} [delete]
func (lc *LikedController) DeleteLiked(c *gin.Context) {
	user := utils.GetUser(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.Respond(c, apperrors.Validation("invalid rating id"))
		return
	}

	if err := lc.Service.Delete(user.UserID, uint(id)); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
