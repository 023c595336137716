package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/blog-post/api-go/apperrors"
	"github.com/blog-post/api-go/models"
	"github.com/blog-post/api-go/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CommentController struct {
	DB *gorm.DB
}

type CreateCommentRequest struct {
	Post    uint   `json:"post" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{DB: db}
}

// CreateComment godoc
// @Summary Comment on a post
// @Description Any authenticated user may comment on any post
// @Tags comments
// @Accept json
// @Produce json
// @Param comment body CreateCommentRequest true "Comment creation request"
// @Success 201 {object} models.Comment
// @Router /comments [post]
func (cc *CommentController) CreateComment(c *gin.Context) {
	user := utils.GetUser(c)

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation(err.Error()))
		return
	}

	var post models.Post
	if err := cc.DB.First(&post, req.Post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apperrors.Respond(c, apperrors.NotFound("post not found"))
			return
		}
		apperrors.Respond(c, err)
		return
	}

	comment := models.Comment{
		PostID:    req.Post,
		Content:   req.Content,
		UserID:    user.UserID,
		CreatedAt: time.Now(),
	}

	if err := cc.DB.Create(&comment).Error; err != nil {
		apperrors.Respond(c, err)
		return
	}

	cc.DB.Preload("User").First(&comment, comment.ID)
	c.JSON(http.StatusCreated, comment)
}

// ListComments godoc
// @Summary List comments
// @Tags comments
// @Produce json
// @Success 200 {array} models.Comment
// @Router /comments [get]
func (cc *CommentController) ListComments(c *gin.Context) {
	var comments []models.Comment
	if err := cc.DB.Preload("User").Find(&comments).Error; err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// UpdateComment godoc
// @Summary Update a comment
// @Description Only the comment's author may update it
// @Tags comments
// @Accept json
// @Produce json
// @Param id path integer true "Comment ID"
// @Success 200 {object} models.Comment
// @Router /comments/{id} [put]
func (cc *CommentController) UpdateComment(c *gin.Context) {
	user := utils.GetUser(c)
	comment, ok := cc.findComment(c)
	if !ok {
		return
	}

	if comment.UserID != user.UserID {
		apperrors.Respond(c, apperrors.Forbidden("you can't update this comment"))
		return
	}

	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation(err.Error()))
		return
	}

	if err := cc.DB.Model(comment).Update("content", req.Content).Error; err != nil {
		apperrors.Respond(c, err)
		return
	}

	cc.DB.Preload("User").First(comment, comment.ID)
	c.JSON(http.StatusOK, comment)
}

// DeleteComment godoc
// @Summary Delete a comment
// @Description Only the comment's author may delete it
// @Tags comments
// @Param id path integer true "Comment ID"
// @Success 204
// @Router /comments/{id} [delete]
func (cc *CommentController) DeleteComment(c *gin.Context) {
	user := utils.GetUser(c)
	comment, ok := cc.findComment(c)
	if !ok {
		return
	}

	if comment.UserID != user.UserID {
		apperrors.Respond(c, apperrors.Forbidden("you can't delete this comment"))
		return
	}

	if err := cc.DB.Delete(comment).Error; err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (cc *CommentController) findComment(c *gin.Context) (*models.Comment, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.Respond(c, apperrors.Validation("invalid comment id"))
		return nil, false
	}

	var comment models.Comment
	if err := cc.DB.First(&comment, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apperrors.Respond(c, apperrors.NotFound("comment not found"))
		} else {
			apperrors.Respond(c, err)
		}
		return nil, false
	}
	return &comment, true
}
