package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/blog-post/api-go/apperrors"
	"github.com/blog-post/api-go/models"
	"github.com/blog-post/api-go/policy"
	"github.com/blog-post/api-go/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RatingReader is the slice of the rating service the post views need.
type RatingReader interface {
	Average(postID uint) (float64, error)
	ListByPost(postID uint) ([]models.Liked, error)
}

type PostController struct {
	DB      *gorm.DB
	Ratings RatingReader
	Policy  policy.PostPolicy
}

type CreatePostRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Content     string `json:"content" binding:"required"`
	Image       string `json:"image"`
}

type UpdatePostRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Image       string `json:"image"`
}

func NewPostController(db *gorm.DB, ratings RatingReader, postPolicy policy.PostPolicy) *PostController {
	return &PostController{DB: db, Ratings: ratings, Policy: postPolicy}
}

// CreatePost godoc
// @Summary Create a new post
// @Description Creates a post owned by the caller, subject to the active authorization policy
// @Tags posts
// @Accept json
// @Produce json
// @Param post body CreatePostRequest true "Post creation request"
// @Success 201 {object} models.Post
// @Router /post [post]
func (pc *PostController) CreatePost(c *gin.Context) {
	user := utils.GetUser(c)
	if !pc.Policy.CanCreate(user.UserID) {
		apperrors.Respond(c, apperrors.Forbidden("not enough rights to create a post"))
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation(err.Error()))
		return
	}

	post := models.Post{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Image:       req.Image,
		UserID:      user.UserID,
		CreatedAt:   time.Now(),
	}

	if err := pc.DB.Create(&post).Error; err != nil {
		apperrors.Respond(c, err)
		return
	}

	pc.DB.Preload("User").First(&post, post.ID)
	c.JSON(http.StatusCreated, postView(&post))
}

// ListPosts godoc
// @Summary List all posts
// @Description Returns every post with its author summary and average rating
// @Tags posts
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /post [get]
func (pc *PostController) ListPosts(c *gin.Context) {
	var posts []models.Post
	if err := pc.DB.Preload("User").Order("created_at DESC").Find(&posts).Error; err != nil {
		apperrors.Respond(c, err)
		return
	}

	views := make([]gin.H, 0, len(posts))
	for i := range posts {
		rating, err := pc.Ratings.Average(posts[i].ID)
		if err != nil {
			apperrors.Respond(c, err)
			return
		}
		view := postView(&posts[i])
		view["rating"] = rating
		views = append(views, view)
	}

	c.JSON(http.StatusOK, views)
}

// GetPost godoc
// @Summary Get a post with comments and ratings
// @Description Composite view: post fields, author summary, comment list, rating list and aggregate rating
// @Tags posts
// @Produce json
// @Param id path integer true "Post ID"
// @Success 200 {object} map[string]interface{}
// @Router /post/{id} [get]
func (pc *PostController) GetPost(c *gin.Context) {
	post, ok := pc.findPost(c)
	if !ok {
		return
	}

	var comments []models.Comment
	if err := pc.DB.Preload("User").Where("post_id = ?", post.ID).Find(&comments).Error; err != nil {
		apperrors.Respond(c, err)
		return
	}

	liked, err := pc.Ratings.ListByPost(post.ID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	rating, err := pc.Ratings.Average(post.ID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	view := postView(post)
	view["rating"] = rating
	view["comments"] = comments
	view["liked"] = liked
	c.JSON(http.StatusOK, view)
}

// UpdatePost godoc
// @Summary Update a post
// @Description Partial update; omitted fields keep their current value
// @Tags posts
// @Accept json
// @Produce json
// @Param id path integer true "Post ID"
// @Param post body UpdatePostRequest true "Post update request"
// @Success 200 {object} models.Post
// @Router /post/{id} [put]
func (pc *PostController) UpdatePost(c *gin.Context) {
	user := utils.GetUser(c)
	post, ok := pc.findPost(c)
	if !ok {
		return
	}

	if !pc.Policy.CanModify(user.UserID, post) {
		apperrors.Respond(c, apperrors.Forbidden("not enough rights to update a post"))
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation(err.Error()))
		return
	}

	updates := make(map[string]interface{})
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Content != "" {
		updates["content"] = req.Content
	}
	if req.Image != "" {
		updates["image"] = req.Image
	}
	updates["updated_at"] = time.Now()

	if err := pc.DB.Model(post).Updates(updates).Error; err != nil {
		apperrors.Respond(c, err)
		return
	}

	pc.DB.Preload("User").First(post, post.ID)
	c.JSON(http.StatusOK, postView(post))
}

// DeletePost godoc
// @Summary Delete a post
// @Description Hard delete cascading to the post's comments, ratings and favorite memberships
// @Tags posts
// @Param id path integer true "Post ID"
// @Success 204
// @Router /post/{id} [delete]
func (pc *PostController) DeletePost(c *gin.Context) {
	user := utils.GetUser(c)
	post, ok := pc.findPost(c)
	if !ok {
		return
	}

	if !pc.Policy.CanModify(user.UserID, post) {
		apperrors.Respond(c, apperrors.Forbidden("not enough rights to delete a post"))
		return
	}

	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Liked{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM favorite_posts WHERE post_id = ?", post.ID).Error; err != nil {
			return err
		}
		return tx.Delete(post).Error
	})
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (pc *PostController) findPost(c *gin.Context) (*models.Post, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.Respond(c, apperrors.Validation("invalid post id"))
		return nil, false
	}

	var post models.Post
	if err := pc.DB.Preload("User").First(&post, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apperrors.Respond(c, apperrors.NotFound("post not found"))
		} else {
			apperrors.Respond(c, err)
		}
		return nil, false
	}
	return &post, true
}

func postView(post *models.Post) gin.H {
	view := gin.H{
		"id":          post.ID,
		"title":       post.Title,
		"description": post.Description,
		"content":     post.Content,
		"created_at":  post.CreatedAt,
		"user":        post.User.Brief(),
	}
	if post.Image != "" {
		view["image"] = post.Image
	}
	return view
}
