package controllers

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/blog-post/api-go/apperrors"
	"github.com/blog-post/api-go/config"
	"github.com/blog-post/api-go/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UploadController struct {
	S3Client *s3.Client
	S3Config *config.S3Config
}

type PresignedURLRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
	FileSize    int64  `json:"fileSize" binding:"required"`
}

type PresignedURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	FileURL   string `json:"fileUrl"`
	Key       string `json:"key"`
	ExpiresIn int    `json:"expiresIn"`
}

func NewUploadController() *UploadController {
	s3Config := config.GetS3Config()

	client := s3.New(s3.Options{
		BaseEndpoint: aws.String(s3Config.Endpoint),
		Credentials: credentials.NewStaticCredentialsProvider(
			s3Config.AccessKeyID,
			s3Config.SecretAccessKey,
			"",
		),
		Region: s3Config.Region,
	})

	return &UploadController{
		S3Client: client,
		S3Config: s3Config,
	}
}

// GetPresignedURL godoc
// @Summary Get a presigned upload URL for a post image
// @Description Returns a short-lived PUT URL; the fileUrl goes into the post's image field
// @Tags uploads
// @Accept json
// @Produce json
// @Param upload body PresignedURLRequest true "Upload request"
// @Success 200 {object} PresignedURLResponse
// @Router /uploads/presign [post]
func (uc *UploadController) GetPresignedURL(c *gin.Context) {
	user := utils.GetUser(c)

	var req PresignedURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation(err.Error()))
		return
	}

	if !isValidImageType(req.ContentType) {
		apperrors.Respond(c, apperrors.Validation("unsupported image type"))
		return
	}
	if req.FileSize > 10*1024*1024 {
		apperrors.Respond(c, apperrors.Validation("image exceeds the 10MB limit"))
		return
	}

	key := uc.generateImageKey(user.UserID, req.FileName)
	uploadURL, err := uc.createPresignedURL(key, req.ContentType)
	if err != nil {
		apperrors.Respond(c, apperrors.Internal("failed to create upload url"))
		return
	}

	c.JSON(http.StatusOK, PresignedURLResponse{
		UploadURL: uploadURL,
		FileURL:   fmt.Sprintf("%s/%s", uc.S3Config.PublicURL, key),
		Key:       key,
		ExpiresIn: int((15 * time.Minute).Seconds()),
	})
}

func isValidImageType(contentType string) bool {
	validTypes := []string{
		"image/jpeg", "image/jpg", "image/png", "image/webp",
	}
	for _, validType := range validTypes {
		if contentType == validType {
			return true
		}
	}
	return false
}

func (uc *UploadController) generateImageKey(userID uint, fileName string) string {
	ext := filepath.Ext(fileName)
	return fmt.Sprintf("posts/%d/%s%s", userID, uuid.New().String(), ext)
}

func (uc *UploadController) createPresignedURL(key, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(uc.S3Config.BucketName),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}

	presigner := s3.NewPresignClient(uc.S3Client)
	req, err := presigner.PresignPutObject(context.TODO(), input, func(opts *s3.PresignOptions) {
		opts.Expires = 15 * time.Minute
	})
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
