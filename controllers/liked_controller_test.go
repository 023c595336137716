package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blog-post/api-go/apperrors"
	"github.com/blog-post/api-go/models"
	"github.com/blog-post/api-go/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRatingService is a mock implementation of RatingService
type MockRatingService struct {
	mock.Mock
}

func (m *MockRatingService) Rate(userID, postID uint, grade int) (*models.Liked, error) {
	args := m.Called(userID, postID, grade)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Liked), args.Error(1)
}

func (m *MockRatingService) ListByUser(userID uint) ([]models.Liked, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Liked), args.Error(1)
}

func (m *MockRatingService) Delete(userID, id uint) error {
	args := m.Called(userID, id)
	return args.Error(0)
}

var _ RatingService = (*MockRatingService)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func asUser(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(utils.UserContextKey), &utils.UserClaims{UserID: userID})
	}
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestCreateLiked(t *testing.T) {
	service := new(MockRatingService)
	handler := NewLikedController(service)

	router := setupTestRouter()
	router.POST("/liked", asUser(1), handler.CreateLiked)

	liked := &models.Liked{ID: 5, PostID: 2, UserID: 1, Grade: 7, PeoplesGrade: 1}
	service.On("Rate", uint(1), uint(2), 7).Return(liked, nil)

	w := postJSON(router, "/liked", gin.H{"post": 2, "grade": 7})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"grade":7`)
	service.AssertExpectations(t)
}

func TestCreateLiked_GradeZeroBinds(t *testing.T) {
	service := new(MockRatingService)
	handler := NewLikedController(service)

	router := setupTestRouter()
	router.POST("/liked", asUser(1), handler.CreateLiked)

	liked := &models.Liked{ID: 5, PostID: 2, UserID: 1, Grade: 0, PeoplesGrade: 1}
	service.On("Rate", uint(1), uint(2), 0).Return(liked, nil)

	w := postJSON(router, "/liked", gin.H{"post": 2, "grade": 0})

	assert.Equal(t, http.StatusCreated, w.Code)
	service.AssertExpectations(t)
}

func TestCreateLiked_OutOfRangeGrade(t *testing.T) {
	service := new(MockRatingService)
	handler := NewLikedController(service)

	router := setupTestRouter()
	router.POST("/liked", asUser(1), handler.CreateLiked)

	service.On("Rate", uint(1), uint(2), 11).
		Return(nil, apperrors.Validation("enter the correct values from 0 to 10"))

	w := postJSON(router, "/liked", gin.H{"post": 2, "grade": 11})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation")
}

func TestCreateLiked_DuplicateIsConflict(t *testing.T) {
	service := new(MockRatingService)
	handler := NewLikedController(service)

	router := setupTestRouter()
	router.POST("/liked", asUser(1), handler.CreateLiked)

	service.On("Rate", uint(1), uint(2), 7).
		Return(nil, apperrors.Conflict("you can't rate a post more than once"))

	w := postJSON(router, "/liked", gin.H{"post": 2, "grade": 7})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "conflict")
}

func TestListLiked(t *testing.T) {
	service := new(MockRatingService)
	handler := NewLikedController(service)

	router := setupTestRouter()
	router.GET("/liked", asUser(1), handler.ListLiked)

	service.On("ListByUser", uint(1)).Return([]models.Liked{
		{ID: 1, PostID: 2, UserID: 1, Grade: 7},
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/liked", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"grade":7`)
}

func TestDeleteLiked_Forbidden(t *testing.T) {
	service := new(MockRatingService)
	handler := NewLikedController(service)

	router := setupTestRouter()
	router.DELETE("/liked/:id", asUser(9), handler.DeleteLiked)

	service.On("Delete", uint(9), uint(3)).
		Return(apperrors.Forbidden("you can't delete this rating"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/liked/3", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
