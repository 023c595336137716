package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blog-post/api-go/apperrors"
	"github.com/blog-post/api-go/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockFavoriteService is a mock implementation of FavoriteService
type MockFavoriteService struct {
	mock.Mock
}

func (m *MockFavoriteService) Add(userID, postID uint) (*models.Favorite, error) {
	args := m.Called(userID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Favorite), args.Error(1)
}

func (m *MockFavoriteService) List(userID uint) (*models.Favorite, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Favorite), args.Error(1)
}

func (m *MockFavoriteService) Remove(userID, postID uint) error {
	args := m.Called(userID, postID)
	return args.Error(0)
}

var _ FavoriteService = (*MockFavoriteService)(nil)

func TestAddFavorite(t *testing.T) {
	service := new(MockFavoriteService)
	handler := NewFavoriteController(service)

	router := setupTestRouter()
	router.POST("/favorite", asUser(1), handler.AddFavorite)

	fav := &models.Favorite{ID: 1, UserID: 1, Posts: []models.Post{{ID: 2, Title: "Hello"}}}
	service.On("Add", uint(1), uint(2)).Return(fav, nil)

	w := postJSON(router, "/favorite", gin.H{"post": 2})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"Hello"`)
	service.AssertExpectations(t)
}

func TestAddFavorite_SecondCallConflicts(t *testing.T) {
	service := new(MockFavoriteService)
	handler := NewFavoriteController(service)

	router := setupTestRouter()
	router.POST("/favorite", asUser(1), handler.AddFavorite)

	fav := &models.Favorite{ID: 1, UserID: 1, Posts: []models.Post{{ID: 2}}}
	service.On("Add", uint(1), uint(2)).Return(fav, nil).Once()
	service.On("Add", uint(1), uint(2)).
		Return(nil, apperrors.Conflict("post is already in your favorites")).Once()
	service.On("List", uint(1)).Return(fav, nil)

	first := postJSON(router, "/favorite", gin.H{"post": 2})
	assert.Equal(t, http.StatusCreated, first.Code)

	second := postJSON(router, "/favorite", gin.H{"post": 2})
	assert.Equal(t, http.StatusConflict, second.Code)

	// Collection still holds exactly one entry for the post
	router.GET("/favorite", asUser(1), handler.GetFavorites)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/favorite", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var got models.Favorite
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got.Posts, 1)
}

func TestGetFavorites_EmptyCollection(t *testing.T) {
	service := new(MockFavoriteService)
	handler := NewFavoriteController(service)

	router := setupTestRouter()
	router.GET("/favorite", asUser(7), handler.GetFavorites)

	service.On("List", uint(7)).Return(&models.Favorite{UserID: 7, Posts: []models.Post{}}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/favorite", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"posts":[]`)
}

func TestRemoveFavorite_NotFavorited(t *testing.T) {
	service := new(MockFavoriteService)
	handler := NewFavoriteController(service)

	router := setupTestRouter()
	router.DELETE("/favorite/:post_id", asUser(1), handler.RemoveFavorite)

	service.On("Remove", uint(1), uint(2)).
		Return(apperrors.NotFound("post is not in your favorites"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/favorite/2", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
