// Package favorites manages each user's single collection of bookmarked
// posts and the no-duplicate-favorite guard.
package favorites

import (
	"errors"

	"github.com/blog-post/api-go/apperrors"
	"github.com/blog-post/api-go/models"
)

var (
	// ErrAlreadyFavorited is returned by Store.Add when the post is already
	// a member of the user's collection.
	ErrAlreadyFavorited = errors.New("already favorited")
	// ErrNotFavorited is returned by Store.Remove when it isn't.
	ErrNotFavorited = errors.New("not favorited")
)

type Store interface {
	PostExists(postID uint) (bool, error)
	Add(userID, postID uint) (*models.Favorite, error)
	Get(userID uint) (*models.Favorite, error)
	Remove(userID, postID uint) error
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Add bookmarks a post for the user, creating the collection on first use.
func (s *Service) Add(userID, postID uint) (*models.Favorite, error) {
	exists, err := s.store.PostExists(postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NotFound("post not found")
	}

	favorite, err := s.store.Add(userID, postID)
	if errors.Is(err, ErrAlreadyFavorited) {
		return nil, apperrors.Conflict("post is already in your favorites")
	}
	if err != nil {
		return nil, err
	}
	return favorite, nil
}

// List returns the user's collection; users who never favorited anything get
// an empty one.
func (s *Service) List(userID uint) (*models.Favorite, error) {
	favorite, err := s.store.Get(userID)
	if err != nil {
		return nil, err
	}
	if favorite == nil {
		return &models.Favorite{UserID: userID, Posts: []models.Post{}}, nil
	}
	return favorite, nil
}

// Remove takes a post out of the user's collection.
func (s *Service) Remove(userID, postID uint) error {
	err := s.store.Remove(userID, postID)
	if errors.Is(err, ErrNotFavorited) {
		return apperrors.NotFound("post is not in your favorites")
	}
	return err
}
