// Package ratings implements per-user post ratings: grade validation, the
// at-most-once-per-(post,user) guard and the average aggregation.
package ratings

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/blog-post/api-go/apperrors"
	"github.com/blog-post/api-go/models"
	"github.com/redis/go-redis/v9"
)

// Policy controls what a repeated rating from the same user does.
type Policy string

const (
	// PolicyReject refuses a second rating for the same (post, user) pair.
	PolicyReject Policy = "reject"
	// PolicyMerge increments the existing row's peoples_grade counter and
	// leaves the stored grade untouched.
	PolicyMerge Policy = "merge"
)

// PolicyFromName returns the policy selected by name, defaulting to reject.
func PolicyFromName(name string) Policy {
	if Policy(name) == PolicyMerge {
		return PolicyMerge
	}
	return PolicyReject
}

// ErrAlreadyRated is returned by Store.Rate when the pair already has a row
// and merging is not requested.
var ErrAlreadyRated = errors.New("already rated")

// Store is the persistence surface the service needs. The GORM
// implementation keeps the read-then-write of Rate atomic.
type Store interface {
	PostExists(postID uint) (bool, error)
	Rate(userID, postID uint, grade int, merge bool) (*models.Liked, error)
	ListByPost(postID uint) ([]models.Liked, error)
	ListByUser(userID uint) ([]models.Liked, error)
	GetByID(id uint) (*models.Liked, error)
	Delete(id uint) error
}

type Service struct {
	store  Store
	cache  *redis.Client
	policy Policy
}

// NewService builds the rating service. cache may be nil, in which case
// averages are always computed from the store.
func NewService(store Store, cache *redis.Client, policy Policy) *Service {
	return &Service{store: store, cache: cache, policy: policy}
}

func (s *Service) Policy() Policy { return s.policy }

// Rate records the caller's grade for a post under the configured duplicate
// policy. The grade is validated before anything is written.
func (s *Service) Rate(userID, postID uint, grade int) (*models.Liked, error) {
	if grade < models.MinGrade || grade > models.MaxGrade {
		return nil, apperrors.Validation(fmt.Sprintf("enter the correct values from %d to %d", models.MinGrade, models.MaxGrade))
	}

	exists, err := s.store.PostExists(postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NotFound("post not found")
	}

	liked, err := s.store.Rate(userID, postID, grade, s.policy == PolicyMerge)
	if errors.Is(err, ErrAlreadyRated) {
		return nil, apperrors.Conflict("you can't rate a post more than once")
	}
	if err != nil {
		return nil, err
	}

	s.invalidate(postID)
	return liked, nil
}

// Average returns the mean grade for a post, 0 when it has no ratings.
func (s *Service) Average(postID uint) (float64, error) {
	if s.cache != nil {
		key := cacheKey(postID)
		if cached, err := s.cache.Get(context.Background(), key).Result(); err == nil {
			if avg, err := strconv.ParseFloat(cached, 64); err == nil {
				return avg, nil
			}
		}
	}

	rows, err := s.store.ListByPost(postID)
	if err != nil {
		return 0, err
	}
	avg := AverageOf(rows)

	if s.cache != nil {
		s.cache.Set(context.Background(), cacheKey(postID), strconv.FormatFloat(avg, 'f', -1, 64), time.Hour)
	}
	return avg, nil
}

// ListByPost returns every rating row for a post, for the composite view.
func (s *Service) ListByPost(postID uint) ([]models.Liked, error) {
	return s.store.ListByPost(postID)
}

// ListByUser returns the caller's own rating rows.
func (s *Service) ListByUser(userID uint) ([]models.Liked, error) {
	return s.store.ListByUser(userID)
}

// Delete removes a rating row; only its author may do so.
func (s *Service) Delete(userID, id uint) error {
	liked, err := s.store.GetByID(id)
	if err != nil {
		return err
	}
	if liked == nil {
		return apperrors.NotFound("rating not found")
	}
	if liked.UserID != userID {
		return apperrors.Forbidden("you can't delete this rating")
	}
	if err := s.store.Delete(id); err != nil {
		return err
	}
	s.invalidate(liked.PostID)
	return nil
}

// AverageOf computes the mean grade of the given rows. Repeated ratings only
// bump peoples_grade, so every row contributes its single stored grade.
func AverageOf(rows []models.Liked) float64 {
	if len(rows) == 0 {
		return 0
	}
	sum := 0
	for _, row := range rows {
		sum += row.Grade
	}
	return float64(sum) / float64(len(rows))
}

func (s *Service) invalidate(postID uint) {
	if s.cache != nil {
		s.cache.Del(context.Background(), cacheKey(postID))
	}
}

func cacheKey(postID uint) string {
	return fmt.Sprintf("post:rating:%d", postID)
}
