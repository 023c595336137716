package favorites

import (
	"errors"

	"github.com/blog-post/api-go/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) PostExists(postID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Post{}).Where("id = ?", postID).Count(&count).Error
	return count > 0, err
}

// Add appends the post to the user's collection in one transaction. The
// unique index on favorites.user_id resolves the first-or-create race; the
// composite primary key of favorite_posts resolves a membership race the
// in-transaction count missed.
func (s *GormStore) Add(userID, postID uint) (*models.Favorite, error) {
	var favorite models.Favorite

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Lock the collection row so concurrent adds for the same user
		// serialize on it and the membership count stays trustworthy.
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).First(&favorite).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			favorite = models.Favorite{UserID: userID}
			if err := tx.Create(&favorite).Error; err != nil {
				if !errors.Is(err, gorm.ErrDuplicatedKey) {
					return err
				}
				// Concurrent request created the collection first
				if err := tx.Where("user_id = ?", userID).First(&favorite).Error; err != nil {
					return err
				}
			}
		} else if err != nil {
			return err
		}

		var member int64
		if err := tx.Table("favorite_posts").
			Where("favorite_id = ? AND post_id = ?", favorite.ID, postID).
			Count(&member).Error; err != nil {
			return err
		}
		if member > 0 {
			return ErrAlreadyFavorited
		}

		if err := tx.Exec("INSERT INTO favorite_posts (favorite_id, post_id) VALUES (?, ?)",
			favorite.ID, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyFavorited
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.db.Preload("Posts").First(&favorite, favorite.ID).Error; err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (s *GormStore) Get(userID uint) (*models.Favorite, error) {
	var favorite models.Favorite
	err := s.db.Preload("Posts").Where("user_id = ?", userID).First(&favorite).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (s *GormStore) Remove(userID, postID uint) error {
	var favorite models.Favorite
	err := s.db.Where("user_id = ?", userID).First(&favorite).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFavorited
	}
	if err != nil {
		return err
	}

	result := s.db.Exec("DELETE FROM favorite_posts WHERE favorite_id = ? AND post_id = ?",
		favorite.ID, postID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFavorited
	}
	return nil
}
