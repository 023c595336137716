package ratings

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

// Rate inserts or merges a rating inside one transaction. The existing row
// is locked for the check-then-write; a create that still loses the race to
// a concurrent insert surfaces as gorm.ErrDuplicatedKey and is re-resolved
// under the same policy.
func (s *GormStore) Rate(userID, postID uint, grade int, merge bool) (*models.Liked, error) {
	var liked models.Liked

	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("post_id = ? AND user_id = ?", postID, userID).
			First(&liked).Error
		if err == nil {
			return s.mergeExisting(tx, &liked, merge)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		liked = models.Liked{
			PostID:       postID,
			UserID:       userID,
			Grade:        grade,
			PeoplesGrade: 1,
		}
		if err := tx.Create(&liked).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				if lookupErr := tx.Where("post_id = ? AND user_id = ?", postID, userID).
					First(&liked).Error; lookupErr != nil {
					return lookupErr
				}
				return s.mergeExisting(tx, &liked, merge)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &liked, nil
}

func (s *GormStore) mergeExisting(tx *gorm.DB, liked *models.Liked, merge bool) error {
	if !merge {
		return ErrAlreadyRated
	}
	if err := tx.Model(liked).
		UpdateColumn("peoples_grade", gorm.Expr("peoples_grade + ?", 1)).Error; err != nil {
		return err
	}
	return tx.First(liked, liked.ID).Error
}

func (s *GormStore) ListByPost(postID uint) ([]models.Liked, error) {
	var rows []models.Liked
	err := s.db.Preload("User").Where("post_id = ?", postID).Find(&rows).Error
	return rows, err
}

func (s *GormStore) ListByUser(userID uint) ([]models.Liked, error) {
	var rows []models.Liked
	err := s.db.Preload("User").Where("user_id = ?", userID).Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (s *GormStore) GetByID(id uint) (*models.Liked, error) {
	var liked models.Liked
	err := s.db.First(&liked, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &liked, nil
}

func (s *GormStore) Delete(id uint) error {
	return s.db.Delete(&models.Liked{}, id).Error
}
