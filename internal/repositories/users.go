package repositories

import (
	"context"
	"fmt"

	"github.com/rohits-web03/postdev/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetOrCreate returns the user with the given id, inserting an empty-username
// row first if none exists. Concurrent first requests for the same id both
// succeed because the insert ignores the primary key conflict.
func (r *UserRepository) GetOrCreate(ctx context.Context, id int64) (*models.User, error) {
	db := r.db.WithContext(ctx)

	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.User{ID: id}).Error; err != nil {
		return nil, fmt.Errorf("create user %d: %w", id, err)
	}
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		return nil, fmt.Errorf("load user %d: %w", id, err)
	}
	return &user, nil
}

func (r *UserRepository) SetUsername(ctx context.Context, id int64, username string) error {
	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("username", username)
	if res.Error != nil {
		return fmt.Errorf("update username of user %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
