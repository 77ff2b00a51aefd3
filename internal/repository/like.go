package repository

import (
	"context"
	"errors"

	"github.com/srinipandiyan/26-Twitter-Clone/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeRepository defines the interface for the like edge set.
type LikeRepository interface {
	Like(ctx context.Context, userID, messageID uint) error
	Unlike(ctx context.Context, userID, messageID uint) error
	HasLiked(ctx context.Context, userID, messageID uint) (bool, error)
	LikedMessages(ctx context.Context, userID uint, limit, offset int) ([]models.Message, error)
	LikesForMessage(ctx context.Context, messageID uint) ([]models.Like, error)
}

// likeRepository implements LikeRepository
type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new like repository
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Like inserts the edge; liking the same warble twice is a no-op thanks to
// the unique (user, message) index and ON CONFLICT DO NOTHING.
func (r *likeRepository) Like(ctx context.Context, userID, messageID uint) error {
	edge := models.Like{UserID: userID, MessageID: messageID}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&edge).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return models.NewInternalError(err)
	}
	return nil
}

// Unlike removes the edge if present; removing an absent edge is a no-op.
func (r *likeRepository) Unlike(ctx context.Context, userID, messageID uint) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND message_id = ?", userID, messageID).
		Delete(&models.Like{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *likeRepository) HasLiked(ctx context.Context, userID, messageID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND message_id = ?", userID, messageID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *likeRepository) LikedMessages(ctx context.Context, userID uint, limit, offset int) ([]models.Message, error) {
	var messages []models.Message
	if err := r.db.WithContext(ctx).
		Preload("User").
		Joins("JOIN likes l ON messages.id = l.message_id").
		Where("l.user_id = ?", userID).
		Order("l.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return messages, nil
}

func (r *likeRepository) LikesForMessage(ctx context.Context, messageID uint) ([]models.Like, error) {
	var likes []models.Like
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("message_id = ?", messageID).
		Find(&likes).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return likes, nil
}
