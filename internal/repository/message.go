package repository

import (
	"context"
	"errors"

	"github.com/srinipandiyan/26-Twitter-Clone/internal/models"

	"gorm.io/gorm"
)

// MessageRepository defines the interface for warble data operations
type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	GetByID(ctx context.Context, id uint) (*models.Message, error)
	GetByUserID(ctx context.Context, userID uint, limit, offset int) ([]models.Message, error)
	List(ctx context.Context, limit, offset int) ([]models.Message, error)
	Feed(ctx context.Context, userID uint, limit, offset int) ([]models.Message, error)
	DeleteOwned(ctx context.Context, id, ownerID uint) error
}

// messageRepository implements MessageRepository
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *models.Message) error {
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *messageRepository) GetByID(ctx context.Context, id uint) (*models.Message, error) {
	var message models.Message
	if err := r.db.WithContext(ctx).Preload("User").First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Message", id)
		}
		return nil, models.NewInternalError(err)
	}

	if err := r.attachLikeCounts(ctx, []*models.Message{&message}); err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *messageRepository) GetByUserID(ctx context.Context, userID uint, limit, offset int) ([]models.Message, error) {
	var messages []models.Message
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return messages, nil
}

func (r *messageRepository) List(ctx context.Context, limit, offset int) ([]models.Message, error) {
	var messages []models.Message
	if err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return messages, nil
}

// Feed returns the reverse-chronological warbles of everyone userID follows,
// plus the user's own.
func (r *messageRepository) Feed(ctx context.Context, userID uint, limit, offset int) ([]models.Message, error) {
	var messages []models.Message
	followees := r.db.Model(&models.Follow{}).Select("followee_id").Where("follower_id = ?", userID)
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id IN (?) OR user_id = ?", followees, userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return messages, nil
}

// DeleteOwned removes a warble only when ownerID owns it. The ownership check
// and the delete run in one transaction so no other request can slip between
// them. A non-owner gets an unauthorized error and the warble is untouched.
func (r *messageRepository) DeleteOwned(ctx context.Context, id, ownerID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var message models.Message
		if err := tx.First(&message, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Message", id)
			}
			return models.NewInternalError(err)
		}

		if message.UserID != ownerID {
			return models.NewUnauthorizedError("Access unauthorized")
		}

		if err := tx.Where("message_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return models.NewInternalError(err)
		}
		if err := tx.Delete(&models.Message{}, id).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
}

func (r *messageRepository) attachLikeCounts(ctx context.Context, messages []*models.Message) error {
	for _, m := range messages {
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.Like{}).Where("message_id = ?", m.ID).Count(&count).Error; err != nil {
			return models.NewInternalError(err)
		}
		m.LikesCount = int(count)
	}
	return nil
}
