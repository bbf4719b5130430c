package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/KhaanFaizan/Safai-PAK/internal/domain"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, msg *domain.Contact) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *ContactRepository) ListAll(ctx context.Context) ([]domain.Contact, error) {
	var messages []domain.Contact
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}
