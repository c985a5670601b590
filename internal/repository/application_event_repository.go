package repository

import (
	"fmt"

	"gorm.io/gorm"

	"jobconnect/internal/model"
)

type ApplicationEventRepository struct {
	db *gorm.DB
}

func NewApplicationEventRepository(db *gorm.DB) *ApplicationEventRepository {
	return &ApplicationEventRepository{db: db}
}

func (r *ApplicationEventRepository) Create(event *model.ApplicationEvent) error {
	if err := r.db.Create(event).Error; err != nil {
		return fmt.Errorf("create application event failed: %w", err)
	}
	return nil
}
