package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"jobconnect/internal/model"
)

type JobCategoryRepository struct {
	db *gorm.DB
}

func NewJobCategoryRepository(db *gorm.DB) *JobCategoryRepository {
	return &JobCategoryRepository{db: db}
}

func (r *JobCategoryRepository) GetByID(id uint) (*model.JobCategory, error) {
	var category model.JobCategory
	if err := r.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query category by id failed: %w", err)
	}
	return &category, nil
}

func (r *JobCategoryRepository) List() ([]model.JobCategory, error) {
	var categories []model.JobCategory
	if err := r.db.Order("created_at DESC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories failed: %w", err)
	}
	return categories, nil
}

// CountJobs returns the live number of jobs referencing the category. The
// count is computed per request rather than denormalized onto the row.
func (r *JobCategoryRepository) CountJobs(categoryID uint) (int64, error) {
	var total int64
	if err := r.db.Model(&model.Job{}).Where("category_id = ?", categoryID).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count category jobs failed: %w", err)
	}
	return total, nil
}
