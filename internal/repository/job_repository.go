package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"jobconnect/internal/model"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

// List returns one page of available jobs plus the size of the whole filtered
// set. The total is counted before offset/limit so callers can page.
func (r *JobRepository) List(filter model.JobFilter) ([]model.Job, int64, error) {
	query := r.db.Model(&model.Job{}).
		Where("is_available = ?", true).
		Where("id > ?", filter.Start)
	if filter.Type != "" && filter.Type != model.JobTypeAll {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.CategoryID != 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count jobs failed: %w", err)
	}

	var jobs []model.Job
	err := query.
		Preload("Company").
		Preload("Category").
		Order("updated_at DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list jobs failed: %w", err)
	}
	return jobs, total, nil
}

func (r *JobRepository) GetByID(id uint) (*model.Job, error) {
	var job model.Job
	err := r.db.Preload("Company").Preload("Category").First(&job, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query job by id failed: %w", err)
	}
	return &job, nil
}

// GetByIDAndCompanyID is the combined ownership lookup used by updates: a
// wrong owner and a missing id are indistinguishable to the caller.
func (r *JobRepository) GetByIDAndCompanyID(id, companyID uint) (*model.Job, error) {
	var job model.Job
	err := r.db.Where("id = ? AND company_id = ?", id, companyID).First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query owned job failed: %w", err)
	}
	return &job, nil
}

func (r *JobRepository) Create(job *model.Job) error {
	if err := r.db.Create(job).Error; err != nil {
		return fmt.Errorf("create job failed: %w", err)
	}
	return nil
}

func (r *JobRepository) Save(job *model.Job) error {
	if err := r.db.Save(job).Error; err != nil {
		return fmt.Errorf("save job failed: %w", err)
	}
	return nil
}

func (r *JobRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Job{}, id).Error; err != nil {
		return fmt.Errorf("delete job failed: %w", err)
	}
	return nil
}

// AddApplicant appends the user to the job's applicant set. The association
// table upserts, so applying twice never duplicates the membership.
func (r *JobRepository) AddApplicant(job *model.Job, user *model.User) error {
	if err := r.db.Model(job).Association("Applicants").Append(user); err != nil {
		return fmt.Errorf("add applicant failed: %w", err)
	}
	return nil
}

// RemoveApplicant deletes the membership; removing a user who never applied
// is a silent no-op.
func (r *JobRepository) RemoveApplicant(job *model.Job, user *model.User) error {
	if err := r.db.Model(job).Association("Applicants").Delete(user); err != nil {
		return fmt.Errorf("remove applicant failed: %w", err)
	}
	return nil
}

func (r *JobRepository) ListApplicants(jobID uint, offset, limit int) ([]model.User, int64, error) {
	var total int64
	if err := r.db.Table("job_applicants").Where("job_id = ?", jobID).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count applicants failed: %w", err)
	}

	var users []model.User
	err := r.db.
		Joins("JOIN job_applicants ON job_applicants.user_id = users.id").
		Where("job_applicants.job_id = ?", jobID).
		Order("users.id").
		Offset(offset).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list applicants failed: %w", err)
	}
	return users, total, nil
}

func (r *JobRepository) ListAppliedByUser(userID uint, limit int) ([]model.Job, int64, error) {
	var total int64
	if err := r.db.Table("job_applicants").Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count applied jobs failed: %w", err)
	}

	var jobs []model.Job
	err := r.db.
		Joins("JOIN job_applicants ON job_applicants.job_id = jobs.id").
		Where("job_applicants.user_id = ?", userID).
		Preload("Company").
		Preload("Category").
		Order("jobs.updated_at DESC").
		Limit(limit).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list applied jobs failed: %w", err)
	}
	return jobs, total, nil
}
