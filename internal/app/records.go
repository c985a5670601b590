package app

import (
	"time"

	"jobconnect/internal/model"
)

// JobRecord is the flattened listing shape: poster username and category name
// instead of foreign keys.
type JobRecord struct {
	ID        uint      `json:"id"`
	Company   string    `json:"company"`
	Category  string    `json:"category"`
	Title     string    `json:"title"`
	Type      string    `json:"type"`
	MinSalary uint      `json:"min_salary"`
	MaxSalary uint      `json:"max_salary"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewJobRecord(job *model.Job) JobRecord {
	return JobRecord{
		ID:        job.ID,
		Company:   job.Company.Username,
		Category:  job.Category.Name,
		Title:     job.Title,
		Type:      job.Type,
		MinSalary: job.MinimumSalary,
		MaxSalary: job.MaximumSalary,
		UpdatedAt: job.UpdatedAt,
	}
}

type JobList struct {
	Total int64       `json:"total"`
	Jobs  []JobRecord `json:"jobs"`
}

type JobDetails struct {
	Details     *JobRecord `json:"details,omitempty"`
	Description string     `json:"description"`
}

// JobPayload mirrors the create/update request schema, plus the id. Create
// and update both answer with this shape so a client can PATCH back exactly
// what it received.
type JobPayload struct {
	ID            uint   `json:"id"`
	CategoryID    uint   `json:"category_id"`
	Title         string `json:"title"`
	Type          string `json:"type"`
	MinimumSalary uint   `json:"minimum_salary"`
	MaximumSalary uint   `json:"maximum_salary"`
	Description   string `json:"description"`
	IsAvailable   bool   `json:"is_available"`
}

func NewJobPayload(job *model.Job) JobPayload {
	return JobPayload{
		ID:            job.ID,
		CategoryID:    job.CategoryID,
		Title:         job.Title,
		Type:          job.Type,
		MinimumSalary: job.MinimumSalary,
		MaximumSalary: job.MaximumSalary,
		Description:   job.Description,
		IsAvailable:   job.IsAvailable,
	}
}

type CategoryRecord struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	JobsAmount  int64     `json:"jobs_amount"`
	CreatedAt   time.Time `json:"created_at"`
}

type CategoryList struct {
	Total      int64            `json:"total"`
	Categories []CategoryRecord `json:"categories"`
}

type ApplierList struct {
	Total      int64
	Applicants []model.User
}
