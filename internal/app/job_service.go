package app

import (
	"context"
	"errors"
	"log"

	"jobconnect/internal/model"
)

var (
	ErrJobNotFound      = errors.New("job does not exist")
	ErrNotJobOwner      = errors.New("job is owned by another user")
	ErrCategoryNotFound = errors.New("category does not exist")
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type JobService struct {
	jobs       JobStore
	categories CategoryStore
	events     EventPublisher
}

// NewJobService wires the job query and application service. events may be
// nil; activity then simply goes unrecorded.
func NewJobService(jobs JobStore, categories CategoryStore, events EventPublisher) *JobService {
	return &JobService{jobs: jobs, categories: categories, events: events}
}

type CreateJobInput struct {
	CategoryID    uint
	Title         string
	Type          string
	MinimumSalary uint
	MaximumSalary uint
	Description   string
	IsAvailable   bool
}

// UpdateJobInput carries patch semantics: nil means "leave the stored value
// alone", a non-nil pointer always overwrites, including false/zero values.
type UpdateJobInput struct {
	ID            uint
	CategoryID    *uint
	Title         *string
	Type          *string
	MinimumSalary *uint
	MaximumSalary *uint
	Description   *string
	IsAvailable   *bool
}

// List returns one page of available jobs. Total reflects the whole filtered
// set, not the returned page.
func (s *JobService) List(filter model.JobFilter) (*JobList, error) {
	filter.Limit = clampLimit(filter.Limit)
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	jobs, total, err := s.jobs.List(filter)
	if err != nil {
		return nil, err
	}

	records := make([]JobRecord, 0, len(jobs))
	for i := range jobs {
		records = append(records, NewJobRecord(&jobs[i]))
	}
	return &JobList{Total: total, Jobs: records}, nil
}

func (s *JobService) Get(id uint, withDetails bool) (*JobDetails, error) {
	job, err := s.jobs.GetByID(id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}

	details := JobDetails{Description: job.Description}
	if withDetails {
		record := NewJobRecord(job)
		details.Details = &record
	}
	return &details, nil
}

func (s *JobService) Create(user *model.User, input CreateJobInput) (*JobPayload, error) {
	if user == nil {
		return nil, ErrInvalidInput
	}

	category, err := s.categories.GetByID(input.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	jobType := input.Type
	if jobType == "" {
		jobType = model.JobTypeFullTime
	}

	job := &model.Job{
		CompanyID:     user.ID,
		CategoryID:    input.CategoryID,
		Title:         input.Title,
		Type:          jobType,
		MinimumSalary: input.MinimumSalary,
		MaximumSalary: input.MaximumSalary,
		Description:   input.Description,
		IsAvailable:   input.IsAvailable,
	}
	if err := s.jobs.Create(job); err != nil {
		return nil, err
	}

	s.publishEvent(job.ID, user.ID, model.EventActionPosted)

	payload := NewJobPayload(job)
	return &payload, nil
}

// Update patches an owned job. The lookup combines id and owner, so a job
// posted by someone else answers exactly like a job that does not exist.
func (s *JobService) Update(user *model.User, input UpdateJobInput) (*JobPayload, error) {
	if user == nil {
		return nil, ErrInvalidInput
	}

	job, err := s.jobs.GetByIDAndCompanyID(input.ID, user.ID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrNotJobOwner
	}

	if input.CategoryID != nil {
		category, err := s.categories.GetByID(*input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, ErrCategoryNotFound
		}
		job.CategoryID = *input.CategoryID
	}
	if input.Title != nil {
		job.Title = *input.Title
	}
	if input.Type != nil {
		job.Type = *input.Type
	}
	if input.MinimumSalary != nil {
		job.MinimumSalary = *input.MinimumSalary
	}
	if input.MaximumSalary != nil {
		job.MaximumSalary = *input.MaximumSalary
	}
	if input.Description != nil {
		job.Description = *input.Description
	}
	if input.IsAvailable != nil {
		job.IsAvailable = *input.IsAvailable
	}

	if err := s.jobs.Save(job); err != nil {
		return nil, err
	}

	payload := NewJobPayload(job)
	return &payload, nil
}

// Delete checks existence before ownership, unlike Update. The asymmetry is
// load-bearing: a missing id is 404 here, while a foreign job is 403.
func (s *JobService) Delete(user *model.User, id uint) error {
	if user == nil {
		return ErrInvalidInput
	}

	job, err := s.jobs.GetByID(id)
	if err != nil {
		return err
	}
	if job == nil {
		return ErrJobNotFound
	}
	if job.CompanyID != user.ID {
		return ErrNotJobOwner
	}
	return s.jobs.Delete(id)
}

func (s *JobService) Appliers(user *model.User, jobID uint, offset, limit int) (*ApplierList, error) {
	if user == nil {
		return nil, ErrInvalidInput
	}

	job, err := s.jobs.GetByID(jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}
	if job.CompanyID != user.ID {
		return nil, ErrNotJobOwner
	}

	if offset < 0 {
		offset = 0
	}
	applicants, total, err := s.jobs.ListApplicants(jobID, offset, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	return &ApplierList{Total: total, Applicants: applicants}, nil
}

func (s *JobService) Apply(user *model.User, jobID uint) error {
	if user == nil {
		return ErrInvalidInput
	}

	job, err := s.jobs.GetByID(jobID)
	if err != nil {
		return err
	}
	if job == nil {
		return ErrJobNotFound
	}

	if err := s.jobs.AddApplicant(job, user); err != nil {
		return err
	}
	s.publishEvent(jobID, user.ID, model.EventActionApplied)
	return nil
}

func (s *JobService) Unapply(user *model.User, jobID uint) error {
	if user == nil {
		return ErrInvalidInput
	}

	job, err := s.jobs.GetByID(jobID)
	if err != nil {
		return err
	}
	if job == nil {
		return ErrJobNotFound
	}

	if err := s.jobs.RemoveApplicant(job, user); err != nil {
		return err
	}
	s.publishEvent(jobID, user.ID, model.EventActionUnapplied)
	return nil
}

// Applied lists the jobs the user has applied to, newest-updated first.
// Total is the full applied-set size regardless of limit, mirroring List.
func (s *JobService) Applied(user *model.User, limit int) (*JobList, error) {
	if user == nil {
		return nil, ErrInvalidInput
	}

	jobs, total, err := s.jobs.ListAppliedByUser(user.ID, clampLimit(limit))
	if err != nil {
		return nil, err
	}

	records := make([]JobRecord, 0, len(jobs))
	for i := range jobs {
		records = append(records, NewJobRecord(&jobs[i]))
	}
	return &JobList{Total: total, Jobs: records}, nil
}

func (s *JobService) publishEvent(jobID, userID uint, action string) {
	if s.events == nil {
		return
	}
	event := model.ApplicationEvent{JobID: jobID, UserID: userID, Action: action}
	if err := s.events.Publish(context.Background(), event); err != nil {
		log.Printf("publish %s event failed: %v", action, err)
	}
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
