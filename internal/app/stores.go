package app

import (
	"context"

	"jobconnect/internal/model"
)

// Storage access is abstracted behind narrow interfaces so the services can
// be exercised without a live database. The gorm repositories in
// internal/repository are the production implementations.

type UserStore interface {
	GetByID(id uint) (*model.User, error)
	GetByUsername(username string) (*model.User, error)
	GetByToken(token string) (*model.User, error)
	SaveToken(userID uint, token string) error
}

type CategoryStore interface {
	GetByID(id uint) (*model.JobCategory, error)
	List() ([]model.JobCategory, error)
	CountJobs(categoryID uint) (int64, error)
}

type JobStore interface {
	List(filter model.JobFilter) ([]model.Job, int64, error)
	GetByID(id uint) (*model.Job, error)
	GetByIDAndCompanyID(id, companyID uint) (*model.Job, error)
	Create(job *model.Job) error
	Save(job *model.Job) error
	Delete(id uint) error
	AddApplicant(job *model.Job, user *model.User) error
	RemoveApplicant(job *model.Job, user *model.User) error
	ListApplicants(jobID uint, offset, limit int) ([]model.User, int64, error)
	ListAppliedByUser(userID uint, limit int) ([]model.Job, int64, error)
}

// TokenCache keeps resolved bearer tokens off the database hot path. Entries
// are evicted on refresh so a rotated token stops authenticating immediately.
type TokenCache interface {
	Get(ctx context.Context, token string) (*model.User, bool, error)
	Set(ctx context.Context, token string, user *model.User) error
	Delete(ctx context.Context, token string) error
}

// EventPublisher hands application activity to the broker; persistence
// happens asynchronously in the worker.
type EventPublisher interface {
	Publish(ctx context.Context, event model.ApplicationEvent) error
}
