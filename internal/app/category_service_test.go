package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobconnect/internal/model"
)

func TestCategoryListCountsJobsPerRequest(t *testing.T) {
	jobs := newFakeJobStore()
	categories := newFakeCategoryStore(jobs,
		&model.JobCategory{ID: 1, Name: "Engineering"},
		&model.JobCategory{ID: 2, Name: "Design"},
	)
	svc := NewCategoryService(categories)

	list, err := svc.List()
	require.NoError(t, err)
	assert.Equal(t, int64(2), list.Total)
	for _, record := range list.Categories {
		assert.Zero(t, record.JobsAmount)
	}

	jobs.seed(model.Job{ID: 1, CompanyID: 1, CategoryID: 1, IsAvailable: true, UpdatedAt: time.Now()})

	// The count is computed on read, so a fresh listing sees the new job.
	list, err = svc.List()
	require.NoError(t, err)
	require.Len(t, list.Categories, 2)
	assert.Equal(t, int64(1), list.Categories[0].JobsAmount)
	assert.Zero(t, list.Categories[1].JobsAmount)
}

func TestCategoryGet(t *testing.T) {
	jobs := newFakeJobStore()
	categories := newFakeCategoryStore(jobs, &model.JobCategory{ID: 1, Name: "Engineering", Description: "Software roles"})
	svc := NewCategoryService(categories)

	record, err := svc.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Engineering", record.Name)
	assert.Equal(t, "Software roles", record.Description)

	_, err = svc.Get(99)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
