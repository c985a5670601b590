package app

import (
	"context"
	"sort"
	"sync"
	"time"

	"jobconnect/internal/model"
)

// In-memory store implementations backing the service tests. They mirror the
// observable behavior of the gorm repositories, association upserts included.

type fakeUserStore struct {
	mu    sync.Mutex
	users map[uint]*model.User
}

func newFakeUserStore(users ...*model.User) *fakeUserStore {
	s := &fakeUserStore{users: make(map[uint]*model.User)}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *fakeUserStore) GetByID(id uint) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (s *fakeUserStore) GetByUsername(username string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) GetByToken(token string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Token != nil && *user.Token == token {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) SaveToken(userID uint, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user, ok := s.users[userID]; ok {
		user.Token = &token
	}
	return nil
}

type fakeJobStore struct {
	mu         sync.Mutex
	jobs       map[uint]*model.Job
	applicants map[uint][]model.User
	nextID     uint
}

func newFakeJobStore() *fakeJobStore {
	return &fakeJobStore{
		jobs:       make(map[uint]*model.Job),
		applicants: make(map[uint][]model.User),
		nextID:     1,
	}
}

func (s *fakeJobStore) seed(job model.Job) *model.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	if job.ID == 0 {
		job.ID = s.nextID
	}
	if job.ID >= s.nextID {
		s.nextID = job.ID + 1
	}
	s.jobs[job.ID] = &job
	return &job
}

func (s *fakeJobStore) List(filter model.JobFilter) ([]model.Job, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]model.Job, 0)
	for _, job := range s.jobs {
		if !job.IsAvailable {
			continue
		}
		if int64(job.ID) <= filter.Start {
			continue
		}
		if filter.Type != "" && filter.Type != model.JobTypeAll && job.Type != filter.Type {
			continue
		}
		if filter.CategoryID != 0 && job.CategoryID != filter.CategoryID {
			continue
		}
		matched = append(matched, *job)
	}
	sortJobsByUpdatedAtDesc(matched)

	total := int64(len(matched))
	if filter.Offset >= len(matched) {
		return nil, total, nil
	}
	matched = matched[filter.Offset:]
	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, total, nil
}

func (s *fakeJobStore) GetByID(id uint) (*model.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return nil, nil
	}
	copied := *job
	return &copied, nil
}

func (s *fakeJobStore) GetByIDAndCompanyID(id, companyID uint) (*model.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok || job.CompanyID != companyID {
		return nil, nil
	}
	copied := *job
	return &copied, nil
}

func (s *fakeJobStore) Create(job *model.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	job.ID = s.nextID
	s.nextID++
	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now
	copied := *job
	s.jobs[job.ID] = &copied
	return nil
}

func (s *fakeJobStore) Save(job *model.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	job.UpdatedAt = time.Now()
	copied := *job
	s.jobs[job.ID] = &copied
	return nil
}

func (s *fakeJobStore) Delete(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.jobs, id)
	delete(s.applicants, id)
	return nil
}

func (s *fakeJobStore) AddApplicant(job *model.Job, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.applicants[job.ID] {
		if existing.ID == user.ID {
			return nil
		}
	}
	s.applicants[job.ID] = append(s.applicants[job.ID], *user)
	return nil
}

func (s *fakeJobStore) RemoveApplicant(job *model.Job, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.applicants[job.ID][:0]
	for _, existing := range s.applicants[job.ID] {
		if existing.ID != user.ID {
			kept = append(kept, existing)
		}
	}
	s.applicants[job.ID] = kept
	return nil
}

func (s *fakeJobStore) ListApplicants(jobID uint, offset, limit int) ([]model.User, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := s.applicants[jobID]
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	page := all[offset:]
	if limit > 0 && len(page) > limit {
		page = page[:limit]
	}
	out := make([]model.User, len(page))
	copy(out, page)
	return out, total, nil
}

func (s *fakeJobStore) ListAppliedByUser(userID uint, limit int) ([]model.Job, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	applied := make([]model.Job, 0)
	for jobID, users := range s.applicants {
		for _, u := range users {
			if u.ID == userID {
				if job, ok := s.jobs[jobID]; ok {
					applied = append(applied, *job)
				}
				break
			}
		}
	}
	sortJobsByUpdatedAtDesc(applied)
	total := int64(len(applied))
	if limit > 0 && len(applied) > limit {
		applied = applied[:limit]
	}
	return applied, total, nil
}

func sortJobsByUpdatedAtDesc(jobs []model.Job) {
	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].UpdatedAt.After(jobs[j].UpdatedAt)
	})
}

type fakeCategoryStore struct {
	categories map[uint]*model.JobCategory
	jobs       *fakeJobStore
}

func newFakeCategoryStore(jobs *fakeJobStore, categories ...*model.JobCategory) *fakeCategoryStore {
	s := &fakeCategoryStore{categories: make(map[uint]*model.JobCategory), jobs: jobs}
	for _, c := range categories {
		s.categories[c.ID] = c
	}
	return s
}

func (s *fakeCategoryStore) GetByID(id uint) (*model.JobCategory, error) {
	category, ok := s.categories[id]
	if !ok {
		return nil, nil
	}
	copied := *category
	return &copied, nil
}

func (s *fakeCategoryStore) List() ([]model.JobCategory, error) {
	out := make([]model.JobCategory, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeCategoryStore) CountJobs(categoryID uint) (int64, error) {
	if s.jobs == nil {
		return 0, nil
	}
	s.jobs.mu.Lock()
	defer s.jobs.mu.Unlock()
	var total int64
	for _, job := range s.jobs.jobs {
		if job.CategoryID == categoryID {
			total++
		}
	}
	return total, nil
}

type fakeTokenCache struct {
	mu      sync.Mutex
	entries map[string]*model.User
	deleted []string
}

func newFakeTokenCache() *fakeTokenCache {
	return &fakeTokenCache{entries: make(map[string]*model.User)}
}

func (c *fakeTokenCache) Get(_ context.Context, token string) (*model.User, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	user, ok := c.entries[token]
	if !ok {
		return nil, false, nil
	}
	copied := *user
	return &copied, true, nil
}

func (c *fakeTokenCache) Set(_ context.Context, token string, user *model.User) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	copied := *user
	c.entries[token] = &copied
	return nil
}

func (c *fakeTokenCache) Delete(_ context.Context, token string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, token)
	c.deleted = append(c.deleted, token)
	return nil
}

type fakeEventPublisher struct {
	mu     sync.Mutex
	events []model.ApplicationEvent
}

func (p *fakeEventPublisher) Publish(_ context.Context, event model.ApplicationEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}
