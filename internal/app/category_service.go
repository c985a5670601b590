package app

import "jobconnect/internal/model"

type CategoryService struct {
	categories CategoryStore
}

func NewCategoryService(categories CategoryStore) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) List() (*CategoryList, error) {
	categories, err := s.categories.List()
	if err != nil {
		return nil, err
	}

	records := make([]CategoryRecord, 0, len(categories))
	for i := range categories {
		record, err := s.record(&categories[i])
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	return &CategoryList{Total: int64(len(records)), Categories: records}, nil
}

func (s *CategoryService) Get(id uint) (*CategoryRecord, error) {
	category, err := s.categories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return s.record(category)
}

func (s *CategoryService) record(category *model.JobCategory) (*CategoryRecord, error) {
	jobsAmount, err := s.categories.CountJobs(category.ID)
	if err != nil {
		return nil, err
	}
	return &CategoryRecord{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		JobsAmount:  jobsAmount,
		CreatedAt:   category.CreatedAt,
	}, nil
}
