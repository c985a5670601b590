package app

import "jobconnect/internal/model"

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// Company resolves the public profile of any user by id; the handler decides
// which fields are exposed.
func (s *UserService) Company(id uint) (*model.User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
