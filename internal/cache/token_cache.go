package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"jobconnect/internal/model"
)

// TokenCache keeps a short-lived snapshot of the user owning a bearer token,
// so the auth gate does not hit MySQL on every request. The database stays
// authoritative: entries expire on their own and are deleted eagerly when a
// token is rotated.
type TokenCache struct {
	client *redisv9.Client
	ttl    time.Duration
}

// userSnapshot carries every profile field the handlers may need. The model's
// own json tags hide credentials and media paths, so the cache marshals its
// own shape instead. The password hash is deliberately not stored.
type userSnapshot struct {
	ID               uint       `json:"id"`
	Username         string     `json:"username"`
	Email            string     `json:"email"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	Category         string     `json:"category"`
	Description      *string    `json:"description"`
	Location         string     `json:"location"`
	PhoneNumber      *string    `json:"phone_number"`
	DateOfBirth      *time.Time `json:"date_of_birth"`
	Gender           string     `json:"gender"`
	DocumentPath     *string    `json:"document_path"`
	ProfileImagePath *string    `json:"profile_image_path"`
	Token            *string    `json:"token"`
	CreatedAt        time.Time  `json:"created_at"`
}

func NewTokenCache(client *redisv9.Client, ttl time.Duration) *TokenCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &TokenCache{client: client, ttl: ttl}
}

func (c *TokenCache) Get(ctx context.Context, token string) (*model.User, bool, error) {
	raw, err := c.client.Get(ctx, c.key(token)).Result()
	if err == redisv9.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get token failed: %w", err)
	}

	var snapshot userSnapshot
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached user failed: %w", err)
	}
	return snapshot.toUser(), true, nil
}

func (c *TokenCache) Set(ctx context.Context, token string, user *model.User) error {
	payload, err := json.Marshal(newSnapshot(user))
	if err != nil {
		return fmt.Errorf("marshal user cache failed: %w", err)
	}
	if err := c.client.Set(ctx, c.key(token), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set token failed: %w", err)
	}
	return nil
}

func (c *TokenCache) Delete(ctx context.Context, token string) error {
	if err := c.client.Del(ctx, c.key(token)).Err(); err != nil {
		return fmt.Errorf("redis delete token failed: %w", err)
	}
	return nil
}

func (c *TokenCache) key(token string) string {
	return "auth:token:" + token
}

func newSnapshot(user *model.User) userSnapshot {
	return userSnapshot{
		ID:               user.ID,
		Username:         user.Username,
		Email:            user.Email,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		Category:         user.Category,
		Description:      user.Description,
		Location:         user.Location,
		PhoneNumber:      user.PhoneNumber,
		DateOfBirth:      user.DateOfBirth,
		Gender:           user.Gender,
		DocumentPath:     user.DocumentPath,
		ProfileImagePath: user.ProfileImagePath,
		Token:            user.Token,
		CreatedAt:        user.CreatedAt,
	}
}

func (s *userSnapshot) toUser() *model.User {
	return &model.User{
		ID:               s.ID,
		Username:         s.Username,
		Email:            s.Email,
		FirstName:        s.FirstName,
		LastName:         s.LastName,
		Category:         s.Category,
		Description:      s.Description,
		Location:         s.Location,
		PhoneNumber:      s.PhoneNumber,
		DateOfBirth:      s.DateOfBirth,
		Gender:           s.Gender,
		DocumentPath:     s.DocumentPath,
		ProfileImagePath: s.ProfileImagePath,
		Token:            s.Token,
		CreatedAt:        s.CreatedAt,
	}
}
