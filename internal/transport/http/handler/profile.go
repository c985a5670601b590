package handler

import (
	"time"

	"jobconnect/internal/model"
	"jobconnect/internal/transport/http/response"
)

// Media rewrites stored relative media paths into absolute URLs for
// responses.
type Media struct {
	BaseURL   string
	URLPrefix string
}

func (m Media) URL(path *string) *string {
	return response.MediaURL(m.BaseURL, m.URLPrefix, path)
}

// PublicProfile is the profile shape anyone may see: company details and
// applier listings. No contact or credential fields.
type PublicProfile struct {
	ID           uint      `json:"id"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Category     string    `json:"category"`
	Description  *string   `json:"description"`
	Location     string    `json:"location"`
	ProfileImage *string   `json:"profile_image"`
	DateJoined   time.Time `json:"date_joined"`
}

// PrivateProfile is the full record a user sees about themselves.
type PrivateProfile struct {
	PublicProfile
	Email       string     `json:"email"`
	PhoneNumber *string    `json:"phone_number"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Gender      string     `json:"gender"`
	Document    *string    `json:"document"`
}

func newPublicProfile(user *model.User, media Media) PublicProfile {
	return PublicProfile{
		ID:           user.ID,
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Category:     user.Category,
		Description:  user.Description,
		Location:     user.Location,
		ProfileImage: media.URL(user.ProfileImagePath),
		DateJoined:   user.CreatedAt,
	}
}

func newPrivateProfile(user *model.User, media Media) PrivateProfile {
	return PrivateProfile{
		PublicProfile: newPublicProfile(user, media),
		Email:         user.Email,
		PhoneNumber:   user.PhoneNumber,
		DateOfBirth:   user.DateOfBirth,
		Gender:        user.Gender,
		Document:      media.URL(user.DocumentPath),
	}
}
