package model

import "time"

const (
	UserCategoryOrganization = "organization"
	UserCategoryIndividual   = "individual"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

type User struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Username         string     `gorm:"size:64;not null;uniqueIndex" json:"username"`
	Email            string     `gorm:"size:128;not null;uniqueIndex" json:"email"`
	FirstName        string     `gorm:"size:64" json:"first_name"`
	LastName         string     `gorm:"size:64" json:"last_name"`
	PasswordHash     string     `gorm:"size:255;not null" json:"-"`
	Category         string     `gorm:"size:30;not null" json:"category"`
	Description      *string    `gorm:"type:text" json:"description"`
	Location         string     `gorm:"size:50" json:"location"`
	PhoneNumber      *string    `gorm:"size:15" json:"phone_number"`
	DateOfBirth      *time.Time `json:"date_of_birth"`
	Gender           string     `gorm:"size:10;not null;default:other" json:"gender"`
	DocumentPath     *string    `gorm:"size:255" json:"-"`
	ProfileImagePath *string    `gorm:"size:255" json:"-"`

	// Token is the user's single current bearer credential. Issued lazily on
	// first login, rotated on refresh, never expired automatically.
	Token *string `gorm:"size:64;uniqueIndex" json:"-"`

	CreatedAt time.Time `json:"date_joined"`
	UpdatedAt time.Time `json:"-"`

	AppliedJobs []Job `gorm:"many2many:job_applicants" json:"-"`
}

func (User) TableName() string { return "users" }
