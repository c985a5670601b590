package model

import "time"

const (
	JobTypeFullTime   = "Full-time"
	JobTypeInternship = "Internship"
	// JobTypeAll is only valid as a listing filter, never stored.
	JobTypeAll = "All"
)

type Job struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	CompanyID  uint        `gorm:"not null;index" json:"company_id"`
	Company    User        `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"-"`
	CategoryID uint        `gorm:"not null;index" json:"category_id"`
	Category   JobCategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`

	Title         string `gorm:"size:100;not null" json:"title"`
	Type          string `gorm:"size:30;not null;default:'Full-time'" json:"type"`
	MinimumSalary uint   `gorm:"not null" json:"minimum_salary"`
	MaximumSalary uint   `gorm:"not null" json:"maximum_salary"`
	Description   string `gorm:"type:text;not null" json:"description"`
	IsAvailable   bool   `gorm:"not null;default:true" json:"is_available"`

	UpdatedAt time.Time `json:"updated_at"`
	CreatedAt time.Time `json:"created_at"`

	Applicants []User `gorm:"many2many:job_applicants" json:"-"`
}

func (Job) TableName() string { return "jobs" }

// JobFilter narrows the public job listing. Zero values mean "no filter":
// Type "" or "All" skips the type clause, CategoryID 0 skips the category
// clause, Start -1 (the default) skips the id cursor.
type JobFilter struct {
	Type       string
	CategoryID uint
	Start      int64
	Offset     int
	Limit      int
}
