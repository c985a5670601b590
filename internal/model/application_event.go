package model

import "time"

const (
	EventActionPosted    = "posted"
	EventActionApplied   = "applied"
	EventActionUnapplied = "unapplied"
)

// ApplicationEvent is an audit row for job activity. Events are published to
// the broker by the services and persisted asynchronously by the worker, so a
// broker outage never fails the originating request.
type ApplicationEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	JobID     uint      `gorm:"not null;index" json:"job_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Action    string    `gorm:"size:16;not null;index" json:"action"`
	CreatedAt time.Time `json:"created_at"`
}

func (ApplicationEvent) TableName() string { return "application_events" }
