package db

import (
	"time"
)

type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Username  string    `gorm:"size:64;uniqueIndex" json:"username"`
	Email     string    `gorm:"size:128;uniqueIndex" json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ConversationTurn is one chat exchange: user message, composed reply, and
// the mood score detected for the message. Append-only.
type ConversationTurn struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:36;index" json:"user_id"`
	Message   string    `gorm:"type:text" json:"message"`
	Response  string    `gorm:"type:text" json:"response"`
	MoodScore float64   `json:"mood_score"`
	CreatedAt time.Time `json:"timestamp"`
}

// MoodSample is one mood observation, written once per chat call and once
// per explicit mood log. Scores are clamped to [-1, 1] before insert.
type MoodSample struct {
	ID        string    `gorm:"primaryKey;size:36" json:"-"`
	UserID    string    `gorm:"size:36;index" json:"-"`
	MoodScore float64   `json:"mood_score"`
	MoodLabel string    `gorm:"size:32" json:"mood_label"`
	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time `json:"timestamp"`
}

// ActivityLog records a client-reported wellness activity completion.
type ActivityLog struct {
	ID               string    `gorm:"primaryKey;size:36" json:"-"`
	UserID           string    `gorm:"size:36;index" json:"-"`
	ActivityType     string    `gorm:"size:64" json:"activity_type"`
	Duration         int       `json:"duration"`
	CompletionStatus string    `gorm:"size:32" json:"completion_status"`
	CreatedAt        time.Time `json:"timestamp"`
}

// Badge rows are written by the gamification trigger outside this backend;
// this service only reads them for the dashboard.
type Badge struct {
	ID               string    `gorm:"primaryKey;size:36" json:"-"`
	UserID           string    `gorm:"size:36;index" json:"-"`
	BadgeName        string    `gorm:"size:64" json:"badge_name"`
	BadgeDescription string    `gorm:"type:text" json:"badge_description"`
	EarnedAt         time.Time `json:"earned_at"`
}
