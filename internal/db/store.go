package db

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"strombreaker-backend/internal/common"
)

// ErrDuplicateUser is returned when a username or email is already taken.
var ErrDuplicateUser = errors.New("username or email already exists")

// ErrUserNotFound is returned for reads against an unknown user id.
var ErrUserNotFound = errors.New("user not found")

// Store owns all persistence. Writes are append-only; the underlying
// *gorm.DB pools connections, so one Store is shared across requests.
type Store struct {
	db *gorm.DB
}

func NewStore(gdb *gorm.DB) *Store {
	return &Store{db: gdb}
}

// CreateUser registers a user with an opaque uuid identifier.
func (s *Store) CreateUser(username, email string) (*User, error) {
	user := User{
		ID:        uuid.NewString(),
		Username:  username,
		Email:     email,
		CreatedAt: time.Now(),
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}
	return &user, nil
}

// GetUser looks up a user by id.
func (s *Store) GetUser(id string) (*User, error) {
	var user User
	err := s.db.Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// RecordTurn appends one chat exchange.
func (s *Store) RecordTurn(userID, message, response string, moodScore float64) error {
	turn := ConversationTurn{
		ID:        uuid.NewString(),
		UserID:    userID,
		Message:   message,
		Response:  response,
		MoodScore: common.ClampScore(moodScore),
		CreatedAt: time.Now(),
	}
	return s.db.Create(&turn).Error
}

// RecordMood appends one mood sample.
func (s *Store) RecordMood(userID string, score float64, label, notes string) error {
	sample := MoodSample{
		ID:        uuid.NewString(),
		UserID:    userID,
		MoodScore: common.ClampScore(score),
		MoodLabel: label,
		Notes:     notes,
		CreatedAt: time.Now(),
	}
	return s.db.Create(&sample).Error
}

// RecordActivity appends one client-reported activity completion.
func (s *Store) RecordActivity(userID, activityType string, duration int, status string) error {
	entry := ActivityLog{
		ID:               uuid.NewString(),
		UserID:           userID,
		ActivityType:     activityType,
		Duration:         duration,
		CompletionStatus: status,
		CreatedAt:        time.Now(),
	}
	return s.db.Create(&entry).Error
}

// MoodTrend returns the user's mood samples within the trailing window,
// most recent first.
func (s *Store) MoodTrend(userID string, windowDays int) ([]MoodSample, error) {
	since := time.Now().AddDate(0, 0, -windowDays)
	samples := make([]MoodSample, 0)
	err := s.db.Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at desc").Find(&samples).Error
	return samples, err
}

// RecentActivities returns the most recent activity logs, newest first.
func (s *Store) RecentActivities(userID string, limit int) ([]ActivityLog, error) {
	entries := make([]ActivityLog, 0)
	err := s.db.Where("user_id = ?", userID).
		Order("created_at desc").Limit(limit).Find(&entries).Error
	return entries, err
}

// Badges returns every badge the user has earned, newest first.
func (s *Store) Badges(userID string) ([]Badge, error) {
	badges := make([]Badge, 0)
	err := s.db.Where("user_id = ?", userID).
		Order("earned_at desc").Find(&badges).Error
	return badges, err
}

// Streak counts the user's mood samples within the trailing 30 days. The
// name is historical: it is a sample count, not a consecutive-days streak.
func (s *Store) Streak(userID string) (int64, error) {
	since := time.Now().AddDate(0, 0, -30)
	var count int64
	err := s.db.Model(&MoodSample{}).
		Where("user_id = ? AND created_at >= ?", userID, since).Count(&count).Error
	return count, err
}

// Turns returns the user's most recent conversation turns, oldest first,
// so they can replay directly into a conversation window.
func (s *Store) Turns(userID string, limit int) ([]ConversationTurn, error) {
	turns := make([]ConversationTurn, 0)
	err := s.db.Where("user_id = ?", userID).
		Order("created_at desc").Limit(limit).Find(&turns).Error
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}
	return turns, nil
}
