package models

import (
	"time"

	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskStatusNew        TaskStatus = "New"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusCompleted  TaskStatus = "Completed"
)

// Valid reports whether s is one of the three known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusNew, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

type Task struct {
	ID           uint64         `gorm:"primarykey" json:"id"`
	Title        string         `gorm:"type:varchar(200);not null" json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	DueDate      time.Time      `gorm:"type:date;not null;index" json:"due_date"`
	Status       TaskStatus     `gorm:"type:varchar(20);not null;default:'New';index" json:"status"`
	TeamID       uint64         `gorm:"not null;index" json:"team_id"`
	AssignedToID *uint64        `gorm:"index" json:"assigned_to_id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Team       Team  `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	AssignedTo *User `gorm:"foreignKey:AssignedToID" json:"assigned_to,omitempty"`
}

// IsAssignedTo reports whether the task is currently assigned to the given user.
func (t Task) IsAssignedTo(userID uint64) bool {
	return t.AssignedToID != nil && *t.AssignedToID == userID
}
