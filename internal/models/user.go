package models

import (
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleManager  Role = "Manager"
	RoleEmployee Role = "Employee"
)

// Valid reports whether r is one of the two known roles.
func (r Role) Valid() bool {
	return r == RoleManager || r == RoleEmployee
}

type User struct {
	ID           uint64         `gorm:"primarykey" json:"id"`
	Username     string         `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	Email        string         `gorm:"type:varchar(255);not null" json:"email"`
	PasswordHash string         `gorm:"type:varchar(255);not null" json:"-"`
	TeamID       *uint64        `gorm:"index" json:"team_id"`
	Role         Role           `gorm:"type:varchar(10);not null;default:'Employee'" json:"role"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Team          *Team  `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	AssignedTasks []Task `gorm:"foreignKey:AssignedToID" json:"-"`
}

func (u User) IsManager() bool {
	return u.Role == RoleManager
}

// HasTeam reports whether the user has completed profile setup.
func (u User) HasTeam() bool {
	return u.TeamID != nil
}
