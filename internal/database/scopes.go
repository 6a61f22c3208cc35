package database

import (
	"gorm.io/gorm"

	"github.com/dshalev/teamtask/internal/models"
)

// ByTeam restricts a task query to a single team.
func ByTeam(teamID uint64) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("team_id = ?", teamID)
	}
}

// WithStatus filters tasks by status. The raw form value is applied as-is:
// an unknown status simply matches no rows.
func WithStatus(status models.TaskStatus) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ?", status)
	}
}

// ByDueDate orders tasks soonest-due first, the default listing order everywhere.
func ByDueDate(db *gorm.DB) *gorm.DB {
	return db.Order("due_date ASC")
}
