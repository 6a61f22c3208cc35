package repository

import (
	"github.com/dshalev/teamtask/internal/database"
	"github.com/dshalev/teamtask/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by ID with optional preloading
func (r *GormTaskRepository) FindByID(id uint64, preload ...string) (*models.Task, error) {
	var task models.Task
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&task, id).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

func (r *GormTaskRepository) filtered(filter TaskFilter) *gorm.DB {
	query := r.db.Model(&models.Task{}).Scopes(database.ByTeam(filter.TeamID))
	if filter.Status != nil {
		query = query.Scopes(database.WithStatus(*filter.Status))
	}
	return query
}

// List retrieves a team's tasks ordered by due date, optionally restricted to one status
func (r *GormTaskRepository) List(filter TaskFilter) ([]models.Task, error) {
	var tasks []models.Task

	query := r.filtered(filter).Scopes(database.ByDueDate)
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	if err := query.Preload("AssignedTo").Find(&tasks).Error; err != nil {
		return nil, err
	}

	return tasks, nil
}

// Summarize counts tasks per status over the filtered set. With a status
// filter active the other statuses count zero, matching the listing.
func (r *GormTaskRepository) Summarize(filter TaskFilter) (StatusSummary, error) {
	var rows []struct {
		Status models.TaskStatus
		Count  int64
	}

	err := r.filtered(filter).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return StatusSummary{}, err
	}

	var summary StatusSummary
	for _, row := range rows {
		summary.Total += row.Count
		switch row.Status {
		case models.TaskStatusNew:
			summary.New = row.Count
		case models.TaskStatusInProgress:
			summary.InProgress = row.Count
		case models.TaskStatusCompleted:
			summary.Completed = row.Count
		}
	}

	return summary, nil
}

// ListAssignedTo retrieves the tasks of a team assigned to one user
func (r *GormTaskRepository) ListAssignedTo(teamID, userID uint64) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.
		Scopes(database.ByTeam(teamID), database.ByDueDate).
		Where("assigned_to_id = ?", userID).
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update updates a task
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// UpdateStatus sets only the status of a task
func (r *GormTaskRepository) UpdateStatus(id uint64, status models.TaskStatus) error {
	return r.db.Model(&models.Task{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// Delete soft deletes a task
func (r *GormTaskRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Task{}, id).Error
}

// Claim atomically assigns an unassigned task to a user. The conditional
// UPDATE guarantees exactly one of two concurrent claims wins; the loser
// sees zero rows affected.
func (r *GormTaskRepository) Claim(taskID, userID uint64) (bool, error) {
	result := r.db.Model(&models.Task{}).
		Where("id = ? AND assigned_to_id IS NULL", taskID).
		Update("assigned_to_id", userID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
