package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/dshalev/teamtask/internal/constants"
	"github.com/dshalev/teamtask/internal/models"
	"github.com/dshalev/teamtask/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrInvalidStatus = errors.New("invalid task status")
	ErrNoTeam        = errors.New("user has no team")
)

// TaskService handles task business logic
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
	}
}

// TaskInput holds the user-editable fields of a task.
type TaskInput struct {
	Title       string
	Description string
	DueDate     time.Time
}

// TaskPage is a task listing together with its status breakdown. The summary
// is computed over the same filtered set as the listing.
type TaskPage struct {
	Tasks   []models.Task
	Summary repository.StatusSummary
}

// Overview is the home page data for a signed-in user with a team.
type Overview struct {
	Summary  repository.StatusSummary
	Recent   []models.Task
	Assigned []models.Task
}

// ListTasks returns a team's tasks ordered by due date, optionally filtered
// by status, plus the per-status counts of the filtered set.
func (s *TaskService) ListTasks(teamID uint64, status *models.TaskStatus) (TaskPage, error) {
	filter := repository.TaskFilter{
		TeamID: teamID,
		Status: status,
	}

	tasks, err := s.taskRepo.List(filter)
	if err != nil {
		return TaskPage{}, fmt.Errorf("failed to list tasks: %w", err)
	}

	summary, err := s.taskRepo.Summarize(filter)
	if err != nil {
		return TaskPage{}, fmt.Errorf("failed to summarize tasks: %w", err)
	}

	return TaskPage{Tasks: tasks, Summary: summary}, nil
}

// Overview collects the home page data: status counts over the whole team,
// the soonest-due tasks, and the user's own assignments. A user without a
// team gets the zero overview.
func (s *TaskService) Overview(user models.User) (Overview, error) {
	if user.TeamID == nil {
		return Overview{}, nil
	}

	filter := repository.TaskFilter{TeamID: *user.TeamID}

	summary, err := s.taskRepo.Summarize(filter)
	if err != nil {
		return Overview{}, fmt.Errorf("failed to summarize tasks: %w", err)
	}

	filter.Limit = constants.HomeRecentTaskLimit
	recent, err := s.taskRepo.List(filter)
	if err != nil {
		return Overview{}, fmt.Errorf("failed to list tasks: %w", err)
	}

	assigned, err := s.taskRepo.ListAssignedTo(*user.TeamID, user.ID)
	if err != nil {
		return Overview{}, fmt.Errorf("failed to list assigned tasks: %w", err)
	}

	return Overview{
		Summary:  summary,
		Recent:   recent,
		Assigned: assigned,
	}, nil
}

// GetTask returns a task with its team and assignee loaded.
func (s *TaskService) GetTask(taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID, "Team", "AssignedTo")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	return task, nil
}

// CreateTask creates a task for the creator's team. Team and status are set
// server-side regardless of what the client submitted.
func (s *TaskService) CreateTask(creator models.User, input TaskInput) (*models.Task, error) {
	if creator.TeamID == nil {
		return nil, ErrNoTeam
	}

	task := &models.Task{
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Status:      models.TaskStatusNew,
		TeamID:      *creator.TeamID,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// UpdateTask updates a task's editable fields. Team, status and assignee are
// untouched.
func (s *TaskService) UpdateTask(taskID uint64, input TaskInput) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	task.Title = input.Title
	task.Description = input.Description
	task.DueDate = input.DueDate

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// UpdateStatus sets a task's status. Transitions are unrestricted: any of
// the three statuses may be set from any other, and re-setting the current
// status succeeds without change.
func (s *TaskService) UpdateStatus(taskID uint64, status models.TaskStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	if err := s.taskRepo.UpdateStatus(taskID, status); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	return nil
}

// DeleteTask deletes a task.
func (s *TaskService) DeleteTask(taskID uint64) error {
	if err := s.taskRepo.Delete(taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// Claim assigns an unassigned task to the user. Reports false when another
// user claimed the task first.
func (s *TaskService) Claim(taskID, userID uint64) (bool, error) {
	claimed, err := s.taskRepo.Claim(taskID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to claim task: %w", err)
	}
	return claimed, nil
}
