// Command seed loads development fixtures: three teams, a demo manager and
// employee on the Development team, and a handful of sample tasks.
package main

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/dshalev/teamtask/internal/config"
	"github.com/dshalev/teamtask/internal/database"
	"github.com/dshalev/teamtask/internal/models"
	"github.com/dshalev/teamtask/internal/repository"
	"github.com/dshalev/teamtask/internal/services"
)

func main() {
	cfg := config.Load()

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	teamService := services.NewTeamService(teamRepo)
	authService := services.NewAuthService(userRepo)

	log.Println("Creating test data...")

	teams := make(map[string]*models.Team)
	for _, name := range []string{"Development", "Design", "QA"} {
		team, err := teamService.Create(name)
		if errors.Is(err, services.ErrTeamNameTaken) {
			team, err = teamRepo.FindByName(name)
		}
		if err != nil {
			log.Fatalf("Failed to create team %s: %v", name, err)
		}
		teams[name] = team
	}

	dev := teams["Development"]
	manager := ensureUser(userRepo, authService, "testmanager", "manager@example.com", dev.ID, models.RoleManager)
	ensureUser(userRepo, authService, "testemployee", "employee@example.com", dev.ID, models.RoleEmployee)

	taskData := []struct {
		title       string
		description string
		dueInDays   int
	}{
		{"Fix login bug", "Fix the authentication issue", 3},
		{"Design dashboard", "Create a new dashboard design", 5},
		{"Update API", "Add new API endpoints", 7},
		{"Test features", "QA testing for new release", 10},
		{"Write docs", "Update documentation", 2},
	}

	for _, td := range taskData {
		var existing models.Task
		err := db.Where("title = ? AND team_id = ?", td.title, dev.ID).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Failed to check task %q: %v", td.title, err)
		}

		task := &models.Task{
			Title:       td.title,
			Description: td.description,
			DueDate:     time.Now().AddDate(0, 0, td.dueInDays),
			Status:      models.TaskStatusNew,
			TeamID:      dev.ID,
		}
		if err := taskRepo.Create(task); err != nil {
			log.Fatalf("Failed to create task %q: %v", td.title, err)
		}
	}

	log.Printf("Test data ready (manager: %s / password123)", manager.Username)
}

func ensureUser(userRepo repository.UserRepository, authService *services.AuthService, username, email string, teamID uint64, role models.Role) *models.User {
	user, err := userRepo.FindByUsername(username)
	if err == nil {
		return user
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Failed to check user %s: %v", username, err)
	}

	user, err = authService.Register(services.RegisterInput{
		Username: username,
		Email:    email,
		Password: "password123",
	})
	if err != nil {
		log.Fatalf("Failed to create user %s: %v", username, err)
	}

	user.TeamID = &teamID
	user.Role = role
	if err := userRepo.Update(user); err != nil {
		log.Fatalf("Failed to update user %s: %v", username, err)
	}

	return user
}
