package repository

import (
	"github.com/dshalev/teamtask/internal/models"
	"gorm.io/gorm"
)

// GormTeamRepository is a GORM implementation of TeamRepository
type GormTeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new TeamRepository
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &GormTeamRepository{db: db}
}

// Create creates a new team
func (r *GormTeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// FindByID finds a team by ID
func (r *GormTeamRepository) FindByID(id uint64) (*models.Team, error) {
	var team models.Team
	if err := r.db.First(&team, id).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// FindByName finds a team by its unique name
func (r *GormTeamRepository) FindByName(name string) (*models.Team, error) {
	var team models.Team
	if err := r.db.Where("name = ?", name).First(&team).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// List lists all teams, ordered by name
func (r *GormTeamRepository) List() ([]models.Team, error) {
	var teams []models.Team
	if err := r.db.Order("name ASC").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// Delete removes a team and its tasks in a transaction, detaching members
// rather than deleting them.
func (r *GormTeamRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.User{}).
			Where("team_id = ?", id).
			Update("team_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Team{}, id).Error
	})
}
