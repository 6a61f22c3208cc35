package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshalev/teamtask/internal/models"
	"github.com/dshalev/teamtask/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTeamNameRequired = errors.New("team name is required")
	ErrTeamNameTaken    = errors.New("a team with this name already exists")
)

// TeamService manages the team catalog. Teams are created by the seed
// process or an administrator; there is no self-service team creation route.
type TeamService struct {
	teamRepo repository.TeamRepository
}

// NewTeamService creates a new TeamService.
func NewTeamService(teamRepo repository.TeamRepository) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
	}
}

// Create creates a team with a unique, non-empty name.
func (s *TeamService) Create(name string) (*models.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrTeamNameRequired
	}

	if _, err := s.teamRepo.FindByName(name); err == nil {
		return nil, ErrTeamNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check team name: %w", err)
	}

	team := &models.Team{Name: name}
	if err := s.teamRepo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return team, nil
}

// Delete removes a team. Its tasks are deleted with it; its members keep
// their accounts and fall back to having no team, which routes them through
// profile setup again.
func (s *TeamService) Delete(id uint64) error {
	if _, err := s.teamRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTeamNotFound
		}
		return fmt.Errorf("failed to find team: %w", err)
	}

	if err := s.teamRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}

	return nil
}
