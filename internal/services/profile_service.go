package services

import (
	"errors"
	"fmt"

	"github.com/dshalev/teamtask/internal/models"
	"github.com/dshalev/teamtask/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTeamNotFound = errors.New("team not found")
	ErrInvalidRole  = errors.New("invalid role")
)

// ProfileService applies team and role changes to a user. The two mutations
// are deliberately separate operations so an authorization rule can later be
// attached to either one independently.
type ProfileService struct {
	userRepo repository.UserRepository
	teamRepo repository.TeamRepository
}

// NewProfileService creates a new ProfileService.
func NewProfileService(userRepo repository.UserRepository, teamRepo repository.TeamRepository) *ProfileService {
	return &ProfileService{
		userRepo: userRepo,
		teamRepo: teamRepo,
	}
}

// Teams lists the teams offered by the setup and edit forms.
func (s *ProfileService) Teams() ([]models.Team, error) {
	teams, err := s.teamRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

// AssignTeam moves the user into the given team.
func (s *ProfileService) AssignTeam(userID, teamID uint64) (*models.User, error) {
	team, err := s.teamRepo.FindByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to find team: %w", err)
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	user.TeamID = &team.ID
	user.Team = team

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// AssignRole sets the user's role. Users may currently change their own role
// at any time; see DESIGN.md for the status of that decision.
func (s *ProfileService) AssignRole(userID uint64, role models.Role) (*models.User, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	user.Role = role

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}
