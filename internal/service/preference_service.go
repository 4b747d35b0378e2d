package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/Eursukkul/tour-booking/tour-service/internal/repository"
)

type PreferenceService interface {
	DarkMode() bool
	SetDarkMode(ctx context.Context, on bool) error
	ToggleDarkMode(ctx context.Context) (bool, error)
}

type preferenceService struct {
	mu       sync.Mutex
	darkMode bool
	repo     repository.PreferenceRepository
}

func NewPreferenceService(ctx context.Context, repo repository.PreferenceRepository) (PreferenceService, error) {
	on, err := repo.LoadDarkMode(ctx)
	if err != nil {
		return nil, fmt.Errorf("restore preferences: %w", err)
	}
	return &preferenceService{darkMode: on, repo: repo}, nil
}

func (s *preferenceService) DarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.darkMode
}

func (s *preferenceService) SetDarkMode(ctx context.Context, on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.SaveDarkMode(ctx, on); err != nil {
		return fmt.Errorf("save dark mode: %w", err)
	}
	s.darkMode = on
	return nil
}

func (s *preferenceService) ToggleDarkMode(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	on := !s.darkMode
	if err := s.repo.SaveDarkMode(ctx, on); err != nil {
		return s.darkMode, fmt.Errorf("save dark mode: %w", err)
	}
	s.darkMode = on
	return on, nil
}
