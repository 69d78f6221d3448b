package services

import (
	"sync"

	"smart_canteen/internal/models"
)

// SessionService owns the ephemeral UI selection state: active view, category
// filter, search text and the admin flag. Nothing here is ever persisted.
type SessionService interface {
	State() models.Selection
	SetView(v models.View) (models.Selection, error)
	SetCategory(c models.Category) (models.Selection, error)
	SetSearch(query string) models.Selection
	// ToggleAdmin flips admin mode and forces the view to admin or back to
	// menu, matching the reference behavior.
	ToggleAdmin() models.Selection
	AdminMode() bool
}

type sessionService struct {
	mu        sync.RWMutex
	selection models.Selection
}

func NewSessionService() SessionService {
	return &sessionService{selection: models.DefaultSelection()}
}

func (s *sessionService) State() models.Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection
}

func (s *sessionService) SetView(v models.View) (models.Selection, error) {
	if !v.Valid() {
		return models.Selection{}, &models.ValidationError{Field: "view", Reason: "unknown view"}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.View = v
	return s.selection, nil
}

func (s *sessionService) SetCategory(c models.Category) (models.Selection, error) {
	if !c.Valid() {
		return models.Selection{}, &models.ValidationError{Field: "category", Reason: "must be one of the fixed categories"}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.Category = c
	return s.selection, nil
}

func (s *sessionService) SetSearch(query string) models.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.Search = query
	return s.selection
}

func (s *sessionService) ToggleAdmin() models.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.AdminMode = !s.selection.AdminMode
	if s.selection.AdminMode {
		s.selection.View = models.ViewAdmin
	} else {
		s.selection.View = models.ViewMenu
	}
	return s.selection
}

func (s *sessionService) AdminMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection.AdminMode
}
