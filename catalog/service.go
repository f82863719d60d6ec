// Package catalog manages the list of uploadable/purchasable assets.
// This file, `service.go`, contains the business logic for the catalog
// store: newest-first insertion, persistence on every mutation, and lookup.
package catalog

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/syedOmegaPrime/SolitudeFinalProject/apperror"
	"github.com/syedOmegaPrime/SolitudeFinalProject/localstore"
)

// Service is the asset catalog store. The list is kept newest-first by
// construction (uploads are prepended), so consumers get recency ordering
// without a sort step.
type Service struct {
	store  *localstore.Store
	logger *slog.Logger

	mu     sync.Mutex
	assets []Asset
}

// NewService creates a catalog Service, loading any persisted assets.
func NewService(store *localstore.Store, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{store: store, logger: logger}
	if _, err := store.Load(localstore.AssetsKey, &s.assets); err != nil {
		return nil, err
	}
	return s, nil
}

// AddAsset prepends the asset to the front of the list and persists.
// The caller supplies a fully formed asset (generated id, upload timestamp);
// the store does not second-guess it.
func (s *Service) AddAsset(asset Asset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.assets = append([]Asset{asset}, s.assets...)
	if err := s.store.Save(localstore.AssetsKey, s.assets); err != nil {
		s.assets = s.assets[1:]
		return err
	}
	s.logger.Info("asset added", "id", asset.ID, "name", asset.Name)
	return nil
}

// Assets returns a copy of the live list, newest first.
func (s *Service) Assets() []Asset {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Asset, len(s.assets))
	copy(out, s.assets)
	return out
}

// Get returns the asset with the given id. A miss is an explicit NotFound
// the consuming view renders as its "not found" state, never a panic.
func (s *Service) Get(id string) (*Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.assets {
		if s.assets[i].ID == id {
			out := s.assets[i]
			return &out, nil
		}
	}
	return nil, apperror.NewNotFoundError(fmt.Sprintf("asset with id '%s' not found", id), nil)
}
