package location

import (
	"context"
	"time"

	"sos-escalation-backend/internal/database/models"
	apperrors "sos-escalation-backend/internal/errors"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryStore keeps each subject's last reported fix in process memory
type MemoryStore struct {
	cache *gocache.Cache
	ttl   time.Duration
}

// NewMemoryStore creates a store whose fixes expire after ttl
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		cache: gocache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

// Report records the subject's latest fix
func (s *MemoryStore) Report(ctx context.Context, subjectID string, loc models.Location) error {
	if err := validate(loc); err != nil {
		return err
	}
	if loc.Source == "" {
		loc.Source = "device"
	}
	s.cache.Set(subjectID, loc, s.ttl)
	return nil
}

// CurrentLocation returns the last fix that has not expired
func (s *MemoryStore) CurrentLocation(ctx context.Context, subjectID string) (models.Location, error) {
	value, ok := s.cache.Get(subjectID)
	if !ok {
		return models.Location{}, apperrors.ErrLocationUnavailable
	}
	return value.(models.Location), nil
}
