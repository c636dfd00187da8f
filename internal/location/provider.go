package location

import (
	"context"
	"errors"
	"fmt"

	"sos-escalation-backend/internal/database/models"
	apperrors "sos-escalation-backend/internal/errors"
)

// Provider answers "where is this subject right now"
type Provider interface {
	CurrentLocation(ctx context.Context, subjectID string) (models.Location, error)
}

// Reporter stores a device-reported fix so later lookups can use it
type Reporter interface {
	Report(ctx context.Context, subjectID string, loc models.Location) error
}

// Store is a last-known-fix cache that is both a Reporter and a Provider
type Store interface {
	Provider
	Reporter
}

// Chain asks each provider in turn and returns the first fix
type Chain struct {
	providers []Provider
}

// NewChain builds a Chain, skipping nil providers
func NewChain(providers ...Provider) *Chain {
	chain := &Chain{}
	for _, p := range providers {
		if p != nil {
			chain.providers = append(chain.providers, p)
		}
	}
	return chain
}

// CurrentLocation returns the first successful answer, or ErrLocationUnavailable
// joined with every provider's failure
func (c *Chain) CurrentLocation(ctx context.Context, subjectID string) (models.Location, error) {
	var errs []error
	for _, p := range c.providers {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		loc, err := p.CurrentLocation(ctx, subjectID)
		if err == nil {
			return loc, nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return models.Location{}, apperrors.ErrLocationUnavailable
	}
	return models.Location{}, fmt.Errorf("%w: %w", apperrors.ErrLocationUnavailable, errors.Join(errs...))
}

func validate(loc models.Location) error {
	if loc.Latitude < -90 || loc.Latitude > 90 {
		return apperrors.NewValidationError("latitude", "must be between -90 and 90")
	}
	if loc.Longitude < -180 || loc.Longitude > 180 {
		return apperrors.NewValidationError("longitude", "must be between -180 and 180")
	}
	if loc.Accuracy != nil && *loc.Accuracy < 0 {
		return apperrors.NewValidationError("accuracy", "must not be negative")
	}
	return nil
}
