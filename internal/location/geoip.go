package location

import (
	"context"
	"fmt"
	"net"
	"strings"

	"sos-escalation-backend/internal/database/models"
	apperrors "sos-escalation-backend/internal/errors"

	"github.com/oschwald/geoip2-golang"
)

type clientIPKey struct{}

// WithClientIP attaches the caller's network address for coarse lookups
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey{}, ip)
}

// ClientIP returns the address stored by WithClientIP
func ClientIP(ctx context.Context) (net.IP, bool) {
	raw, ok := ctx.Value(clientIPKey{}).(string)
	if !ok || raw == "" {
		return nil, false
	}
	ip := net.ParseIP(raw)
	return ip, ip != nil
}

type cityReader interface {
	City(ipAddress net.IP) (*geoip2.City, error)
}

// GeoIPProvider estimates a position from the requesting device's IP address.
// It is a last resort: accuracy is city level at best.
type GeoIPProvider struct {
	reader   cityReader
	language string
	closer   func() error
}

// NewGeoIPProvider opens a MaxMind City database
func NewGeoIPProvider(path, language string) (*GeoIPProvider, error) {
	if path == "" {
		return nil, apperrors.ErrGeoIPDatabaseMissing
	}
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open geoip database: %w", err)
	}
	return &GeoIPProvider{reader: reader, language: language, closer: reader.Close}, nil
}

// CurrentLocation looks up the client IP carried in ctx
func (p *GeoIPProvider) CurrentLocation(ctx context.Context, subjectID string) (models.Location, error) {
	ip, ok := ClientIP(ctx)
	if !ok {
		return models.Location{}, fmt.Errorf("%w: no client address", apperrors.ErrLocationUnavailable)
	}

	record, err := p.reader.City(ip)
	if err != nil {
		return models.Location{}, fmt.Errorf("geoip lookup: %w", err)
	}
	if record.Location.Latitude == 0 && record.Location.Longitude == 0 {
		return models.Location{}, fmt.Errorf("%w: address %s not in database", apperrors.ErrLocationUnavailable, ip)
	}

	loc := models.Location{
		Latitude:  record.Location.Latitude,
		Longitude: record.Location.Longitude,
		Address:   p.describe(record),
		Source:    "geoip",
	}
	if record.Location.AccuracyRadius > 0 {
		meters := float64(record.Location.AccuracyRadius) * 1000
		loc.Accuracy = &meters
	}
	return loc, nil
}

func (p *GeoIPProvider) describe(record *geoip2.City) string {
	parts := make([]string, 0, 2)
	if name := localized(record.City.Names, p.language); name != "" {
		parts = append(parts, name)
	}
	if name := localized(record.Country.Names, p.language); name != "" {
		parts = append(parts, name)
	}
	return strings.Join(parts, ", ")
}

func localized(names map[string]string, language string) string {
	if name, ok := names[language]; ok {
		return name
	}
	return names["en"]
}

// Close releases the database file
func (p *GeoIPProvider) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer()
}
