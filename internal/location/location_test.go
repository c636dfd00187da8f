package location

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"sos-escalation-backend/internal/database/models"
	apperrors "sos-escalation-backend/internal/errors"

	"github.com/alicebob/miniredis/v2"
	"github.com/oschwald/geoip2-golang"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	loc   models.Location
	err   error
	calls int
}

func (s *stubProvider) CurrentLocation(ctx context.Context, subjectID string) (models.Location, error) {
	s.calls++
	return s.loc, s.err
}

func fix(lat, lng float64) models.Location {
	return models.Location{Latitude: lat, Longitude: lng, Address: "somewhere", Source: "device"}
}

func TestChain(t *testing.T) {
	ctx := context.Background()

	t.Run("first success wins", func(t *testing.T) {
		failing := &stubProvider{err: errors.New("gps off")}
		ok := &stubProvider{loc: fix(1, 2)}
		never := &stubProvider{loc: fix(3, 4)}

		loc, err := NewChain(failing, nil, ok, never).CurrentLocation(ctx, "worker-1")

		require.NoError(t, err)
		assert.Equal(t, 1.0, loc.Latitude)
		assert.Equal(t, 1, failing.calls)
		assert.Equal(t, 0, never.calls)
	})

	t.Run("all failing", func(t *testing.T) {
		_, err := NewChain(&stubProvider{err: errors.New("a")}, &stubProvider{err: errors.New("b")}).CurrentLocation(ctx, "worker-1")

		assert.ErrorIs(t, err, apperrors.ErrLocationUnavailable)
		assert.Contains(t, err.Error(), "a")
		assert.Contains(t, err.Error(), "b")
	})

	t.Run("empty chain", func(t *testing.T) {
		_, err := NewChain().CurrentLocation(ctx, "worker-1")
		assert.ErrorIs(t, err, apperrors.ErrLocationUnavailable)
	})

	t.Run("cancelled context stops the walk", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		p := &stubProvider{loc: fix(1, 2)}

		_, err := NewChain(p).CurrentLocation(cancelled, "worker-1")

		assert.ErrorIs(t, err, apperrors.ErrLocationUnavailable)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 0, p.calls)
	})
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute)

	_, err := store.CurrentLocation(ctx, "worker-1")
	assert.ErrorIs(t, err, apperrors.ErrLocationUnavailable)

	loc := fix(52.5, 13.4)
	loc.Source = ""
	require.NoError(t, store.Report(ctx, "worker-1", loc))

	got, err := store.CurrentLocation(ctx, "worker-1")
	require.NoError(t, err)
	assert.Equal(t, 52.5, got.Latitude)
	assert.Equal(t, "device", got.Source)

	err = store.Report(ctx, "worker-1", fix(91, 0))
	assert.True(t, apperrors.IsValidation(err))
}

func TestMemoryStoreExpires(t *testing.T) {
	store := NewMemoryStore(10 * time.Millisecond)
	require.NoError(t, store.Report(context.Background(), "worker-1", fix(1, 1)))

	assert.Eventually(t, func() bool {
		_, err := store.CurrentLocation(context.Background(), "worker-1")
		return errors.Is(err, apperrors.ErrLocationUnavailable)
	}, time.Second, 5*time.Millisecond)
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStoreWithClient(client, time.Minute)
	defer store.Close()

	_, err := store.CurrentLocation(ctx, "client-7")
	assert.ErrorIs(t, err, apperrors.ErrLocationUnavailable)

	accuracy := 12.5
	loc := fix(40.7, -74.0)
	loc.Accuracy = &accuracy
	require.NoError(t, store.Report(ctx, "client-7", loc))
	assert.True(t, mr.Exists("sos:location:client-7"))

	got, err := store.CurrentLocation(ctx, "client-7")
	require.NoError(t, err)
	assert.Equal(t, 40.7, got.Latitude)
	require.NotNil(t, got.Accuracy)
	assert.Equal(t, 12.5, *got.Accuracy)

	mr.FastForward(2 * time.Minute)
	_, err = store.CurrentLocation(ctx, "client-7")
	assert.ErrorIs(t, err, apperrors.ErrLocationUnavailable)
}

func TestNewRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)

	store, err := NewRedisStore(context.Background(), "redis://"+mr.Addr()+"/0", time.Minute)
	require.NoError(t, err)
	defer store.Close()
	assert.NoError(t, store.Ping(context.Background()))

	_, err = NewRedisStore(context.Background(), "::not a url", time.Minute)
	assert.Error(t, err)
}

func TestRedisStoreServerError(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStoreWithClient(client, time.Minute)
	defer store.Close()

	mr.SetError("ERR server unavailable")
	_, err := store.CurrentLocation(context.Background(), "client-7")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrLocationUnavailable)
}

type fakeCityReader struct {
	city *geoip2.City
	err  error
	seen net.IP
}

func (f *fakeCityReader) City(ip net.IP) (*geoip2.City, error) {
	f.seen = ip
	return f.city, f.err
}

func TestGeoIPProvider(t *testing.T) {
	city := &geoip2.City{}
	city.Location.Latitude = 48.85
	city.Location.Longitude = 2.35
	city.Location.AccuracyRadius = 20
	city.City.Names = map[string]string{"en": "Paris", "de": "Paris"}
	city.Country.Names = map[string]string{"en": "France", "de": "Frankreich"}

	reader := &fakeCityReader{city: city}
	provider := &GeoIPProvider{reader: reader, language: "de"}

	t.Run("without client address", func(t *testing.T) {
		_, err := provider.CurrentLocation(context.Background(), "worker-1")
		assert.ErrorIs(t, err, apperrors.ErrLocationUnavailable)
	})

	t.Run("with client address", func(t *testing.T) {
		ctx := WithClientIP(context.Background(), "81.2.69.142")

		loc, err := provider.CurrentLocation(ctx, "worker-1")

		require.NoError(t, err)
		assert.Equal(t, "81.2.69.142", reader.seen.String())
		assert.Equal(t, 48.85, loc.Latitude)
		assert.Equal(t, "Paris, Frankreich", loc.Address)
		assert.Equal(t, "geoip", loc.Source)
		require.NotNil(t, loc.Accuracy)
		assert.Equal(t, 20000.0, *loc.Accuracy)
	})

	t.Run("unknown address", func(t *testing.T) {
		empty := &GeoIPProvider{reader: &fakeCityReader{city: &geoip2.City{}}, language: "en"}
		_, err := empty.CurrentLocation(WithClientIP(context.Background(), "10.0.0.1"), "worker-1")
		assert.ErrorIs(t, err, apperrors.ErrLocationUnavailable)
	})

	t.Run("reader failure", func(t *testing.T) {
		broken := &GeoIPProvider{reader: &fakeCityReader{err: errors.New("corrupt")}}
		_, err := broken.CurrentLocation(WithClientIP(context.Background(), "10.0.0.1"), "worker-1")
		assert.Error(t, err)
	})
}

func TestNewGeoIPProviderRequiresPath(t *testing.T) {
	_, err := NewGeoIPProvider("", "en")
	assert.True(t, apperrors.IsConfiguration(err))

	_, err = NewGeoIPProvider("/does/not/exist.mmdb", "en")
	assert.Error(t, err)
}
