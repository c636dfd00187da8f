package testutils

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync"
	"testing"
	"time"

	"sos-escalation-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	pgUser     = "sos"
	pgPassword = "sos-test"
	pgDatabase = "sos_escalation"
)

// postgresContainer is one dockerized Postgres shared by every suite in a test binary
type postgresContainer struct {
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB
	tables   []string
}

var (
	containerMu   sync.Mutex
	container     *postgresContainer
	containerErr  error
	containerOnce sync.Once
)

// BaseTestSuite gives integration suites a migrated Postgres database that is
// emptied around every test
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	tables []string
}

// SetupTestSuite starts the shared container on first use
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	t.Helper()
	containerOnce.Do(func() { container, containerErr = startPostgres() })
	if containerErr != nil {
		t.Fatalf("failed to start postgres container: %v", containerErr)
	}
	return &BaseTestSuite{DB: container.db, tables: container.tables}
}

// CleanupSharedContainer purges the container. TestMain calls it once the run ends.
func CleanupSharedContainer() {
	containerMu.Lock()
	defer containerMu.Unlock()

	if container == nil {
		return
	}
	if sqlDB, err := container.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	if err := container.pool.Purge(container.resource); err != nil {
		log.Printf("WARN: could not purge %s: %v", container.resource.Container.Name, err)
	}
	container = nil
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite only empties tables; the container outlives the suite
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB empties every service table in one statement
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil || len(s.tables) == 0 {
		return
	}
	quoted := make([]string, len(s.tables))
	for i, table := range s.tables {
		quoted[i] = `"` + table + `"`
	}
	if err := s.DB.Exec("TRUNCATE TABLE " + strings.Join(quoted, ", ") + " RESTART IDENTITY CASCADE").Error; err != nil {
		log.Printf("WARN: truncate failed: %v", err)
	}
}

func startPostgres() (*postgresContainer, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, fmt.Errorf("could not start postgres: %w", err)
	}
	// reap the container even if the test binary is killed
	_ = resource.Expire(600)

	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
		pgUser, pgPassword, resource.GetPort("5432/tcp"), pgDatabase)

	// the server accepts TCP before it accepts logins, so ping through database/sql first
	err = pool.Retry(func() error {
		std, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer std.Close()
		return std.Ping()
	})
	if err != nil {
		_ = pool.Purge(resource)
		return nil, fmt.Errorf("postgres never became ready: %w", err)
	}

	db, err := database.Initialize(dsn, nil)
	if err != nil {
		_ = pool.Purge(resource)
		return nil, fmt.Errorf("could not migrate test database: %w", err)
	}

	tables, err := tableNames(db)
	if err != nil {
		_ = pool.Purge(resource)
		return nil, err
	}

	log.Printf("Shared Postgres ready on %s, tables %v", resource.GetHostPort("5432/tcp"), tables)
	return &postgresContainer{pool: pool, resource: resource, db: db, tables: tables}, nil
}

func tableNames(db *gorm.DB) ([]string, error) {
	var names []string
	for _, model := range database.Models() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("could not resolve table for %T: %w", model, err)
		}
		names = append(names, stmt.Schema.Table)
	}
	return names, nil
}
