package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sos-escalation-backend/internal/config"
	"sos-escalation-backend/internal/database"
	"sos-escalation-backend/internal/database/models"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type MemberData struct {
	FullName    string   `yaml:"full_name" validate:"required,max=200"`
	Email       string   `yaml:"email" validate:"required,email,max=255"`
	PhoneNumber string   `yaml:"phone_number,omitempty" validate:"max=30"`
	Role        string   `yaml:"role" validate:"required,oneof=admin supervisor worker client"`
	IsActive    *bool    `yaml:"is_active,omitempty"`
	Channels    []string `yaml:"channels,omitempty" validate:"omitempty,dive,oneof=sms call push email"`
}

type ContactData struct {
	OwnerID      string   `yaml:"owner_id" validate:"required,max=100"`
	Name         string   `yaml:"name" validate:"required,max=200"`
	Phone        string   `yaml:"phone" validate:"required,max=30"`
	Relationship string   `yaml:"relationship,omitempty" validate:"max=50"`
	Email        string   `yaml:"email,omitempty" validate:"omitempty,email,max=255"`
	IsPrimary    bool     `yaml:"is_primary"`
	Channels     []string `yaml:"channels,omitempty" validate:"omitempty,dive,oneof=sms call push email"`
}

// YAML file structures
type MembersFile struct {
	Members []MemberData `yaml:"members"`
}

type ContactsFile struct {
	Contacts []ContactData `yaml:"contacts"`
}

type loadStats struct {
	membersCreated  int
	membersExisting int
	contactsCreated int
	contactsExisted int
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	stats, err := loadDataFromYAMLFiles(db, dataDir)
	if err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Printf("Members: %d created, %d existing", stats.membersCreated, stats.membersExisting)
	log.Printf("Emergency contacts: %d created, %d existing", stats.contactsCreated, stats.contactsExisted)
	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) (loadStats, error) {
	var stats loadStats
	validate := validator.New()

	members, err := loadYAML[MembersFile](dataDir, "members")
	if err != nil {
		return stats, fmt.Errorf("failed to load members: %w", err)
	}
	contacts, err := loadYAML[ContactsFile](dataDir, "contacts")
	if err != nil {
		return stats, fmt.Errorf("failed to load contacts: %w", err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		for _, file := range members {
			for _, memberData := range file.Members {
				if err := validate.Struct(memberData); err != nil {
					return fmt.Errorf("invalid member %q: %w", memberData.Email, err)
				}
				created, err := createMember(tx, memberData)
				if err != nil {
					return err
				}
				if created {
					stats.membersCreated++
				} else {
					stats.membersExisting++
				}
			}
		}

		for _, file := range contacts {
			for _, contactData := range file.Contacts {
				if err := validate.Struct(contactData); err != nil {
					return fmt.Errorf("invalid contact %q for %s: %w", contactData.Name, contactData.OwnerID, err)
				}
				created, err := createContact(tx, contactData)
				if err != nil {
					return err
				}
				if created {
					stats.contactsCreated++
				} else {
					stats.contactsExisted++
				}
			}
		}
		return nil
	})
	return stats, err
}

// loadYAML decodes every *.yaml file under dataDir whose path mentions kind
func loadYAML[T any](dataDir, kind string) ([]T, error) {
	var files []T

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(filepath.Base(path), kind) {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			var file T
			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			files = append(files, file)
		}
		return nil
	})

	return files, err
}

func createMember(db *gorm.DB, memberData MemberData) (bool, error) {
	var member models.Member
	err := db.Where("email = ?", memberData.Email).First(&member).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query member: %w", err)
	}

	active := true
	if memberData.IsActive != nil {
		active = *memberData.IsActive
	}

	member = models.Member{
		FullName:    memberData.FullName,
		Email:       memberData.Email,
		PhoneNumber: memberData.PhoneNumber,
		Role:        models.MemberRole(memberData.Role),
		IsActive:    active,
		Channels:    toChannels(memberData.Channels),
	}
	if err := db.Create(&member).Error; err != nil {
		return false, fmt.Errorf("failed to create member %s: %w", memberData.Email, err)
	}
	return true, nil
}

// createContact is keyed on owner and phone so re-running the loader is idempotent
func createContact(db *gorm.DB, contactData ContactData) (bool, error) {
	var contact models.EmergencyContact
	err := db.Where("owner_id = ? AND phone = ?", contactData.OwnerID, contactData.Phone).First(&contact).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query emergency contact: %w", err)
	}

	contact = models.EmergencyContact{
		OwnerID:      contactData.OwnerID,
		Name:         contactData.Name,
		Phone:        contactData.Phone,
		Relationship: contactData.Relationship,
		Email:        contactData.Email,
		IsPrimary:    contactData.IsPrimary,
		Channels:     toChannels(contactData.Channels),
		Active:       true,
	}
	if err := db.Create(&contact).Error; err != nil {
		return false, fmt.Errorf("failed to create emergency contact %s for %s: %w", contactData.Name, contactData.OwnerID, err)
	}
	return true, nil
}

func toChannels(names []string) []models.Channel {
	if len(names) == 0 {
		return nil
	}
	channels := make([]models.Channel, 0, len(names))
	for _, name := range names {
		channels = append(channels, models.Channel(name))
	}
	return channels
}
