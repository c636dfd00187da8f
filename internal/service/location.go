package service

import (
	"context"
	"fmt"

	"sos-escalation-backend/internal/database/models"
	apperrors "sos-escalation-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// LocationService accepts position reports from subject devices
type LocationService struct {
	reporter  LocationReporter
	validator *validator.Validate
}

// NewLocationService creates a new location service
func NewLocationService(reporter LocationReporter, validator *validator.Validate) *LocationService {
	return &LocationService{
		reporter:  reporter,
		validator: validator,
	}
}

// ReportLocationRequest is a device-reported fix
type ReportLocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,min=-90,max=90" example:"52.52"`
	Longitude *float64 `json:"longitude" validate:"required,min=-180,max=180" example:"13.405"`
	Accuracy  *float64 `json:"accuracy" validate:"omitempty,min=0" example:"12.5"`
	Address   string   `json:"address" validate:"max=500"`
}

// ReportLocation stores the fix as the subject's last known position
func (s *LocationService) ReportLocation(ctx context.Context, subjectID string, req *ReportLocationRequest) error {
	if subjectID == "" {
		return apperrors.NewValidationError("subject_id", "is required")
	}
	if err := s.validator.Struct(req); err != nil {
		return apperrors.NewValidationError("", err.Error())
	}

	loc := models.Location{
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Accuracy:  req.Accuracy,
		Address:   req.Address,
		Source:    "device",
	}
	if err := s.reporter.Report(ctx, subjectID, loc); err != nil {
		if apperrors.IsValidation(err) {
			return err
		}
		return fmt.Errorf("failed to store location: %w", err)
	}
	return nil
}
