package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"sos-escalation-backend/internal/api/handlers"
	"sos-escalation-backend/internal/database/models"
	apperrors "sos-escalation-backend/internal/errors"
	"sos-escalation-backend/internal/mocks"
	"sos-escalation-backend/internal/service"
	"sos-escalation-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ContactHandlerTestSuite defines the test suite for ContactHandler
type ContactHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockContactServiceInterface
	http        *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *ContactHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockContactServiceInterface(suite.ctrl)
	suite.http = testutils.SetupHTTPTest()

	handler := handlers.NewContactHandler(suite.mockService)
	suite.http.Router.POST("/contacts", handler.AddEmergencyContact)
	suite.http.Router.DELETE("/contacts/:id", handler.DeactivateContact)
	suite.http.Router.GET("/subjects/:subjectId/contacts", handler.ListContacts)
}

// TearDownTest cleans up after each test
func (suite *ContactHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ContactHandlerTestSuite) TestAddEmergencyContact() {
	id := uuid.New()
	suite.mockService.EXPECT().
		AddEmergencyContact(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *service.AddEmergencyContactRequest) (*service.EmergencyContactResponse, error) {
			suite.Equal("worker-42", req.OwnerID)
			suite.True(req.IsPrimary)
			suite.Equal([]models.Channel{models.ChannelSMS, models.ChannelCall}, req.Channels)
			return &service.EmergencyContactResponse{
				ID:        id,
				OwnerID:   req.OwnerID,
				Name:      req.Name,
				Phone:     req.Phone,
				IsPrimary: true,
				Channels:  req.Channels,
				Active:    true,
				CreatedAt: "2025-03-01T09:00:00Z",
			}, nil
		})

	recorder := suite.http.MakeRequest(http.MethodPost, "/contacts", map[string]interface{}{
		"owner_id":   "worker-42",
		"name":       "Sam Miller",
		"phone":      "+49 151 00000000",
		"is_primary": true,
		"channels":   []string{"sms", "call"},
	})

	var response service.EmergencyContactResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.Equal(id, response.ID)
	suite.True(response.Active)
}

func (suite *ContactHandlerTestSuite) TestAddEmergencyContactErrors() {
	recorder := suite.http.MakeRequest(http.MethodPost, "/contacts", "[")
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "")

	suite.mockService.EXPECT().
		AddEmergencyContact(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewValidationError("email", "is required for the email channel"))
	recorder = suite.http.MakeRequest(http.MethodPost, "/contacts", map[string]interface{}{
		"owner_id": "worker-42",
		"channels": []string{"email"},
	})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "email")

	suite.mockService.EXPECT().
		AddEmergencyContact(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("failed to create emergency contact: disk full"))
	recorder = suite.http.MakeRequest(http.MethodPost, "/contacts", map[string]interface{}{"owner_id": "worker-42"})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "disk full")
}

func (suite *ContactHandlerTestSuite) TestListContacts() {
	contacts := []service.EmergencyContactResponse{
		{ID: uuid.New(), OwnerID: "client-7", Name: "A", IsPrimary: true, Channels: []models.Channel{models.ChannelPush}, Active: true},
		{ID: uuid.New(), OwnerID: "client-7", Name: "B", Channels: []models.Channel{models.ChannelSMS}, Active: false},
	}
	suite.mockService.EXPECT().ListContacts(gomock.Any(), "client-7", false).Return(contacts[:1], nil)
	suite.mockService.EXPECT().ListContacts(gomock.Any(), "client-7", true).Return(contacts, nil)

	var response []service.EmergencyContactResponse
	testutils.AssertJSONResponse(suite.T(), suite.http.MakeRequest(http.MethodGet, "/subjects/client-7/contacts", nil), http.StatusOK, &response)
	suite.Len(response, 1)

	testutils.AssertJSONResponse(suite.T(), suite.http.MakeRequest(http.MethodGet, "/subjects/client-7/contacts?include_inactive=true", nil), http.StatusOK, &response)
	suite.Len(response, 2)

	recorder := suite.http.MakeRequest(http.MethodGet, "/subjects/client-7/contacts?include_inactive=maybe", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "include_inactive")
}

func (suite *ContactHandlerTestSuite) TestDeactivateContact() {
	id := uuid.New()
	suite.mockService.EXPECT().DeactivateContact(gomock.Any(), id).Return(nil)

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), suite.http.MakeRequest(http.MethodDelete, "/contacts/"+id.String(), nil), http.StatusOK, &response)
	suite.Equal("Contact deactivated successfully", response["message"])
}

func (suite *ContactHandlerTestSuite) TestDeactivateContactErrors() {
	testutils.AssertErrorResponse(suite.T(), suite.http.MakeRequest(http.MethodDelete, "/contacts/123", nil), http.StatusBadRequest, "Invalid contact ID")

	id := uuid.New()
	suite.mockService.EXPECT().DeactivateContact(gomock.Any(), id).Return(apperrors.ErrEmergencyContactNotFound)
	testutils.AssertErrorResponse(suite.T(), suite.http.MakeRequest(http.MethodDelete, "/contacts/"+id.String(), nil), http.StatusNotFound, "emergency contact not found")
}

func TestContactHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ContactHandlerTestSuite))
}
