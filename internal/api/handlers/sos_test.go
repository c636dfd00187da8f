package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

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

// SOSHandlerTestSuite defines the test suite for SOSHandler
type SOSHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockSOSServiceInterface
	http        *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *SOSHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockSOSServiceInterface(suite.ctrl)
	suite.http = testutils.SetupHTTPTest()

	handler := handlers.NewSOSHandler(suite.mockService)
	router := suite.http.Router
	router.POST("/sos", handler.Activate)
	router.GET("/sos/:id", handler.GetEvent)
	router.POST("/sos/:id/resolve", handler.Resolve)
	router.POST("/sos/:id/escalate", handler.Escalate)
	router.POST("/sos/:id/notifications/:notificationId/ack", handler.Acknowledge)
	router.GET("/subjects/:subjectId/sos", handler.ListBySubject)
	router.POST("/subjects/:subjectId/emergency-test", handler.EmergencyTest)
}

// TearDownTest cleans up after each test
func (suite *SOSHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func sampleEvent(id uuid.UUID, status models.SOSStatus, tier models.EscalationTier) *service.SOSEventResponse {
	return &service.SOSEventResponse{
		ID:              id,
		SubjectID:       "worker-42",
		SubjectRole:     models.SubjectRoleWorker,
		Status:          status,
		Tier:            tier,
		Location:        models.UnavailableLocation(),
		CreatedAt:       time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
		NotificationLog: []models.NotificationRecord{},
	}
}

func (suite *SOSHandlerTestSuite) TestActivate() {
	id := uuid.New()
	suite.mockService.EXPECT().
		Activate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *service.ActivateSOSRequest) (uuid.UUID, error) {
			suite.Equal("worker-42", req.SubjectID)
			suite.Equal(models.SubjectRoleWorker, req.SubjectRole)
			return id, nil
		})
	suite.mockService.EXPECT().GetEvent(gomock.Any(), id).Return(sampleEvent(id, models.SOSStatusActive, models.TierInitial), nil)

	recorder := suite.http.MakeRequest(http.MethodPost, "/sos", map[string]interface{}{
		"subject_id":   "worker-42",
		"subject_role": "worker",
	})

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.Equal(id.String(), response["id"])
	suite.Equal("active", response["status"])
	suite.Equal("initial", response["tier"])
	suite.Equal([]interface{}{}, response["notification_log"])
}

func (suite *SOSHandlerTestSuite) TestActivateReadBackFailureStillCreated() {
	id := uuid.New()
	suite.mockService.EXPECT().Activate(gomock.Any(), gomock.Any()).Return(id, nil)
	suite.mockService.EXPECT().GetEvent(gomock.Any(), id).Return(nil, errors.New("db hiccup"))

	recorder := suite.http.MakeRequest(http.MethodPost, "/sos", map[string]interface{}{
		"subject_id":   "client-7",
		"subject_role": "client",
	})

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.Equal(id.String(), response["id"])
}

func (suite *SOSHandlerTestSuite) TestActivateErrors() {
	testCases := []struct {
		name           string
		body           interface{}
		serviceErr     error
		expectCall     bool
		expectedStatus int
	}{
		{name: "malformed json", body: "{", expectedStatus: http.StatusBadRequest},
		{name: "validation", body: map[string]string{"subject_role": "visitor"}, serviceErr: apperrors.NewValidationError("subject_role", "invalid"), expectCall: true, expectedStatus: http.StatusBadRequest},
		{name: "store down", body: map[string]string{"subject_id": "w", "subject_role": "worker"}, serviceErr: apperrors.NewPersistenceError("create", errors.New("connection refused")), expectCall: true, expectedStatus: http.StatusServiceUnavailable},
		{name: "unexpected", body: map[string]string{"subject_id": "w", "subject_role": "worker"}, serviceErr: errors.New("boom"), expectCall: true, expectedStatus: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			if tc.expectCall {
				suite.mockService.EXPECT().Activate(gomock.Any(), gomock.Any()).Return(uuid.Nil, tc.serviceErr)
			}
			recorder := suite.http.MakeRequest(http.MethodPost, "/sos", tc.body)
			testutils.AssertErrorResponse(suite.T(), recorder, tc.expectedStatus, "")
		})
	}
}

func (suite *SOSHandlerTestSuite) TestGetEvent() {
	id := uuid.New()
	suite.mockService.EXPECT().GetEvent(gomock.Any(), id).Return(sampleEvent(id, models.SOSStatusResponding, models.TierSupervisor), nil)

	var response service.SOSEventResponse
	testutils.AssertJSONResponse(suite.T(), suite.http.MakeRequest(http.MethodGet, "/sos/"+id.String(), nil), http.StatusOK, &response)
	suite.Equal(id, response.ID)
	suite.Equal(models.TierSupervisor, response.Tier)
	suite.Equal(models.SOSStatusResponding, response.Status)
}

func (suite *SOSHandlerTestSuite) TestGetEventErrors() {
	recorder := suite.http.MakeRequest(http.MethodGet, "/sos/not-a-uuid", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid SOS event ID")

	id := uuid.New()
	suite.mockService.EXPECT().GetEvent(gomock.Any(), id).Return(nil, apperrors.ErrSOSEventNotFound)
	recorder = suite.http.MakeRequest(http.MethodGet, "/sos/"+id.String(), nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "SOS event not found")
}

func (suite *SOSHandlerTestSuite) TestListBySubject() {
	suite.mockService.EXPECT().
		ListBySubject(gomock.Any(), "worker-42", 5, 10).
		Return(&service.SOSEventListResponse{Events: []service.SOSEventResponse{}, Total: 12, Limit: 5, Offset: 10}, nil)

	var response service.SOSEventListResponse
	recorder := suite.http.MakeRequest(http.MethodGet, "/subjects/worker-42/sos?limit=5&offset=10", nil)
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(int64(12), response.Total)
	suite.Equal(5, response.Limit)
}

func (suite *SOSHandlerTestSuite) TestListBySubjectDefaultsAndBadParams() {
	suite.mockService.EXPECT().
		ListBySubject(gomock.Any(), "client-7", 20, 0).
		Return(&service.SOSEventListResponse{Events: []service.SOSEventResponse{}, Limit: 20}, nil)
	suite.Equal(http.StatusOK, suite.http.MakeRequest(http.MethodGet, "/subjects/client-7/sos", nil).Code)

	suite.http.RunHTTPTestCases(suite.T(), []testutils.HTTPTestCase{
		{Name: "bad limit", Method: http.MethodGet, URL: "/subjects/client-7/sos?limit=abc", ExpectedStatus: http.StatusBadRequest},
		{Name: "bad offset", Method: http.MethodGet, URL: "/subjects/client-7/sos?offset=x", ExpectedStatus: http.StatusBadRequest},
	})
}

func (suite *SOSHandlerTestSuite) TestResolve() {
	id := uuid.New()
	resolved := sampleEvent(id, models.SOSStatusFalseAlarm, models.TierInitial)
	suite.mockService.EXPECT().
		Resolve(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, req *service.ResolveSOSRequest) (*service.SOSEventResponse, error) {
			suite.Equal(models.SOSStatusFalseAlarm, req.Outcome)
			suite.Equal("pocket dial", req.Notes)
			return resolved, nil
		})

	var response service.SOSEventResponse
	recorder := suite.http.MakeRequest(http.MethodPost, "/sos/"+id.String()+"/resolve", map[string]string{
		"outcome": "false_alarm",
		"notes":   "pocket dial",
	})
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(models.SOSStatusFalseAlarm, response.Status)
}

func (suite *SOSHandlerTestSuite) TestResolveErrors() {
	id := uuid.New()

	recorder := suite.http.MakeRequest(http.MethodPost, "/sos/"+id.String()+"/resolve", "not json")
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "")

	suite.mockService.EXPECT().Resolve(gomock.Any(), id, gomock.Any()).Return(nil, apperrors.NewValidationError("outcome", "invalid"))
	recorder = suite.http.MakeRequest(http.MethodPost, "/sos/"+id.String()+"/resolve", map[string]string{"outcome": "active"})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "outcome")

	suite.mockService.EXPECT().Resolve(gomock.Any(), id, gomock.Any()).Return(nil, apperrors.ErrSOSEventNotFound)
	recorder = suite.http.MakeRequest(http.MethodPost, "/sos/"+id.String()+"/resolve", map[string]string{"outcome": "resolved"})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "not found")
}

func (suite *SOSHandlerTestSuite) TestEscalate() {
	id := uuid.New()
	suite.mockService.EXPECT().Escalate(gomock.Any(), id, models.TierEmergencyServices).Return(true, nil)

	var response map[string]interface{}
	recorder := suite.http.MakeRequest(http.MethodPost, "/sos/"+id.String()+"/escalate", map[string]string{"tier": "emergency_services"})
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(true, response["applied"])
	suite.Equal("emergency_services", response["tier"])
}

func (suite *SOSHandlerTestSuite) TestEscalateNotApplied() {
	id := uuid.New()
	suite.mockService.EXPECT().Escalate(gomock.Any(), id, models.TierSupervisor).Return(false, nil)

	var response service.EscalateSOSResponse
	recorder := suite.http.MakeRequest(http.MethodPost, "/sos/"+id.String()+"/escalate", map[string]string{"tier": "Supervisor"})
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.False(response.Applied)
}

func (suite *SOSHandlerTestSuite) TestEscalateErrors() {
	id := uuid.New()

	recorder := suite.http.MakeRequest(http.MethodPost, "/sos/"+id.String()+"/escalate", map[string]string{"tier": "police"})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "unknown escalation tier")

	suite.mockService.EXPECT().Escalate(gomock.Any(), id, models.TierInitial).Return(false, apperrors.NewValidationError("tier", "must be supervisor or emergency_services"))
	recorder = suite.http.MakeRequest(http.MethodPost, "/sos/"+id.String()+"/escalate", map[string]string{"tier": "initial"})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "tier")

	suite.mockService.EXPECT().Escalate(gomock.Any(), id, models.TierSupervisor).Return(false, apperrors.ErrSOSEventNotFound)
	recorder = suite.http.MakeRequest(http.MethodPost, "/sos/"+id.String()+"/escalate", map[string]string{"tier": "supervisor"})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "")
}

func (suite *SOSHandlerTestSuite) TestAcknowledge() {
	id, notificationID := uuid.New(), uuid.New()
	suite.mockService.EXPECT().
		Acknowledge(gomock.Any(), id, notificationID).
		Return(sampleEvent(id, models.SOSStatusResponding, models.TierInitial), nil)

	var response service.SOSEventResponse
	recorder := suite.http.MakeRequest(http.MethodPost, "/sos/"+id.String()+"/notifications/"+notificationID.String()+"/ack", nil)
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(models.SOSStatusResponding, response.Status)
}

func (suite *SOSHandlerTestSuite) TestAcknowledgeErrors() {
	id := uuid.New()

	recorder := suite.http.MakeRequest(http.MethodPost, "/sos/"+id.String()+"/notifications/nope/ack", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid notification ID")

	notificationID := uuid.New()
	suite.mockService.EXPECT().Acknowledge(gomock.Any(), id, notificationID).Return(nil, apperrors.ErrNotificationNotFound)
	recorder = suite.http.MakeRequest(http.MethodPost, "/sos/"+id.String()+"/notifications/"+notificationID.String()+"/ack", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "notification record not found")
}

func (suite *SOSHandlerTestSuite) TestEmergencyTest() {
	suite.mockService.EXPECT().TestEmergencySystem(gomock.Any(), "worker-42").Return(true, nil)
	suite.mockService.EXPECT().TestEmergencySystem(gomock.Any(), "worker-43").Return(false, nil)

	var response handlers.EmergencyTestResponse
	testutils.AssertJSONResponse(suite.T(), suite.http.MakeRequest(http.MethodPost, "/subjects/worker-42/emergency-test", nil), http.StatusOK, &response)
	suite.True(response.Delivered)

	testutils.AssertJSONResponse(suite.T(), suite.http.MakeRequest(http.MethodPost, "/subjects/worker-43/emergency-test", nil), http.StatusOK, &response)
	suite.False(response.Delivered)
}

func (suite *SOSHandlerTestSuite) TestEmergencyTestLookupFailure() {
	suite.mockService.EXPECT().TestEmergencySystem(gomock.Any(), "worker-42").Return(false, errors.New("failed to get emergency contacts: timeout"))

	recorder := suite.http.MakeRequest(http.MethodPost, "/subjects/worker-42/emergency-test", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "timeout")
}

func TestSOSHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SOSHandlerTestSuite))
}
