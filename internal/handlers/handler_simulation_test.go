package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"banksim/internal/core/ports"
	"banksim/internal/dto"
	"banksim/internal/handlers"
	"banksim/internal/middleware"
)

// --- Mock SimulationRunner ---
type MockSimulationRunner struct {
	mock.Mock
}

func (m *MockSimulationRunner) Run(ctx context.Context, req dto.SimulationRequest) []dto.Response {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]dto.Response)
}

// Ensure mock implements the interface
var _ ports.SimulationRunner = (*MockSimulationRunner)(nil)

// --- Test Suite ---
type SimulationHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockRunner *MockSimulationRunner
}

func (suite *SimulationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))))

	suite.mockRunner = new(MockSimulationRunner)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterSimulationRoutes(v1, suite.mockRunner)
}

func (suite *SimulationHandlerTestSuite) postJSON(body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/simulations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)
	return recorder
}

// --- Test Cases ---

func (suite *SimulationHandlerTestSuite) TestRunSimulationSuccess() {
	request := dto.SimulationRequest{
		Users: []dto.UserSeed{
			{FirstName: "Ada", LastName: "Lovelace", Email: "ada@mail.com"},
		},
		Commands: []dto.Command{
			{Command: "printUsers", Timestamp: 1},
		},
	}
	expected := []dto.Response{
		{Command: "printUsers", Timestamp: 1, Output: []any{}},
	}
	suite.mockRunner.On("Run", mock.Anything, mock.MatchedBy(func(req dto.SimulationRequest) bool {
		return len(req.Users) == 1 && req.Users[0].Email == "ada@mail.com"
	})).Return(expected).Once()

	body, err := json.Marshal(request)
	suite.Require().NoError(err)

	recorder := suite.postJSON(body)

	suite.Equal(http.StatusOK, recorder.Code)
	var got []dto.Response
	suite.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &got))
	suite.Len(got, 1)
	suite.Equal("printUsers", got[0].Command)
	suite.Equal(int64(1), got[0].Timestamp)
	suite.mockRunner.AssertExpectations(suite.T())
}

func (suite *SimulationHandlerTestSuite) TestRunSimulationMissingUsers() {
	recorder := suite.postJSON([]byte(`{"commands": [{"command": "printUsers", "timestamp": 1}]}`))

	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Contains(recorder.Body.String(), "error")
	suite.mockRunner.AssertNotCalled(suite.T(), "Run")
}

func (suite *SimulationHandlerTestSuite) TestRunSimulationMalformedJSON() {
	recorder := suite.postJSON([]byte(`{"users": [`))

	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Contains(recorder.Body.String(), "error")
	suite.mockRunner.AssertNotCalled(suite.T(), "Run")
}

func TestSimulationHandlerSuite(t *testing.T) {
	suite.Run(t, new(SimulationHandlerTestSuite))
}
