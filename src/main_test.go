package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ftm/src/clock"
	"ftm/src/models"
	"ftm/src/store"
	"ftm/src/types"
	"ftm/src/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/tidwall/gjson"
)

const (
	testKey    = "test-workspace-key"
	testHeader = "X-Workspace-Key"
)

type TestSuite struct {
	suite.Suite
	Router    *gin.Engine
	Workspace *models.Workspace
}

func (s *TestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	registerValidators()
}

func (s *TestSuite) SetupTest() {
	store.Use(store.NewMemory())
	clk = clock.NewFixed(time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC))

	ws := utils.NewWorkspace(&types.CreateWorkspaceRequestBody{
		Type: types.WORKSPACE_FTM,
		Key:  testKey,
	}, time.Now())
	err := store.Current().Workspaces().Create(s.T().Context(), ws)
	s.Require().Nil(err)
	s.Workspace = ws

	router := setupRouter()
	publicRoutes(router)
	tenantRoutes(router)
	s.Router = router
}

func (s *TestSuite) request(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, _ := http.NewRequest(method, target, reader)
	req.Header.Set(testHeader, testKey)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

func (s *TestSuite) createEvent() gjson.Result {
	// A team outside the stock catalog, so the caller-supplied seat types
	// seed the tickets.
	body := map[string]any{
		"teamId":   "rockies",
		"opponent": "Lakers",
		"date":     "2030-11-02",
		"time":     "19:00",
		"seatTypes": []map[string]any{
			{"name": "Club Level 1", "value": 350},
			{"name": "Club Level 2", "value": 350},
		},
	}
	raw, _ := json.Marshal(body)
	w := s.request("POST", "/api/v1/events", string(raw))
	s.Require().Equal(http.StatusCreated, w.Code)
	return gjson.Get(w.Body.String(), "data")
}

func (s *TestSuite) TestPingRoute() {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	s.Router.ServeHTTP(w, req)
	assert.Equal(s.T(), 200, w.Code)
}

func (s *TestSuite) TestMaintenanceMode() {
	s.T().Setenv("MAINTENANCE_MODE", "true")

	router := setupRouter()
	router = maintenanceModeMiddleware(router)
	apiv1Group(router)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1", nil)
	router.ServeHTTP(w, req)
	assert.Equal(s.T(), 503, w.Code)
}

func (s *TestSuite) TestWorkspaceKeyRequired() {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/events", nil)
	s.Router.ServeHTTP(w, req)
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/v1/events", nil)
	req.Header.Set(testHeader, "wrong-key")
	s.Router.ServeHTTP(w, req)
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
}

func (s *TestSuite) TestCreateWorkspaceDuplicateKey() {
	body := fmt.Sprintf(`{"type":"ftm","key":"%s"}`, testKey)
	req, _ := http.NewRequest("POST", "/api/v1/workspaces", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	assert.Equal(s.T(), http.StatusConflict, w.Code)
}

func (s *TestSuite) TestCreateWorkspaceBadKey() {
	req, _ := http.NewRequest("POST", "/api/v1/workspaces", strings.NewReader(`{"type":"ftm","key":"X!"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

func (s *TestSuite) TestEventCreationSeedsTickets() {
	event := s.createEvent()
	assert.Equal(s.T(), "Lakers", event.Get("opponent").String())
	tickets := event.Get("tickets").Array()
	assert.Len(s.T(), tickets, 2)
	for _, t := range tickets {
		assert.Empty(s.T(), t.Get("assignedTo").String())
		assert.Zero(s.T(), t.Get("price").Float())
	}
}

func (s *TestSuite) TestEventListing() {
	s.createEvent()

	w := s.request("GET", "/api/v1/events", "")
	assert.Equal(s.T(), 200, w.Code)
	data := gjson.Get(w.Body.String(), "data").Array()
	assert.Len(s.T(), data, 1)
	assert.NotNil(s.T(), data[0].Get("stats"))
	assert.Equal(s.T(), int64(2), data[0].Get("stats.totalTickets").Int())

	w = s.request("GET", "/api/v1/events?search=nobody", "")
	assert.Equal(s.T(), 200, w.Code)
	assert.Len(s.T(), gjson.Get(w.Body.String(), "data").Array(), 0)
}

func (s *TestSuite) TestAssignmentConfirmRecordsHistory() {
	event := s.createEvent()
	eventId := event.Get("id").String()
	ticketId := event.Get("tickets.0.id").String()

	patch := `{"assignedTo":"Jordan Smith","assignedCompany":"Acme","assignmentType":"sold","confirmed":true,"status":"confirmed"}`
	w := s.request("PATCH", fmt.Sprintf("/api/v1/events/%s/tickets/%s/assignment", eventId, ticketId), patch)
	assert.Equal(s.T(), 200, w.Code)

	ticket := gjson.Get(w.Body.String(), "data")
	assert.Equal(s.T(), float64(350), ticket.Get("price").Float())
	assert.True(s.T(), ticket.Get("confirmed").Bool())

	// The confirmed assignment lands in the person directory.
	w = s.request("GET", "/api/v1/people", "")
	assert.Equal(s.T(), 200, w.Code)
	people := gjson.Get(w.Body.String(), "data").Array()
	s.Require().Len(people, 1)
	assert.Equal(s.T(), "Jordan Smith", people[0].Get("name").String())
	history := people[0].Get("assignmentHistory").Array()
	s.Require().Len(history, 1)
	assert.Equal(s.T(), eventId, history[0].Get("eventId").String())
	assert.Equal(s.T(), float64(350), history[0].Get("price").Float())
}

func (s *TestSuite) TestAssignmentRepatchKeepsSingleHistoryEntry() {
	event := s.createEvent()
	eventId := event.Get("id").String()
	ticketId := event.Get("tickets.0.id").String()

	patch := `{"assignedTo":"Jordan Smith","assignmentType":"sold","confirmed":true,"status":"confirmed"}`
	w := s.request("PATCH", fmt.Sprintf("/api/v1/events/%s/tickets/%s/assignment", eventId, ticketId), patch)
	s.Require().Equal(200, w.Code)

	// A later edit of the already-confirmed assignment must not append a
	// second history entry.
	w = s.request("PATCH", fmt.Sprintf("/api/v1/events/%s/tickets/%s/assignment", eventId, ticketId), `{"parking":true}`)
	s.Require().Equal(200, w.Code)
	assert.True(s.T(), gjson.Get(w.Body.String(), "data.confirmed").Bool())

	w = s.request("GET", "/api/v1/people", "")
	s.Require().Equal(200, w.Code)
	people := gjson.Get(w.Body.String(), "data").Array()
	s.Require().Len(people, 1)
	assert.Len(s.T(), people[0].Get("assignmentHistory").Array(), 1)
}

func (s *TestSuite) TestAssignmentUnknownTicket() {
	event := s.createEvent()
	eventId := event.Get("id").String()

	w := s.request("PATCH", fmt.Sprintf("/api/v1/events/%s/tickets/no-such-ticket/assignment", eventId), `{"assignedTo":"X"}`)
	assert.Equal(s.T(), http.StatusNotFound, w.Code)
}

func (s *TestSuite) TestRequestDuplicateGuard() {
	event := s.createEvent()
	body := fmt.Sprintf(`{"eventId":"%s","userId":"u-1","userName":"Jordan Smith","priority":"want"}`, event.Get("id").String())

	w := s.request("POST", "/api/v1/requests", body)
	assert.Equal(s.T(), http.StatusCreated, w.Code)

	w = s.request("POST", "/api/v1/requests", body)
	assert.Equal(s.T(), http.StatusConflict, w.Code)
}

func (s *TestSuite) TestRequestStatusTransition() {
	event := s.createEvent()
	body := fmt.Sprintf(`{"eventId":"%s","userId":"u-1","userName":"Jordan Smith","priority":"need"}`, event.Get("id").String())

	w := s.request("POST", "/api/v1/requests", body)
	s.Require().Equal(http.StatusCreated, w.Code)
	requestId := gjson.Get(w.Body.String(), "data.id").String()

	w = s.request("PATCH", fmt.Sprintf("/api/v1/requests/%s/status", requestId), `{"status":"approved","processedBy":"admin"}`)
	assert.Equal(s.T(), 200, w.Code)
	assert.Equal(s.T(), "approved", gjson.Get(w.Body.String(), "data.status").String())

	// Terminal states reject further transitions.
	w = s.request("PATCH", fmt.Sprintf("/api/v1/requests/%s/status", requestId), `{"status":"denied","processedBy":"admin"}`)
	assert.Equal(s.T(), http.StatusConflict, w.Code)
}

func (s *TestSuite) TestAnalyticsEndpoints() {
	event := s.createEvent()
	eventId := event.Get("id").String()
	ticketId := event.Get("tickets.0.id").String()

	patch := `{"assignedTo":"Jordan Smith","assignmentType":"sold","confirmed":true,"status":"confirmed"}`
	w := s.request("PATCH", fmt.Sprintf("/api/v1/events/%s/tickets/%s/assignment", eventId, ticketId), patch)
	s.Require().Equal(200, w.Code)

	w = s.request("GET", "/api/v1/analytics/revenue", "")
	assert.Equal(s.T(), 200, w.Code)
	assert.Equal(s.T(), float64(350), gjson.Get(w.Body.String(), "data.confirmedRevenue").Float())

	w = s.request("GET", "/api/v1/analytics/breakdown", "")
	assert.Equal(s.T(), 200, w.Code)
	assert.Equal(s.T(), int64(1), gjson.Get(w.Body.String(), "data.sold.count").Int())
	assert.Equal(s.T(), float64(50), gjson.Get(w.Body.String(), "data.sold.percentage").Float())

	w = s.request("GET", "/api/v1/analytics/events", "")
	assert.Equal(s.T(), 200, w.Code)
	assert.Equal(s.T(), int64(1), gjson.Get(w.Body.String(), "data.totalEvents").Int())
}

func (s *TestSuite) TestCSVExport() {
	s.createEvent()

	w := s.request("GET", "/api/v1/export/events", "")
	assert.Equal(s.T(), 200, w.Code)
	assert.Contains(s.T(), w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(s.T(), w.Body.String(), "opponent")

	w = s.request("GET", "/api/v1/export/nonsense", "")
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

func (s *TestSuite) TestCrossWorkspaceEventIsolation() {
	event := s.createEvent()
	eventId := event.Get("id").String()

	otherKey := "other-workspace-key"
	other := utils.NewWorkspace(&types.CreateWorkspaceRequestBody{
		Type: types.WORKSPACE_FTM,
		Key:  otherKey,
	}, time.Now())
	s.Require().Nil(store.Current().Workspaces().Create(s.T().Context(), other))

	// Another tenant holding the event id gets a 404, for reads and deletes.
	for _, method := range []string{"GET", "DELETE"} {
		req, _ := http.NewRequest(method, fmt.Sprintf("/api/v1/events/%s", eventId), nil)
		req.Header.Set(testHeader, otherKey)
		w := httptest.NewRecorder()
		s.Router.ServeHTTP(w, req)
		assert.Equal(s.T(), http.StatusNotFound, w.Code)
	}

	w := s.request("GET", fmt.Sprintf("/api/v1/events/%s", eventId), "")
	assert.Equal(s.T(), 200, w.Code)
}

func (s *TestSuite) TestWorkspaceUpdate() {
	w := s.request("PATCH", "/api/v1/workspace", `{"organizationName":"Globex Corp"}`)
	assert.Equal(s.T(), 200, w.Code)
	assert.Equal(s.T(), "globex-corp", gjson.Get(w.Body.String(), "data.slug").String())
}

func TestSuiteRun(t *testing.T) {
	suite.Run(t, new(TestSuite))
}
