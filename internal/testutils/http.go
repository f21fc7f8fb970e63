package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// BookingDateTimeLayout is the wire layout of booking start and end times
const BookingDateTimeLayout = "2006-01-02T15:04:05"

// HTTPTestSuite wraps a bare gin router for handler and middleware tests
type HTTPTestSuite struct {
	Router *gin.Engine
}

// ErrorBody mirrors the {"error": "..."} body every failed request returns
type ErrorBody struct {
	Error string `json:"error"`
}

// BookingBody mirrors the booking JSON returned by the booking endpoints
type BookingBody struct {
	ID              uint     `json:"id"`
	StartDateTime   string   `json:"start_date_time"`
	EndDateTime     string   `json:"end_date_time"`
	DurationHours   int      `json:"duration_hours"`
	TeamID          uint     `json:"team_id"`
	CrewMemberNames []string `json:"crew_member_names"`
	CustomerName    string   `json:"customer_name"`
	CustomerPhone   string   `json:"customer_phone,omitempty"`
}

// SetupHTTPTest initializes Gin for testing
func SetupHTTPTest() *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	return &HTTPTestSuite{Router: gin.New()}
}

// MakeRequest sends body as JSON through the router
func (suite *HTTPTestSuite) MakeRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	return suite.MakeRequestWithHeaders(method, url, body, nil)
}

// MakeRequestWithHeaders sends body as JSON with extra headers
func (suite *HTTPTestSuite) MakeRequestWithHeaders(method, url string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reqBody io.Reader
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewReader(jsonBytes)
	}

	req := httptest.NewRequest(method, url, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)
	return recorder
}

// MakeRawRequest sends payload verbatim, for malformed JSON cases
func (suite *HTTPTestSuite) MakeRawRequest(method, url, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)
	return recorder
}

// AssertJSONResponse asserts the status and content type, then decodes into target
func AssertJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, target interface{}) {
	t.Helper()
	assert.Equal(t, expectedStatus, recorder.Code)
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))

	if target != nil {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), target))
	}
}

// AssertErrorResponse asserts an error body whose message contains expectedMessage
func AssertErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) ErrorBody {
	t.Helper()
	var body ErrorBody
	AssertJSONResponse(t, recorder, expectedStatus, &body)
	assert.NotEmpty(t, body.Error)
	if expectedMessage != "" {
		assert.Contains(t, body.Error, expectedMessage)
	}
	return body
}

// AssertBookingResponse decodes a booking body and checks that its window is
// well formed: both timestamps parse and end minus start matches duration_hours.
func AssertBookingResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int) BookingBody {
	t.Helper()
	var body BookingBody
	AssertJSONResponse(t, recorder, expectedStatus, &body)

	start, err := time.Parse(BookingDateTimeLayout, body.StartDateTime)
	require.NoError(t, err, "start_date_time")
	end, err := time.Parse(BookingDateTimeLayout, body.EndDateTime)
	require.NoError(t, err, "end_date_time")
	assert.Equal(t, time.Duration(body.DurationHours)*time.Hour, end.Sub(start))
	assert.NotEmpty(t, body.CrewMemberNames)
	return body
}

// AssertEmptyResponse asserts a status with no body, as returned by CORS preflight
func AssertEmptyResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int) {
	t.Helper()
	assert.Equal(t, expectedStatus, recorder.Code)
	assert.Zero(t, recorder.Body.Len())
}
