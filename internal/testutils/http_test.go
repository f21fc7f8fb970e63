package testutils

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHTTPHelpers(t *testing.T) {
	httpSuite := SetupHTTPTest()
	httpSuite.Router.GET("/booking", func(c *gin.Context) {
		c.JSON(http.StatusOK, BookingBody{
			ID:              7,
			StartDateTime:   "2023-11-23T10:00:00",
			EndDateTime:     "2023-11-23T14:00:00",
			DurationHours:   4,
			TeamID:          1,
			CrewMemberNames: []string{"Cleaner 1-1"},
			CustomerName:    "Jane Doe",
		})
	})
	httpSuite.Router.POST("/echo-header", func(c *gin.Context) {
		var body map[string]string
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, ErrorBody{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"header": c.GetHeader("X-Request-ID"), "name": body["name"]})
	})
	httpSuite.Router.OPTIONS("/empty", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	t.Run("booking body", func(t *testing.T) {
		recorder := httpSuite.MakeRequest(http.MethodGet, "/booking", nil)

		body := AssertBookingResponse(t, recorder, http.StatusOK)
		assert.Equal(t, uint(7), body.ID)
		assert.Equal(t, "Jane Doe", body.CustomerName)
	})

	t.Run("json body and headers", func(t *testing.T) {
		recorder := httpSuite.MakeRequestWithHeaders(http.MethodPost, "/echo-header",
			map[string]string{"name": "Amal"}, map[string]string{"X-Request-ID": "req-1"})

		var body map[string]string
		AssertJSONResponse(t, recorder, http.StatusOK, &body)
		assert.Equal(t, "req-1", body["header"])
		assert.Equal(t, "Amal", body["name"])
	})

	t.Run("malformed json", func(t *testing.T) {
		recorder := httpSuite.MakeRawRequest(http.MethodPost, "/echo-header", "{")

		body := AssertErrorResponse(t, recorder, http.StatusBadRequest, "")
		assert.NotEmpty(t, body.Error)
	})

	t.Run("empty response", func(t *testing.T) {
		recorder := httpSuite.MakeRequest(http.MethodOptions, "/empty", nil)

		AssertEmptyResponse(t, recorder, http.StatusNoContent)
	})
}
