package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/mrlokans/studygroups/internal/api"
	"github.com/mrlokans/studygroups/internal/entities"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestParseIDParam_Valid(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "123"}}

	id, ok := parseIDParam(c, "id")

	assert.True(t, ok)
	assert.Equal(t, uint(123), id)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestParseIDParam_Invalid(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	id, ok := parseIDParam(c, "id")

	assert.False(t, ok)
	assert.Equal(t, uint(0), id)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid id"}`, w.Body.String())
}

func TestParseIDParam_Negative(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "-1"}}

	id, ok := parseIDParam(c, "id")

	assert.False(t, ok)
	assert.Equal(t, uint(0), id)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		query    string
		expected int
	}{
		{"", 25},
		{"limit=10", 10},
		{"limit=0", 25},
		{"limit=101", 25},
		{"limit=abc", 25},
		{"limit=100", 100},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/?"+tt.query, nil)

			assert.Equal(t, tt.expected, parseLimit(c, 25, 100))
		})
	}
}

func TestRespondEnvelope(t *testing.T) {
	tests := []struct {
		name     string
		resp     api.Response
		err      error
		status   int
		body     string
		accepted bool
	}{
		{
			name:     "entity body",
			resp:     api.Response{Body: entities.NewUser(1, "alice").Serialize(), Status: http.StatusCreated},
			status:   http.StatusCreated,
			body:     `{"id":1,"username":"alice"}`,
			accepted: true,
		},
		{
			name:     "success message",
			resp:     api.Response{Body: "User with ID 1 successfully deleted", Status: http.StatusOK},
			status:   http.StatusOK,
			body:     `{"message":"User with ID 1 successfully deleted"}`,
			accepted: true,
		},
		{
			name:   "error message",
			resp:   api.Response{Body: "Could not find user with ID 1", Status: http.StatusNotFound},
			status: http.StatusNotFound,
			body:   `{"error":"Could not find user with ID 1"}`,
		},
		{
			name:   "conflict message",
			resp:   api.Response{Body: "Deck deleted before update could be completed - gone", Status: http.StatusConflict},
			status: http.StatusConflict,
			body:   `{"error":"Deck deleted before update could be completed - gone"}`,
		},
		{
			name:   "unknown error",
			err:    &api.UnknownOperationError{Op: "getting user from database", Err: errors.New("boom")},
			status: http.StatusInternalServerError,
			body:   `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			accepted := respondEnvelope(c, tt.resp, tt.err, "test")

			assert.Equal(t, tt.accepted, accepted)
			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}

func TestBindPatch(t *testing.T) {
	type patch struct {
		Name *string `json:"name"`
	}

	t.Run("empty body", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("PATCH", "/", strings.NewReader(""))
		c.Request.Header.Set("Content-Type", "application/json")

		var req patch
		assert.True(t, bindPatch(c, &req))
		assert.Nil(t, req.Name)
	})

	t.Run("field present", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("PATCH", "/", strings.NewReader(`{"name":"x"}`))

		var req patch
		assert.True(t, bindPatch(c, &req))
		if assert.NotNil(t, req.Name) {
			assert.Equal(t, "x", *req.Name)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("PATCH", "/", strings.NewReader(`{"name":`))

		var req patch
		assert.False(t, bindPatch(c, &req))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
