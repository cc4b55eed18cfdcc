package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"masterserver/api"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidatedEcho(t *testing.T) *echo.Echo {
	t.Helper()
	doc, err := api.GetSwagger()
	require.NoError(t, err)
	validator, err := NewOpenAPIValidator(doc)
	require.NoError(t, err)

	e := echo.New()
	RegisterErrorHandler(e, log.NewNopLogger())
	e.Use(validator)
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	e.GET("/", ok)
	e.POST("/", ok)
	e.GET("/healthz", ok)
	return e
}

func TestNewOpenAPIValidator_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "service.validator.go: openapi document is required", func() {
		_, _ = NewOpenAPIValidator(nil)
	})
}

func TestOpenAPIValidator(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		target         string
		expectedStatus int
		expectedCode   string
	}{
		{name: "list", method: http.MethodGet, target: "/", expectedStatus: http.StatusOK},
		{name: "health", method: http.MethodGet, target: "/healthz", expectedStatus: http.StatusOK},
		{name: "announce active", method: http.MethodPost, target: "/?name=alpha&port=4000&active=True", expectedStatus: http.StatusOK},
		{name: "announce withdraw lowercase", method: http.MethodPost, target: "/?name=alpha&port=4000&active=false", expectedStatus: http.StatusOK},
		{name: "missing port", method: http.MethodPost, target: "/?name=alpha&active=True", expectedStatus: http.StatusBadRequest, expectedCode: ErrBadParameter},
		{name: "missing name", method: http.MethodPost, target: "/?port=4000&active=True", expectedStatus: http.StatusBadRequest, expectedCode: ErrBadParameter},
		{name: "empty name", method: http.MethodPost, target: "/?name=&port=4000&active=True", expectedStatus: http.StatusBadRequest, expectedCode: ErrBadParameter},
		{name: "non numeric port", method: http.MethodPost, target: "/?name=alpha&port=abc&active=True", expectedStatus: http.StatusBadRequest, expectedCode: ErrBadParameter},
		{name: "port out of range", method: http.MethodPost, target: "/?name=alpha&port=70000&active=True", expectedStatus: http.StatusBadRequest, expectedCode: ErrBadParameter},
		{name: "port zero", method: http.MethodPost, target: "/?name=alpha&port=0&active=True", expectedStatus: http.StatusBadRequest, expectedCode: ErrBadParameter},
		{name: "unknown active token", method: http.MethodPost, target: "/?name=alpha&port=4000&active=yes", expectedStatus: http.StatusBadRequest, expectedCode: ErrBadParameter},
		{name: "unknown path", method: http.MethodGet, target: "/servers", expectedStatus: http.StatusNotFound, expectedCode: ErrEntityNotFound},
		{name: "method not allowed", method: http.MethodDelete, target: "/", expectedStatus: http.StatusMethodNotAllowed, expectedCode: ErrBadParameter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newValidatedEcho(t)
			req := httptest.NewRequest(tt.method, tt.target, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				var body ErrResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				require.NotNil(t, body.Error)
				assert.Equal(t, tt.expectedCode, body.Error.Code)
				assert.NotEmpty(t, body.Error.Message)
			}
		})
	}
}
