package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"masterserver/adapters/memory"
	"masterserver/api"
	"masterserver/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newStack wires handlers the way cmd/masterserver does, on an in-memory registry.
func newStack(t *testing.T) (*echo.Echo, *memory.Registry) {
	t.Helper()
	clock := service.NewTimeProvider(func() time.Time { return testNow })
	registry := memory.NewRegistry(0, clock, log.NewNopLogger())

	doc, err := api.GetSwagger()
	require.NoError(t, err)
	validator, err := service.NewOpenAPIValidator(doc)
	require.NoError(t, err)

	e := echo.New()
	service.RegisterErrorHandler(e, log.NewNopLogger())
	e.Use(validator)
	RegisterHandlers(e, NewHTTPServer(registry, clock, log.NewNopLogger()))
	return e, registry
}

func do(e *echo.Echo, method, target, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func list(t *testing.T, e *echo.Echo) ServerListResponse {
	t.Helper()
	rec := do(e, http.MethodGet, "/", "10.9.9.9:1000")
	require.Equal(t, http.StatusOK, rec.Code)
	var out ServerListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func TestRoundTrip_AnnounceListWithdraw(t *testing.T) {
	e, _ := newStack(t)

	rec := do(e, http.MethodPost, "/?name=alpha&port=4000&active=True", "10.0.0.1:50000")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ServerListResponse{{Name: "alpha", Host: "10.0.0.1", Port: 4000}}, list(t, e))

	// Same key from a different source port of the same host.
	rec = do(e, http.MethodPost, "/?name=alpha&port=4000&active=False", "10.0.0.1:50001")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, list(t, e))

	// Withdrawing again is still a success.
	rec = do(e, http.MethodPost, "/?name=alpha&port=4000&active=False", "10.0.0.1:50002")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoundTrip_IdempotentAnnounce(t *testing.T) {
	e, _ := newStack(t)

	do(e, http.MethodPost, "/?name=alpha&port=4000&active=True", "10.0.0.1:50000")
	once := list(t, e)
	do(e, http.MethodPost, "/?name=alpha&port=4000&active=True", "10.0.0.1:50000")
	assert.Equal(t, once, list(t, e))
}

func TestRoundTrip_LastAnnounceNamesTheKey(t *testing.T) {
	e, _ := newStack(t)

	do(e, http.MethodPost, "/?name=alpha&port=4000&active=True", "10.0.0.1:50000")
	do(e, http.MethodPost, "/?name=omega&port=4000&active=True", "10.0.0.1:50000")
	do(e, http.MethodPost, "/?name=alpha&port=4000&active=True", "10.0.0.2:50000")

	got := list(t, e)
	assert.ElementsMatch(t, ServerListResponse{
		{Name: "omega", Host: "10.0.0.1", Port: 4000},
		{Name: "alpha", Host: "10.0.0.2", Port: 4000},
	}, got)
}

func TestRoundTrip_RejectionWithoutMutation(t *testing.T) {
	e, _ := newStack(t)
	do(e, http.MethodPost, "/?name=alpha&port=4000&active=True", "10.0.0.1:50000")
	before := list(t, e)

	for _, target := range []string{
		"/?name=beta&active=True",
		"/?name=beta&port=abc&active=True",
		"/?name=beta&port=99999&active=True",
		"/?name=&port=4001&active=True",
		"/?name=beta&port=4001",
		"/?name=beta&port=4001&active=maybe",
		"/?name=alpha&port=4000&active=False&x=1;y=2",
	} {
		rec := do(e, http.MethodPost, target, "10.0.0.1:50000")
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		var body service.ErrResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body), target)
		require.NotNil(t, body.Error, target)
		assert.Equal(t, service.ErrBadParameter, body.Error.Code, target)
	}

	assert.Equal(t, before, list(t, e))
}

func TestRoundTrip_ConcurrentDisjointAnnounces(t *testing.T) {
	e, registry := newStack(t)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			target := fmt.Sprintf("/?name=server-%d&port=%d&active=True", i, 4000+i)
			rec := do(e, http.MethodPost, target, fmt.Sprintf("10.0.0.%d:50000", i+1))
			assert.Equal(t, http.StatusOK, rec.Code)
		}(i)
	}
	wg.Wait()

	assert.Len(t, list(t, e), 100)
	assert.Equal(t, 100, registry.Len())
}

func TestRoundTrip_UnknownRoute(t *testing.T) {
	e, _ := newStack(t)
	assert.Equal(t, http.StatusNotFound, do(e, http.MethodGet, "/servers", "10.0.0.1:50000").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(e, http.MethodPut, "/", "10.0.0.1:50000").Code)
}
