package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"bistro/api/controllers"
	"bistro/api/jwtservice"
	"bistro/api/routes"
	"bistro/api/store/storetest"
)

// fakeIntents stands in for the payment provider and records the requested
// amount.
type fakeIntents struct {
	lastAmount int64
	err        error
}

func (f *fakeIntents) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.lastAmount = amountCents
	return "cs_test_secret", nil
}

type env struct {
	router   *gin.Engine
	jwt      *jwtservice.Service
	users    *storetest.Users
	menu     *storetest.Menu
	reviews  *storetest.Reviews
	carts    *storetest.Carts
	payments *storetest.Payments
	intents  *fakeIntents
}

func newEnv(t *testing.T) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	carts := &storetest.Carts{}
	e := &env{
		jwt:      jwtservice.New("test-secret"),
		users:    &storetest.Users{},
		menu:     &storetest.Menu{},
		reviews:  &storetest.Reviews{},
		carts:    carts,
		payments: &storetest.Payments{Carts: carts},
		intents:  &fakeIntents{},
	}

	h := &controllers.Handler{
		Users:    e.users,
		Menu:     e.menu,
		Reviews:  e.reviews,
		Carts:    e.carts,
		Payments: e.payments,
		Intents:  e.intents,
		JWT:      e.jwt,
		Log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	e.router = gin.New()
	routes.Setup(e.router, h)
	return e
}

func (e *env) tokenFor(t *testing.T, email string) string {
	t.Helper()
	token, err := e.jwt.GenerateJWT(jwt.MapClaims{"email": email})
	require.NoError(t, err)
	return token
}

func (e *env) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func getJSON(t *testing.T, e *env, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	return e.do(t, http.MethodGet, path, token, nil)
}
