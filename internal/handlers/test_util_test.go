package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/skillup-platform/skillup-api/internal/models"
	"github.com/skillup-platform/skillup-api/internal/store"
	"github.com/skillup-platform/skillup-api/internal/utils"
)

type fakeIntentCreator struct {
	lastPrice    float64
	clientSecret string
	err          error
}

func (f *fakeIntentCreator) CreateChargeIntent(price float64) (string, error) {
	f.lastPrice = price
	if f.err != nil {
		return "", f.err
	}
	return f.clientSecret, nil
}

func newTestEnv(t *testing.T) (*gin.Engine, *store.Store, *fakeIntentCreator) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	s := store.NewMemoryStore()
	fake := &fakeIntentCreator{clientSecret: "pi_test_secret_abc"}
	h := NewHandler(s, fake)

	r := gin.New()
	h.SetupRoutes(r)
	return r, s, fake
}

func seedUser(t *testing.T, s *store.Store, email, role string) {
	t.Helper()
	_, err := s.Users.Insert(context.Background(), models.User{
		Name:  "Test User",
		Email: email,
		Role:  role,
	})
	require.NoError(t, err)
}

func bearerToken(t *testing.T, email string) string {
	t.Helper()
	token, err := utils.GenerateJWT(map[string]interface{}{"email": email})
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(t *testing.T, r *gin.Engine, method, path, authorization string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	return list
}
