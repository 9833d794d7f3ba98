package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"repair-app/internal/models"
	"repair-app/internal/repository"
	"repair-app/internal/services"
	"repair-app/internal/utils"
)

type fakeStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string][]byte)}
}

func (s *fakeStore) Get(_ context.Context, key string, dest interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	val, ok := s.data[key]
	if !ok {
		return models.ErrNotFound
	}
	return json.Unmarshal(val, dest)
}

func (s *fakeStore) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = data
	return nil
}

func (s *fakeStore) SetMulti(_ context.Context, pairs map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, value := range pairs {
		data, err := json.Marshal(value)
		if err != nil {
			return err
		}
		s.data[key] = data
	}
	return nil
}

func (s *fakeStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *fakeStore) GetByPrefix(_ context.Context, prefix string) ([][]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out [][]byte
	for key, val := range s.data {
		if strings.HasPrefix(key, prefix) {
			out = append(out, val)
		}
	}
	return out, nil
}

func (s *fakeStore) Exists(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.data[key]
	return ok, nil
}

func newLoginRouter() (*gin.Engine, *services.AuthService) {
	gin.SetMode(gin.TestMode)
	store := newFakeStore()
	userRepo := repository.NewUserRepository(store)
	auth := services.NewAuthService(userRepo, utils.NewJWTUtil("test-secret"), store)
	router := gin.New()
	router.POST("/api/login", NewAuthHandler(auth).Login)
	return router, auth
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestLoginBadCredentialsReturns401(t *testing.T) {
	router, auth := newLoginRouter()
	if _, err := auth.Signup(context.Background(), "alice@example.com", "secret1", "Alice", ""); err != nil {
		t.Fatalf("signup: %v", err)
	}

	for _, body := range []string{
		`{"email":"alice@example.com","password":"wrong66"}`,
		`{"email":"nobody@example.com","password":"secret1"}`,
	} {
		if w := postJSON(router, "/api/login", body); w.Code != http.StatusUnauthorized {
			t.Errorf("login %s: code = %d, want 401", body, w.Code)
		}
	}

	if w := postJSON(router, "/api/login", `{"email":"alice@example.com","password":"secret1"}`); w.Code != http.StatusOK {
		t.Fatalf("valid login: code = %d, body %s", w.Code, w.Body.String())
	}
}
