package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bhavanishankera7/todo-list-app/internal/token"
)

const testSecret = "test-secret"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestRouter() (*gin.Engine, *fakeStore) {
	store := newFakeStore()
	return NewRouter(store, token.New([]byte(testSecret), time.Hour)), store
}

func do(t *testing.T, router *gin.Engine, method, path, bearer string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	out := map[string]interface{}{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

// registerAndLogin регистрирует пользователя и возвращает его токен.
func registerAndLogin(t *testing.T, router *gin.Engine, name, email, password string) string {
	t.Helper()

	rec := do(t, router, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"name": name, "email": email, "password": password,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = do(t, router, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email": email, "password": password,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	tok, _ := decode(t, rec)["token"].(string)
	if tok == "" {
		t.Fatalf("login: expected non-empty token")
	}
	return tok
}

func createTodo(t *testing.T, router *gin.Engine, bearer string, body map[string]interface{}) map[string]interface{} {
	t.Helper()

	rec := do(t, router, http.MethodPost, "/api/todos", bearer, body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create todo: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	todo, _ := decode(t, rec)["todo"].(map[string]interface{})
	if todo == nil {
		t.Fatalf("create todo: missing todo in response")
	}
	return todo
}
