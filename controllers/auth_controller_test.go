package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dashboard-app/config"
	"dashboard-app/controllers"
	"dashboard-app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type stubAuthStore struct {
	user    models.UserDashboard
	findErr error

	logs       []models.LoginLog
	closedRows int64
	closeErr   error
	closeCalls []string
	created    []models.UserDashboard
	createErr  error
}

func (s *stubAuthStore) FindUserByLogin(login string) (models.UserDashboard, error) {
	return s.user, s.findErr
}

func (s *stubAuthStore) CreateLoginLog(log *models.LoginLog) error {
	s.logs = append(s.logs, *log)
	return nil
}

func (s *stubAuthStore) CloseLoginSession(sessionID string, at time.Time) (int64, error) {
	s.closeCalls = append(s.closeCalls, sessionID)
	return s.closedRows, s.closeErr
}

func (s *stubAuthStore) CreateDashboardUser(user *models.UserDashboard) error {
	s.created = append(s.created, *user)
	return s.createErr
}

func newAuthApp(store *stubAuthStore) *fiber.App {
	config.JWTSecret = "test-secret"
	config.JWTExpiration = 7200
	config.CookieSameSite = "Lax"

	controller := &controllers.AuthController{Store: store}
	app := fiber.New()
	app.Post("/auth/login", controller.Login)
	app.Post("/auth/logout", controller.Logout)
	app.Post("/auth/create-user", controller.CreateUser)
	return app
}

func postJSON(target, body string) *http.Request {
	req := httptest.NewRequest("POST", target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hashed)
}

func sessionToken(t *testing.T, sessionID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":    float64(1),
		"session_id": sessionID,
		"exp":        time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(config.JWTSecret))
	require.NoError(t, err)
	return signed
}

func TestLogin_MissingFields(t *testing.T) {
	store := &stubAuthStore{}
	app := newAuthApp(store)

	for _, body := range []string{
		`{}`,
		`{"username":"admin"}`,
		`{"password":"admin123"}`,
	} {
		resp, err := app.Test(postJSON("/auth/login", body))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, body)
	}
	assert.Empty(t, store.logs)
}

func TestLogin_UserNotFound(t *testing.T) {
	store := &stubAuthStore{findErr: gorm.ErrRecordNotFound}
	app := newAuthApp(store)

	resp, err := app.Test(postJSON("/auth/login", `{"username":"ghost","password":"whatever"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	require.Len(t, store.logs, 1)
	assert.Equal(t, "FAILED", store.logs[0].LoginStatus)
	require.NotNil(t, store.logs[0].FailureReason)
	assert.Equal(t, "USER_NOT_FOUND", *store.logs[0].FailureReason)
}

func TestLogin_WrongPassword(t *testing.T) {
	store := &stubAuthStore{
		user: models.UserDashboard{
			Model:    gorm.Model{ID: 1},
			Username: "admin",
			Password: hashPassword(t, "admin123"),
		},
	}
	app := newAuthApp(store)

	resp, err := app.Test(postJSON("/auth/login", `{"username":"admin","password":"nope"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	require.Len(t, store.logs, 1)
	assert.Equal(t, "FAILED", store.logs[0].LoginStatus)
	require.NotNil(t, store.logs[0].FailureReason)
	assert.Equal(t, "WRONG_PASSWORD", *store.logs[0].FailureReason)
	require.NotNil(t, store.logs[0].UserID)
	assert.Equal(t, uint(1), *store.logs[0].UserID)
}

func TestLogin_Success(t *testing.T) {
	store := &stubAuthStore{
		user: models.UserDashboard{
			Model:    gorm.Model{ID: 1},
			Username: "admin",
			Email:    "admin@example.com",
			Password: hashPassword(t, "admin123"),
		},
	}
	app := newAuthApp(store)

	resp, err := app.Test(postJSON("/auth/login", `{"username":"admin","password":"admin123"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	payload := decodeBody(t, resp.Body)
	assert.Equal(t, true, payload["success"])
	user := payload["data"].(map[string]interface{})["user"].(map[string]interface{})
	assert.Equal(t, "admin", user["username"])

	assert.Contains(t, resp.Header.Get("Set-Cookie"), "token=")

	require.Len(t, store.logs, 1)
	assert.Equal(t, "SUCCESS", store.logs[0].LoginStatus)
	assert.Nil(t, store.logs[0].FailureReason)
	assert.NotEmpty(t, store.logs[0].SessionID)
}

func TestLogout_ClosesSession(t *testing.T) {
	store := &stubAuthStore{closedRows: 1}
	app := newAuthApp(store)

	req := httptest.NewRequest("POST", "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: sessionToken(t, "sess-1")})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"sess-1"}, store.closeCalls)

	// cookie cleared on the way out
	assert.Contains(t, resp.Header.Get("Set-Cookie"), "token=")
}

func TestLogout_Idempotent(t *testing.T) {
	store := &stubAuthStore{closedRows: 0}
	app := newAuthApp(store)

	// session already closed, still 200
	req := httptest.NewRequest("POST", "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: sessionToken(t, "sess-1")})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"sess-1"}, store.closeCalls)
}

func TestLogout_NoToken(t *testing.T) {
	store := &stubAuthStore{}
	app := newAuthApp(store)

	resp, err := app.Test(httptest.NewRequest("POST", "/auth/logout", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, store.closeCalls)
}

func TestCreateUser_ValidationError(t *testing.T) {
	store := &stubAuthStore{}
	app := newAuthApp(store)

	for _, body := range []string{
		`{"username":"ops","email":"not-an-email","password":"secret1","name":"Ops"}`,
		`{"username":"ops","email":"ops@example.com","password":"short","name":"Ops"}`,
		`{"email":"ops@example.com","password":"secret1","name":"Ops"}`,
	} {
		resp, err := app.Test(postJSON("/auth/create-user", body))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, body)
	}
	assert.Empty(t, store.created)
}

func TestCreateUser(t *testing.T) {
	store := &stubAuthStore{}
	app := newAuthApp(store)

	resp, err := app.Test(postJSON("/auth/create-user",
		`{"username":"ops","email":"ops@example.com","password":"secret1","name":"Ops"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.Len(t, store.created, 1)
	created := store.created[0]
	assert.Equal(t, "ops", created.Username)
	// stored hashed, never plaintext
	assert.NotEqual(t, "secret1", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("secret1")))
}
