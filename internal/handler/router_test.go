package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userdir/internal/app/auth"
	"userdir/internal/app/user"
	"userdir/internal/configs"
	"userdir/internal/pkg/errs"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	handler http.Handler
	store   *user.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &configs.AppConfig{
		Environment:  "test",
		TokenSecret:  configs.DefaultTokenSecret,
		UserIDScheme: configs.IDSchemeSequence,
	}
	store := user.NewStore()
	deps := NewAppDeps(cfg, store, &user.SequentialIDs{})

	return &testServer{handler: Router(deps), store: store}
}

func (s *testServer) do(t *testing.T, method, target, contentType, body string) (int, envelope) {
	t.Helper()

	r := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		r.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, r)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	return w.Code, env
}

func (s *testServer) form(t *testing.T, target string, values url.Values) (int, envelope) {
	t.Helper()
	return s.do(t, http.MethodPost, target, "application/x-www-form-urlencoded", values.Encode())
}

func (s *testServer) register(t *testing.T, username, email, password, again string) (int, envelope) {
	t.Helper()
	return s.form(t, "/form/user/register", url.Values{
		"username":       {username},
		"email":          {email},
		"password":       {password},
		"password_again": {again},
	})
}

func TestHealth(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	for _, path := range []string{"/", "/health"} {
		status, env := srv.do(t, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, 0, env.Code)
		assert.Contains(t, string(env.Data), `"status":"ok"`)
	}
}

func TestRegisterAndLogin(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	status, env := srv.register(t, "joe", "joe@x.com", "p1", "p1")
	require.Equal(t, http.StatusOK, status)

	var registered auth.RegistrationResult
	require.NoError(t, json.Unmarshal(env.Data, &registered))
	assert.Equal(t, "user:1000", registered.ID)

	status, env = srv.form(t, "/form/user/login", url.Values{"email": {"joe@x.com"}, "password": {"p1"}})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 0, env.Code)

	var login auth.LoginResult
	require.NoError(t, json.Unmarshal(env.Data, &login))
	assert.Equal(t, 2, strings.Count(login.Token, "."))
}

func TestRegisterAcceptsJSON(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	status, env := srv.do(t, http.MethodPost, "/form/user/register", "application/json",
		`{"username":"ann","email":"ann@x.com","password":"pw","password_again":"pw"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"user_id":"user:1000"}`, string(env.Data))
}

func TestRegisterRejections(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	_, _ = srv.register(t, "joe", "joe@x.com", "p1", "p1")

	tests := []struct {
		name                      string
		username, email, pw, again string
		wantCode                  int
	}{
		{"duplicate username", "joe", "new@x.com", "p1", "p1", errs.ErrUsernameTaken},
		{"duplicate email", "joey", "joe@x.com", "p1", "p1", errs.ErrEmailTaken},
		{"password mismatch", "ann", "ann@x.com", "p1", "p2", errs.ErrPasswordMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := srv.register(t, tt.username, tt.email, tt.pw, tt.again)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, tt.wantCode, env.Code)
		})
	}

	n, err := srv.store.Len()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestLoginRejections(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)
	_, _ = srv.register(t, "joe", "joe@x.com", "p1", "p1")

	status, env := srv.form(t, "/form/user/login", url.Values{"email": {"nobody@x.com"}, "password": {"p1"}})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, errs.ErrUnknownEmail, env.Code)
	assert.Empty(t, env.Data)

	status, env = srv.form(t, "/form/user/login", url.Values{"email": {"joe@x.com"}, "password": {"wrong"}})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, errs.ErrWrongPassword, env.Code)
	assert.Empty(t, env.Data)
}

func TestRegisterUnsupportedMediaType(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	status, env := srv.do(t, http.MethodPost, "/form/user/register", "text/plain", "joe")
	assert.Equal(t, http.StatusUnsupportedMediaType, status)
	assert.Equal(t, errs.ErrUnsupportedMediaType, env.Code)
}

func TestUserCRUD(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	status, env := srv.do(t, http.MethodPost, "/user", "application/json",
		`{"user_id":"user:9999","username":"joe","email":"joe@x.com","description":"d","password":"plain"}`)
	require.Equal(t, http.StatusOK, status)

	var created user.User
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "user:1000", created.ID)
	assert.Equal(t, "plain", created.Password, "the create path stores the password as sent")

	status, env = srv.do(t, http.MethodGet, "/user/user:1000", "", "")
	require.Equal(t, http.StatusOK, status)
	var fetched user.User
	require.NoError(t, json.Unmarshal(env.Data, &fetched))
	assert.Equal(t, created, fetched)

	status, env = srv.do(t, http.MethodPut, "/user/user:1000", "application/json",
		`{"user_id":"user:4242","username":"joseph","email":"j@x.com","description":"","password":"x"}`)
	require.Equal(t, http.StatusOK, status)
	var updated user.User
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "user:1000", updated.ID)
	assert.Equal(t, "joseph", updated.Username)

	status, env = srv.do(t, http.MethodGet, "/user", "", "")
	require.Equal(t, http.StatusOK, status)
	var all []user.User
	require.NoError(t, json.Unmarshal(env.Data, &all))
	require.Len(t, all, 1)
	assert.Equal(t, updated, all[0])

	status, env = srv.do(t, http.MethodDelete, "/user/user:1000", "", "")
	require.Equal(t, http.StatusOK, status)
	var removed user.User
	require.NoError(t, json.Unmarshal(env.Data, &removed))
	assert.Equal(t, updated, removed)

	status, env = srv.do(t, http.MethodGet, "/user", "", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestUserNotFound(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	tests := []struct {
		method string
		body   string
	}{
		{http.MethodGet, ""},
		{http.MethodPut, `{"username":"x","email":"x","description":"","password":"x"}`},
		{http.MethodDelete, ""},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			contentType := ""
			if tt.body != "" {
				contentType = "application/json"
			}
			status, env := srv.do(t, tt.method, "/user/user:0000", contentType, tt.body)
			assert.Equal(t, http.StatusNotFound, status)
			assert.Equal(t, errs.ErrUserNotFound, env.Code)
		})
	}
}

func TestPoisonedStoreIsInternalError(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	assert.Panics(t, func() {
		_ = srv.store.WithAccess(func(*[]user.User) { panic("holder failed") })
	})

	status, env := srv.do(t, http.MethodGet, "/user", "", "")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, errs.ErrInternal, env.Code)

	status, env = srv.register(t, "joe", "joe@x.com", "p1", "p1")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, errs.ErrInternal, env.Code)
}

func TestUserBodyRequiresFieldsAndIgnoresExtras(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	status, env := srv.do(t, http.MethodPost, "/user", "application/json",
		`{"username":"joe","email":"joe@x.com","password":"p"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, errs.ErrInvalidParams, env.Code)

	status, env = srv.do(t, http.MethodPost, "/user", "application/json",
		`{"user_id":null,"username":"joe","email":"joe@x.com","description":"","password":"p","nickname":"jj"}`)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"user_id":"user:1000","username":"joe","email":"joe@x.com","description":"","password":"p"}`, string(env.Data))

	status, env = srv.do(t, http.MethodPut, "/user/user:1000", "application/json", `{"username":"joseph"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, errs.ErrInvalidParams, env.Code)

	n, err := srv.store.Len()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRegisterConcurrentSameUsername(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	const workers = 8
	statuses := make(chan int, workers)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r := httptest.NewRequest(http.MethodPost, "/form/user/register", strings.NewReader(url.Values{
				"username":       {"joe"},
				"email":          {"joe@x.com"},
				"password":       {"p1"},
				"password_again": {"p1"},
			}.Encode()))
			r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			w := httptest.NewRecorder()
			srv.handler.ServeHTTP(w, r)
			statuses <- w.Code
		}()
	}
	wg.Wait()
	close(statuses)

	ok := 0
	for status := range statuses {
		if status == http.StatusOK {
			ok++
		}
	}
	assert.Equal(t, 1, ok)

	n, err := srv.store.Len()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
