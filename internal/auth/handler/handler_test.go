// Package handler tests drive the registration/login/logout flows
// over httptest with in-memory stores.
package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"gestion-etudiants/internal/auth"
	"gestion-etudiants/internal/auth/credentials"
	"gestion-etudiants/internal/session"
	"gestion-etudiants/internal/web"

	"github.com/gin-gonic/gin"
)

type fakeAccountStore struct {
	accounts map[string]*credentials.Account
	nextID   int
}

func newFakeAccountStore() *fakeAccountStore {
	return &fakeAccountStore{accounts: make(map[string]*credentials.Account)}
}

func (f *fakeAccountStore) Create(_ context.Context, username, passwordHash string, role auth.Role) (string, error) {
	if _, exists := f.accounts[username]; exists {
		return "", credentials.ErrUsernameTaken
	}
	f.nextID++
	id := "acct-" + strconv.Itoa(f.nextID)
	f.accounts[username] = &credentials.Account{
		ID:           id,
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
	}
	return id, nil
}

func (f *fakeAccountStore) GetByUsername(_ context.Context, username string) (*credentials.Account, error) {
	acct, ok := f.accounts[username]
	if !ok {
		return nil, credentials.ErrAccountNotFound
	}
	return acct, nil
}

type fixture struct {
	router   *gin.Engine
	store    *fakeAccountStore
	sessions *session.MemoryStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := newFakeAccountStore()
	sessions := session.NewMemoryStore()

	h := NewHandler(
		credentials.NewService(store),
		sessions,
		time.Hour,
		session.CookieOptions{},
	)

	router := gin.New()
	router.SetHTMLTemplate(web.Templates())
	h.RegisterRoutes(router)

	return &fixture{router: router, store: store, sessions: sessions}
}

func (f *fixture) postForm(t *testing.T, path string, form url.Values, cookie string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: cookie})
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *fixture) get(t *testing.T, path string, cookie string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: cookie})
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func registerForm(username, password string) url.Values {
	return url.Values{
		"username": {username},
		"password": {password},
	}
}

func TestRegisterThenDuplicate(t *testing.T) {
	f := newFixture(t)

	w := f.postForm(t, "/register", registerForm("alice", "secret123"), "")
	if w.Code != http.StatusFound {
		t.Fatalf("first register: expected 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}

	w = f.postForm(t, "/register", registerForm("alice", "secret123"), "")
	if w.Code != http.StatusOK {
		t.Fatalf("duplicate register: expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Nom d&#39;utilisateur déjà utilisé") &&
		!strings.Contains(w.Body.String(), "Nom d'utilisateur déjà utilisé") {
		t.Fatalf("expected duplicate-username message, got: %s", w.Body.String())
	}
	if len(f.store.accounts) != 1 {
		t.Fatalf("expected 1 account, got %d", len(f.store.accounts))
	}
}

func TestRegisterCreatesNoSession(t *testing.T) {
	f := newFixture(t)

	w := f.postForm(t, "/register", registerForm("alice", "secret123"), "")
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName && c.Value != "" {
			t.Fatalf("registration must not create a session")
		}
	}
}

func TestRegisterRoleDefaultsToUser(t *testing.T) {
	f := newFixture(t)

	form := registerForm("mallory", "secret123")
	form.Set("role", "admin")
	if w := f.postForm(t, "/register", form, ""); w.Code != http.StatusFound {
		t.Fatalf("register: expected 302, got %d", w.Code)
	}

	if got := f.store.accounts["mallory"].Role; got != auth.RoleUser {
		t.Fatalf("expected self-registration to default to user, got %q", got)
	}
}

func TestRegisterAdminRoleRequiresAdminSession(t *testing.T) {
	f := newFixture(t)

	now := time.Now()
	err := f.sessions.Create(context.Background(), session.Session{
		Token: "admin-tok",
		Identity: auth.Identity{
			AccountID: "acct-0",
			Username:  "root",
			Role:      auth.RoleAdmin,
		},
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("Create session: %v", err)
	}

	form := registerForm("bob", "secret123")
	form.Set("role", "admin")
	if w := f.postForm(t, "/register", form, "admin-tok"); w.Code != http.StatusFound {
		t.Fatalf("register: expected 302, got %d", w.Code)
	}

	if got := f.store.accounts["bob"].Role; got != auth.RoleAdmin {
		t.Fatalf("expected admin-granted registration, got %q", got)
	}
}

func sessionCookie(w *httptest.ResponseRecorder) string {
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName && c.Value != "" {
			return c.Value
		}
	}
	return ""
}

func TestLoginSuccess(t *testing.T) {
	f := newFixture(t)
	f.postForm(t, "/register", registerForm("alice", "secret123"), "")

	w := f.postForm(t, "/login", registerForm("alice", "secret123"), "")
	if w.Code != http.StatusFound {
		t.Fatalf("login: expected 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Fatalf("expected redirect to /, got %q", loc)
	}

	tok := sessionCookie(w)
	if tok == "" {
		t.Fatalf("expected session cookie")
	}

	sess, err := f.sessions.Resolve(context.Background(), tok)
	if err != nil || sess == nil {
		t.Fatalf("Resolve: %v %v", sess, err)
	}
	if sess.Identity.Username != "alice" || sess.Identity.Role != auth.RoleUser {
		t.Fatalf("unexpected identity: %+v", sess.Identity)
	}
}

// TestLoginGenericFailure checks that a wrong password and an unknown
// username produce byte-identical responses.
func TestLoginGenericFailure(t *testing.T) {
	f := newFixture(t)
	f.postForm(t, "/register", registerForm("alice", "secret123"), "")

	wrongPw := f.postForm(t, "/login", registerForm("alice", "wrong"), "")
	unknown := f.postForm(t, "/login", registerForm("nobody", "secret123"), "")

	if wrongPw.Code != http.StatusOK || unknown.Code != http.StatusOK {
		t.Fatalf("expected 200/200, got %d/%d", wrongPw.Code, unknown.Code)
	}
	if wrongPw.Body.String() != unknown.Body.String() {
		t.Fatalf("failure responses must be identical")
	}
	if !strings.Contains(wrongPw.Body.String(), "Identifiants invalides") {
		t.Fatalf("expected generic invalid-credentials message")
	}
}

func TestLogoutDestroysSession(t *testing.T) {
	f := newFixture(t)
	f.postForm(t, "/register", registerForm("alice", "secret123"), "")

	tok := sessionCookie(f.postForm(t, "/login", registerForm("alice", "secret123"), ""))
	if tok == "" {
		t.Fatalf("expected session cookie")
	}

	w := f.get(t, "/logout", tok)
	if w.Code != http.StatusFound {
		t.Fatalf("logout: expected 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}

	sess, err := f.sessions.Resolve(context.Background(), tok)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if sess != nil {
		t.Fatalf("expected token to resolve to nothing after logout")
	}
}

func TestLogoutWithoutSession(t *testing.T) {
	f := newFixture(t)

	w := f.get(t, "/logout", "")
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/login" {
		t.Fatalf("logout without session: expected 302 /login, got %d %q",
			w.Code, w.Header().Get("Location"))
	}
}
