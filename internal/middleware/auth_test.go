package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/zenathia/zenathia-web/internal/model"
	"github.com/zenathia/zenathia-web/internal/session"
)

func TestWithSessionLoadsPrincipal(t *testing.T) {
	sessions := session.NewManager("test-secret", false)

	issueRec := httptest.NewRecorder()
	if err := sessions.Issue(issueRec, model.SessionUser{ID: 3, Name: "Ann"}); err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}

	var got model.SessionUser
	var ok bool
	handler := WithSession(sessions)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = SessionUserFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	for _, c := range issueRec.Result().Cookies() {
		req.AddCookie(c)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !ok {
		t.Fatal("expected principal in context")
	}
	if got.ID != 3 || got.Name != "Ann" {
		t.Errorf("principal = %+v, want ID 3 Name Ann", got)
	}
}

func TestWithSessionAnonymous(t *testing.T) {
	sessions := session.NewManager("test-secret", false)

	handler := WithSession(sessions)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := SessionUserFromContext(r.Context()); ok {
			t.Error("expected no principal for a request without cookies")
		}
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}

func TestRequireSessionRedirects(t *testing.T) {
	called := false
	handler := RequireSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	if called {
		t.Error("protected handler ran without a session")
	}
	if rec.Code != http.StatusFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusFound)
	}
	if loc := rec.Header().Get("Location"); loc != "/registration" {
		t.Errorf("Location = %q, want /registration", loc)
	}
}
