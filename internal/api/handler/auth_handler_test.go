package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/velora/identity-service/internal/api"
	"github.com/velora/identity-service/internal/api/handler"
	"github.com/velora/identity-service/internal/core/domain"
	"github.com/velora/identity-service/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error)
	loginFn    func(ctx context.Context, in ports.LoginInput) (*ports.AuthResult, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, in ports.LoginInput) (*ports.AuthResult, error) {
	return s.loginFn(ctx, in)
}

// newTestEcho wires the real error handler so tests observe the wire-level
// envelopes, not echo's defaults.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())
	return e
}

func doJSON(e *echo.Echo, fn echo.HandlerFunc, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := fn(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
			if in.Username != "alice1" || in.Email != "a@x.com" || in.Password != "Str0ng!Pass" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &ports.AuthResult{
				Account: &domain.Account{ID: "1", Username: "alice1", Email: "a@x.com", Role: domain.RoleUser},
				Token:   "token123",
			}, nil
		},
	}
	h := handler.NewAuthHandler(stub)

	rec := doJSON(e, h.Register, http.MethodPost, "/auth/register",
		`{"username":"alice1","email":"a@x.com","password":"Str0ng!Pass"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "account created" || resp["token"] != "token123" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["id"] != "1" || user["username"] != "alice1" || user["email"] != "a@x.com" || user["role"] != "user" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if strings.Contains(rec.Body.String(), "Str0ng!Pass") {
		t.Fatalf("response must never contain the password")
	}
}

func TestAuthHandler_Register_ValidationErrors(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
			return nil, domain.ValidationErrors{
				{Field: "password", Message: "password must contain a lowercase letter, an uppercase letter, a digit and a symbol"},
			}
		},
	}
	h := handler.NewAuthHandler(stub)

	rec := doJSON(e, h.Register, http.MethodPost, "/auth/register",
		`{"username":"alice1","email":"a@x.com","password":"weakpass"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp struct {
		Errors []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Errors) != 1 || resp.Errors[0].Field != "password" {
		t.Fatalf("unexpected errors payload: %+v", resp.Errors)
	}
}

func TestAuthHandler_Register_Conflicts(t *testing.T) {
	cases := []struct {
		err  error
		body string
	}{
		{domain.ErrEmailTaken, `{"error":"Email already in use"}`},
		{domain.ErrUsernameTaken, `{"error":"Username already taken"}`},
	}

	for _, tc := range cases {
		e := newTestEcho()
		stub := &stubAuthService{
			registerFn: func(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
				return nil, tc.err
			},
		}
		h := handler.NewAuthHandler(stub)

		rec := doJSON(e, h.Register, http.MethodPost, "/auth/register",
			`{"username":"alice2","email":"a@x.com","password":"Other!Pass1"}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("%v: expected 409, got %d", tc.err, rec.Code)
		}
		if strings.TrimSpace(rec.Body.String()) != tc.body {
			t.Fatalf("%v: unexpected body %s", tc.err, rec.Body.String())
		}
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := handler.NewAuthHandler(stub)

	rec := doJSON(e, h.Register, http.MethodPost, "/auth/register", "not-json")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, in ports.LoginInput) (*ports.AuthResult, error) {
			if in.Email != "a@x.com" || in.Password != "Str0ng!Pass" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &ports.AuthResult{
				Account: &domain.Account{ID: "1", Username: "alice1", Email: "a@x.com", Role: domain.RoleUser},
				Token:   "token123",
			}, nil
		},
	}
	h := handler.NewAuthHandler(stub)

	rec := doJSON(e, h.Login, http.MethodPost, "/auth/login",
		`{"email":"a@x.com","password":"Str0ng!Pass"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" || resp["message"] != "login successful" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["id"] != "1" || user["email"] != "a@x.com" || user["role"] != "user" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
}

func TestAuthHandler_Login_InvalidCredentialsBodyIsIdentical(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, in ports.LoginInput) (*ports.AuthResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := handler.NewAuthHandler(stub)

	unknown := doJSON(e, h.Login, http.MethodPost, "/auth/login",
		`{"email":"ghost@x.com","password":"Str0ng!Pass"}`)
	wrongPw := doJSON(e, h.Login, http.MethodPost, "/auth/login",
		`{"email":"a@x.com","password":"Wr0ng!Pass1"}`)

	if unknown.Code != http.StatusUnauthorized || wrongPw.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", unknown.Code, wrongPw.Code)
	}
	if unknown.Body.String() != wrongPw.Body.String() {
		t.Fatalf("401 bodies must be identical: %s vs %s", unknown.Body.String(), wrongPw.Body.String())
	}
	if strings.TrimSpace(unknown.Body.String()) != `{"error":"Invalid credentials"}` {
		t.Fatalf("unexpected body: %s", unknown.Body.String())
	}
}

func TestAuthHandler_Login_UnexpectedErrorIsGeneric(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, in ports.LoginInput) (*ports.AuthResult, error) {
			return nil, context.DeadlineExceeded
		},
	}
	h := handler.NewAuthHandler(stub)

	rec := doJSON(e, h.Login, http.MethodPost, "/auth/login",
		`{"email":"a@x.com","password":"Str0ng!Pass"}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "deadline") {
		t.Fatalf("internal detail leaked: %s", rec.Body.String())
	}
}
