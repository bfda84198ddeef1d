package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"

	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/account"
	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/model"
	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/repository"
	"github.com/Rudra-Tiwari-codes/Calendar-test/pkg/encrypter"
	"github.com/Rudra-Tiwari-codes/Calendar-test/pkg/scope"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockUserRepo struct {
	users map[string]model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: map[string]model.User{}}
}

func (m *mockUserRepo) GetUserByTelegramID(ctx context.Context, telegramID string) (model.User, error) {
	return m.users[telegramID], nil
}

func (m *mockUserRepo) GetOrCreateUser(ctx context.Context, opt repository.GetOrCreateUserOptions) (model.User, error) {
	if u, ok := m.users[opt.TelegramID]; ok {
		return u, nil
	}
	u := model.User{ID: int64(len(m.users) + 1), TelegramID: opt.TelegramID, Timezone: opt.DefaultTimezone}
	m.users[opt.TelegramID] = u
	return u, nil
}

func (m *mockUserRepo) UpdateUserTimezone(ctx context.Context, telegramID string, timezone string) error {
	u := m.users[telegramID]
	u.Timezone = timezone
	m.users[telegramID] = u
	return nil
}

func (m *mockUserRepo) UpdateUserToken(ctx context.Context, opt repository.UpdateUserTokenOptions) error {
	u := m.users[opt.TelegramID]
	u.TokenCiphertext = opt.TokenCiphertext
	u.GoogleSub = opt.GoogleSub
	u.Email = opt.Email
	m.users[opt.TelegramID] = u
	return nil
}

const testEncKey = "QUJDREVGR0hJSktMTU5PUFFSU1RVVldYWVphYmNkZWY=" // 32 bytes, url-safe base64

func newTestUseCase(t *testing.T, repo *mockUserRepo, tokenURL string) *implUseCase {
	t.Helper()

	states, err := scope.NewManager("test-state-secret")
	if err != nil {
		t.Fatalf("failed to create state manager: %v", err)
	}
	enc, err := encrypter.New(testEncKey)
	if err != nil {
		t.Fatalf("failed to create encrypter: %v", err)
	}

	oauthCfg := &oauth2.Config{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURL:  "http://localhost:8080/api/v1/oauth/callback",
		Scopes:       []string{"https://www.googleapis.com/auth/calendar.events"},
		Endpoint: oauth2.Endpoint{
			AuthURL:  "https://accounts.google.com/o/oauth2/auth",
			TokenURL: tokenURL,
		},
	}

	return New(&mockLogger{}, repo, oauthCfg, states, enc, "Australia/Melbourne")
}

// fakeTokenServer mimics Google's token endpoint, issuing an id_token with
// email and sub claims.
func fakeTokenServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		idToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"email": "alex@example.com",
			"sub":   "google-sub-1",
			"exp":   time.Now().Add(time.Hour).Unix(),
		}).SignedString([]byte("google-secret"))
		if err != nil {
			t.Errorf("failed to sign id token: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token":  "access-1",
			"refresh_token": "refresh-1",
			"token_type":    "Bearer",
			"expires_in":    3600,
			"id_token":      idToken,
		})
	}))
}

func TestConnect(t *testing.T) {
	repo := newMockUserRepo()
	uc := newTestUseCase(t, repo, "http://unused.invalid/token")
	sc := model.Scope{UserID: "telegram_42", ChatID: 42}

	out, err := uc.Connect(context.Background(), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out.AuthURL, "https://accounts.google.com/o/oauth2/auth?") {
		t.Errorf("unexpected auth url: %q", out.AuthURL)
	}
	if !strings.Contains(out.AuthURL, "state=") {
		t.Errorf("expected signed state in url: %q", out.AuthURL)
	}
	if !strings.Contains(out.AuthURL, "access_type=offline") {
		t.Errorf("expected offline access requested: %q", out.AuthURL)
	}
	if _, ok := repo.users[sc.UserID]; !ok {
		t.Errorf("expected user row created before callback")
	}
}

func TestCompleteLink(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "telegram_42", ChatID: 42}

	t.Run("Success stores sealed token", func(t *testing.T) {
		ts := fakeTokenServer(t)
		defer ts.Close()

		repo := newMockUserRepo()
		uc := newTestUseCase(t, repo, ts.URL)

		connectOut, err := uc.Connect(ctx, sc)
		if err != nil {
			t.Fatalf("connect failed: %v", err)
		}
		state := stateParam(t, connectOut.AuthURL)

		out, err := uc.CompleteLink(ctx, account.CompleteLinkInput{State: state, Code: "auth-code"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.TelegramID != sc.UserID {
			t.Errorf("expected link for %s, got %s", sc.UserID, out.TelegramID)
		}
		if out.Email != "alex@example.com" {
			t.Errorf("expected email from id_token, got %q", out.Email)
		}

		user := repo.users[sc.UserID]
		if user.TokenCiphertext == "" {
			t.Fatal("expected sealed token stored")
		}
		if strings.Contains(user.TokenCiphertext, "access-1") {
			t.Error("token must not be stored in the clear")
		}

		// The stored ciphertext must unseal back to the issued token.
		enc, _ := encrypter.New(testEncKey)
		raw, err := enc.Decrypt(user.TokenCiphertext)
		if err != nil {
			t.Fatalf("failed to unseal stored token: %v", err)
		}
		var tok oauth2.Token
		if err := json.Unmarshal([]byte(raw), &tok); err != nil {
			t.Fatalf("stored token is not valid JSON: %v", err)
		}
		if tok.AccessToken != "access-1" || tok.RefreshToken != "refresh-1" {
			t.Errorf("unexpected unsealed token: %+v", tok)
		}
	})

	t.Run("Invalid state", func(t *testing.T) {
		repo := newMockUserRepo()
		uc := newTestUseCase(t, repo, "http://unused.invalid/token")

		_, err := uc.CompleteLink(ctx, account.CompleteLinkInput{State: "garbage", Code: "auth-code"})
		if !errors.Is(err, account.ErrInvalidState) {
			t.Errorf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("Exchange failure", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer ts.Close()

		repo := newMockUserRepo()
		uc := newTestUseCase(t, repo, ts.URL)
		connectOut, _ := uc.Connect(ctx, sc)

		_, err := uc.CompleteLink(ctx, account.CompleteLinkInput{
			State: stateParam(t, connectOut.AuthURL), Code: "auth-code",
		})
		if !errors.Is(err, account.ErrExchangeFailed) {
			t.Errorf("expected ErrExchangeFailed, got %v", err)
		}
	})
}

func TestStatusAndTimezone(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "telegram_42", ChatID: 42}

	t.Run("Status unlinked defaults timezone", func(t *testing.T) {
		repo := newMockUserRepo()
		uc := newTestUseCase(t, repo, "http://unused.invalid/token")

		out, err := uc.Status(ctx, sc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Linked {
			t.Error("expected unlinked status")
		}
		if out.Timezone != "Australia/Melbourne" {
			t.Errorf("expected default timezone, got %q", out.Timezone)
		}
	})

	t.Run("SetTimezone validates zone", func(t *testing.T) {
		repo := newMockUserRepo()
		uc := newTestUseCase(t, repo, "http://unused.invalid/token")

		if err := uc.SetTimezone(ctx, sc, "Mars/Phobos"); !errors.Is(err, account.ErrInvalidTimezone) {
			t.Errorf("expected ErrInvalidTimezone, got %v", err)
		}
		if err := uc.SetTimezone(ctx, sc, "Europe/London"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.users[sc.UserID].Timezone != "Europe/London" {
			t.Errorf("expected timezone stored, got %q", repo.users[sc.UserID].Timezone)
		}
	})
}

func stateParam(t *testing.T, authURL string) string {
	t.Helper()
	idx := strings.Index(authURL, "state=")
	if idx < 0 {
		t.Fatalf("no state in url %q", authURL)
	}
	state := authURL[idx+len("state="):]
	if amp := strings.Index(state, "&"); amp >= 0 {
		state = state[:amp]
	}
	return state
}
