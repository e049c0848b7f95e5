package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"support-triage-bot/internal/agent"
	"support-triage-bot/pkg/llm"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockUseCase struct {
	reply       string
	err         error
	switchErr   error
	clearedUser string
	lastInput   agent.ProcessInput
	lastThread  agent.ThreadInput
}

func (m *mockUseCase) Process(ctx context.Context, in agent.ProcessInput) (string, error) {
	m.lastInput = in
	return m.reply, m.err
}

func (m *mockUseCase) ProcessThread(ctx context.Context, in agent.ThreadInput) (string, error) {
	m.lastThread = in
	return m.reply, m.err
}

func (m *mockUseCase) Clear(ctx context.Context, userID string) { m.clearedUser = userID }

func (m *mockUseCase) SwitchModel(ctx context.Context, provider string) error { return m.switchErr }

func (m *mockUseCase) CurrentModelInfo() agent.ModelInfo {
	return agent.ModelInfo{Provider: "openai", Model: "gpt-4"}
}

func (m *mockUseCase) AvailableProviders() []string {
	return []string{"openai", "anthropic", "gemini", "ollama"}
}

func (m *mockUseCase) HealthCheck(ctx context.Context) agent.HealthStatus {
	return agent.HealthStatus{Status: "healthy", Provider: "openai", Model: "gpt-4"}
}

func newTestRouter(uc agent.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(&mockLogger{}, uc)

	r := gin.New()
	r.GET("/health", h.Health)
	RegisterRoutes(r.Group("/api/v1"), h)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestChat(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &mockUseCase{reply: "hello!"}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodPost, "/api/v1/chat", gin.H{
			"user_id": "U1",
			"message": "hi",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("unexpected status: %d (%s)", w.Code, w.Body.String())
		}

		var resp struct {
			Data chatResp `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if resp.Data.Response != "hello!" {
			t.Errorf("unexpected response: %+v", resp)
		}
		if uc.lastInput.UserID != "U1" || uc.lastInput.Message != "hi" {
			t.Errorf("unexpected input: %+v", uc.lastInput)
		}
	})

	t.Run("MissingFields", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})

		w := doJSON(t, r, http.MethodPost, "/api/v1/chat", gin.H{"user_id": "U1"})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("OptionsForwarded", func(t *testing.T) {
		uc := &mockUseCase{reply: "ok"}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodPost, "/api/v1/chat", gin.H{
			"user_id":     "U1",
			"message":     "hi",
			"temperature": 0.2,
			"max_tokens":  64,
		})
		if w.Code != http.StatusOK {
			t.Fatalf("unexpected status: %d", w.Code)
		}
		if uc.lastInput.Options == nil || uc.lastInput.Options.Temperature != 0.2 || uc.lastInput.Options.MaxTokens != 64 {
			t.Errorf("options not forwarded: %+v", uc.lastInput.Options)
		}
	})

	t.Run("UnknownProviderError", func(t *testing.T) {
		uc := &mockUseCase{err: &llm.UnknownProviderError{Name: "nope"}}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodPost, "/api/v1/chat", gin.H{
			"user_id":  "U1",
			"message":  "hi",
			"provider": "nope",
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("UpstreamFailureIsInternal", func(t *testing.T) {
		uc := &mockUseCase{err: errors.New("backend down")}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodPost, "/api/v1/chat", gin.H{
			"user_id": "U1",
			"message": "hi",
		})
		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", w.Code)
		}
	})
}

func TestChatThread(t *testing.T) {
	uc := &mockUseCase{reply: "analysis"}
	r := newTestRouter(uc)

	w := doJSON(t, r, http.MethodPost, "/api/v1/chat/thread", gin.H{
		"user_id": "U1",
		"message": "it broke",
		"thread_context": []gin.H{
			{"author_id": "U2", "text": "seeing 500s", "timestamp": "1"},
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d (%s)", w.Code, w.Body.String())
	}
	if len(uc.lastThread.ThreadContext) != 1 || uc.lastThread.ThreadContext[0].AuthorID != "U2" {
		t.Errorf("thread context not forwarded: %+v", uc.lastThread.ThreadContext)
	}
}

func TestModels(t *testing.T) {
	r := newTestRouter(&mockUseCase{})

	w := doJSON(t, r, http.MethodGet, "/api/v1/models", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", w.Code)
	}

	var resp struct {
		Data modelsResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Data.Current.Provider != "openai" || len(resp.Data.Available) != 4 {
		t.Errorf("unexpected models payload: %+v", resp.Data)
	}
}

func TestSwitchModel(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})

		w := doJSON(t, r, http.MethodPost, "/api/v1/models/switch/anthropic", nil)
		if w.Code != http.StatusOK {
			t.Errorf("unexpected status: %d", w.Code)
		}
	})

	t.Run("UnknownProviderIsNotFound", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{switchErr: &llm.UnknownProviderError{Name: "nope"}})

		w := doJSON(t, r, http.MethodPost, "/api/v1/models/switch/nope", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})

	t.Run("ConstructionFailureIsInternal", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{switchErr: errors.New("missing api key")})

		w := doJSON(t, r, http.MethodPost, "/api/v1/models/switch/openai", nil)
		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", w.Code)
		}
	})
}

func TestClearConversation(t *testing.T) {
	uc := &mockUseCase{}
	r := newTestRouter(uc)

	w := doJSON(t, r, http.MethodDelete, "/api/v1/conversations/U1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", w.Code)
	}
	if uc.clearedUser != "U1" {
		t.Errorf("expected Clear called with U1, got %q", uc.clearedUser)
	}
}

func TestHealth(t *testing.T) {
	r := newTestRouter(&mockUseCase{})

	w := doJSON(t, r, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", w.Code)
	}

	var resp struct {
		Data agent.HealthStatus `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Data.Status != "healthy" {
		t.Errorf("unexpected health payload: %+v", resp.Data)
	}
}
