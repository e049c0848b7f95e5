package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"support-triage-bot/internal/categorizer"
	"support-triage-bot/pkg/llm"
	"support-triage-bot/pkg/prompt"
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

type mockModel struct {
	provider string
	reply    string
	err      error
	healthy  bool
	calls    int
	got      [][]llm.Message
}

func (m *mockModel) Generate(ctx context.Context, messages []llm.Message, opts *llm.Options) (*llm.Response, error) {
	m.calls++
	m.got = append(m.got, messages)
	if m.err != nil {
		return nil, m.err
	}
	return &llm.Response{Content: m.reply, Model: m.ModelName()}, nil
}

func (m *mockModel) HealthCheck(ctx context.Context) bool { return m.healthy }
func (m *mockModel) ModelName() string                    { return m.provider + "-model" }
func (m *mockModel) Provider() string                     { return m.provider }

type stubCategorizer struct {
	category categorizer.Category
	rendered string
}

func (s *stubCategorizer) Categorize(ctx context.Context, text string, threadCtx []categorizer.ThreadMessage, model llm.Model) categorizer.Category {
	return s.category
}

func (s *stubCategorizer) RenderResponse(ctx context.Context, category categorizer.Category, text string) string {
	return s.rendered
}

func newTestAgent(t *testing.T, model *mockModel, cat categorizer.Categorizer) *Agent {
	t.Helper()

	registry := llm.NewRegistry()
	registry.Register("mock", func(cfg llm.Config) (llm.Model, error) {
		return model, nil
	})
	registry.Register("broken", func(cfg llm.Config) (llm.Model, error) {
		return nil, errors.New("bad credentials")
	})

	a, err := New(Config{
		Registry:        registry,
		Providers:       map[string]llm.Config{"mock": {Model: "m"}},
		DefaultProvider: "mock",
		Categorizer:     cat,
		Prompts:         prompt.NewLoader(t.TempDir(), ".prompt"),
		Logger:          &mockLogger{},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return a
}

func TestProcess(t *testing.T) {
	ctx := context.Background()

	t.Run("CommitsTurnOnSuccess", func(t *testing.T) {
		model := &mockModel{provider: "mock", reply: "hello!"}
		a := newTestAgent(t, model, &stubCategorizer{})

		got, err := a.Process(ctx, ProcessInput{UserID: "U1", Message: "hi"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "hello!" {
			t.Errorf("unexpected response: %q", got)
		}

		a.mu.Lock()
		history := a.histories["U1"]
		a.mu.Unlock()
		if len(history) != 2 {
			t.Fatalf("expected 2 history entries, got %d", len(history))
		}
		if history[0].Role != llm.RoleUser || history[1].Role != llm.RoleAssistant {
			t.Errorf("unexpected roles: %+v", history)
		}
	})

	t.Run("FailureLeavesHistoryUntouched", func(t *testing.T) {
		model := &mockModel{provider: "mock", reply: "ok"}
		a := newTestAgent(t, model, &stubCategorizer{})

		if _, err := a.Process(ctx, ProcessInput{UserID: "U1", Message: "first"}); err != nil {
			t.Fatal(err)
		}

		model.err = errors.New("backend down")
		got, err := a.Process(ctx, ProcessInput{UserID: "U1", Message: "second"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != ApologyMessage {
			t.Errorf("expected apology, got %q", got)
		}

		a.mu.Lock()
		history := a.histories["U1"]
		a.mu.Unlock()
		if len(history) != 2 {
			t.Errorf("failed turn should not change history, got %d entries", len(history))
		}
		if history[0].Content != "first" {
			t.Errorf("unexpected history head: %+v", history[0])
		}
	})

	t.Run("HistoryCappedAtLimit", func(t *testing.T) {
		model := &mockModel{provider: "mock", reply: "r"}
		a := newTestAgent(t, model, &stubCategorizer{})

		for i := 0; i < 7; i++ {
			if _, err := a.Process(ctx, ProcessInput{UserID: "U1", Message: "turn"}); err != nil {
				t.Fatal(err)
			}
		}

		a.mu.Lock()
		history := a.histories["U1"]
		a.mu.Unlock()
		if len(history) != HistoryLimit {
			t.Errorf("expected history capped at %d, got %d", HistoryLimit, len(history))
		}
	})

	t.Run("PerUserIsolation", func(t *testing.T) {
		model := &mockModel{provider: "mock", reply: "r"}
		a := newTestAgent(t, model, &stubCategorizer{})

		a.Process(ctx, ProcessInput{UserID: "U1", Message: "one"})
		a.Process(ctx, ProcessInput{UserID: "U2", Message: "two"})

		a.mu.Lock()
		defer a.mu.Unlock()
		if len(a.histories["U1"]) != 2 || len(a.histories["U2"]) != 2 {
			t.Errorf("unexpected histories: U1=%d U2=%d", len(a.histories["U1"]), len(a.histories["U2"]))
		}
	})

	t.Run("UnknownProviderPropagates", func(t *testing.T) {
		model := &mockModel{provider: "mock", reply: "r"}
		a := newTestAgent(t, model, &stubCategorizer{})

		_, err := a.Process(ctx, ProcessInput{UserID: "U1", Message: "hi", Provider: "nope"})
		var unknown *llm.UnknownProviderError
		if !errors.As(err, &unknown) {
			t.Fatalf("expected UnknownProviderError, got %v", err)
		}
	})
}

func TestProcessThread(t *testing.T) {
	ctx := context.Background()

	t.Run("NonTechnicalUsesTemplate", func(t *testing.T) {
		model := &mockModel{provider: "mock", reply: "should not be used"}
		a := newTestAgent(t, model, &stubCategorizer{
			category: categorizer.CategoryFYI,
			rendered: "📋 noted",
		})

		got, err := a.ProcessThread(ctx, ThreadInput{
			ProcessInput: ProcessInput{UserID: "U1", Message: "fyi all done"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "📋 noted" {
			t.Errorf("unexpected response: %q", got)
		}
		if model.calls != 0 {
			t.Errorf("expected no generation calls, got %d", model.calls)
		}

		a.mu.Lock()
		defer a.mu.Unlock()
		if len(a.histories["U1"]) != 0 {
			t.Errorf("templated replies should not touch history")
		}
	})

	t.Run("TechnicalIssueGetsAnalysisAndFooter", func(t *testing.T) {
		model := &mockModel{provider: "mock", reply: "analysis"}
		a := newTestAgent(t, model, &stubCategorizer{category: categorizer.CategoryTechnicalIssue})

		thread := []categorizer.ThreadMessage{
			{AuthorID: "U2", Text: "it crashed", Timestamp: "1"},
		}
		got, err := a.ProcessThread(ctx, ThreadInput{
			ProcessInput:  ProcessInput{UserID: "U1", Message: "any ideas?"},
			ThreadContext: thread,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(got, "analysis") {
			t.Errorf("unexpected response: %q", got)
		}
		if !strings.Contains(got, "**Category:** Technical Issue") || !strings.Contains(got, "**Action:** Validate And Triage") {
			t.Errorf("missing footer:\n%s", got)
		}

		// system + 1 thread entry + current message
		messages := model.got[0]
		if len(messages) != 3 {
			t.Fatalf("expected 3 messages, got %d", len(messages))
		}
		if messages[0].Role != llm.RoleSystem {
			t.Errorf("expected system prompt first, got %+v", messages[0])
		}
		if messages[1].Metadata["author_id"] != "U2" {
			t.Errorf("expected thread metadata, got %+v", messages[1].Metadata)
		}

		a.mu.Lock()
		defer a.mu.Unlock()
		if len(a.histories["U1"]) != 2 {
			t.Errorf("expected committed turn, got %d entries", len(a.histories["U1"]))
		}
	})

	t.Run("DuplicateCurrentMessageSkipped", func(t *testing.T) {
		model := &mockModel{provider: "mock", reply: "analysis"}
		a := newTestAgent(t, model, &stubCategorizer{category: categorizer.CategoryEngineeringQuery})

		thread := []categorizer.ThreadMessage{
			{AuthorID: "U1", Text: "how does the df-owned cache work?  ", Timestamp: "1"},
		}
		_, err := a.ProcessThread(ctx, ThreadInput{
			ProcessInput:  ProcessInput{UserID: "U1", Message: "how does the df-owned cache work?"},
			ThreadContext: thread,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// system + thread entry only, current message is the same text
		if len(model.got[0]) != 2 {
			t.Errorf("expected duplicate suppression, got %d messages", len(model.got[0]))
		}
	})

	t.Run("GenerationFailureReturnsApology", func(t *testing.T) {
		model := &mockModel{provider: "mock", err: errors.New("backend down")}
		a := newTestAgent(t, model, &stubCategorizer{category: categorizer.CategoryTechnicalIssue})

		got, err := a.ProcessThread(ctx, ThreadInput{
			ProcessInput: ProcessInput{UserID: "U1", Message: "broken"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != ThreadApologyMessage {
			t.Errorf("expected thread apology, got %q", got)
		}
		if got == ApologyMessage {
			t.Error("thread failure must not reuse the direct-conversation apology")
		}

		a.mu.Lock()
		defer a.mu.Unlock()
		if len(a.histories["U1"]) != 0 {
			t.Errorf("failed turn should not change history")
		}
	})
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	model := &mockModel{provider: "mock", reply: "r"}
	a := newTestAgent(t, model, &stubCategorizer{})

	a.Process(ctx, ProcessInput{UserID: "U1", Message: "hi"})
	a.Clear(ctx, "U1")

	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.histories["U1"]) != 0 {
		t.Error("expected empty history after Clear")
	}
}

func TestSwitchModel(t *testing.T) {
	ctx := context.Background()
	model := &mockModel{provider: "mock", reply: "r"}
	a := newTestAgent(t, model, &stubCategorizer{})

	t.Run("FailedSwitchKeepsCurrent", func(t *testing.T) {
		if err := a.SwitchModel(ctx, "broken"); err == nil {
			t.Fatal("expected error")
		}
		info := a.CurrentModelInfo()
		if info.Provider != "mock" {
			t.Errorf("expected previous model to stay active, got %+v", info)
		}
	})

	t.Run("UnknownProvider", func(t *testing.T) {
		if err := a.SwitchModel(ctx, "nope"); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestHealthCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("Healthy", func(t *testing.T) {
		model := &mockModel{provider: "mock", healthy: true}
		a := newTestAgent(t, model, &stubCategorizer{})

		status := a.HealthCheck(ctx)
		if status.Status != StatusHealthy || status.Provider != "mock" || status.Model != "mock-model" {
			t.Errorf("unexpected status: %+v", status)
		}
	})

	t.Run("Unhealthy", func(t *testing.T) {
		model := &mockModel{provider: "mock", healthy: false}
		a := newTestAgent(t, model, &stubCategorizer{})

		status := a.HealthCheck(ctx)
		if status.Status != StatusUnhealthy {
			t.Errorf("unexpected status: %+v", status)
		}
	})
}
