// Command eval runs a batch of recorded support threads through the triage
// agent and writes the categorization results to a CSV file.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"support-triage-bot/config"
	"support-triage-bot/internal/agent"
	"support-triage-bot/internal/categorizer"
	"support-triage-bot/pkg/llm"
	"support-triage-bot/pkg/log"
	"support-triage-bot/pkg/prompt"
)

const threadColumn = "Thread"

var outputHeader = []string{
	"ID",
	"Thread",
	"Predicted category",
	"Routing",
	"AI Response",
	"Remarks",
	"Processing Status",
	"Timestamp",
}

func main() {
	var (
		inputPath  = flag.String("input", "", "input CSV file with a Thread column")
		outputPath = flag.String("output", "", "output CSV file (default: eval_results_<timestamp>.csv)")
		provider   = flag.String("provider", "", "provider to evaluate with (default: config default)")
		maxRows    = flag.Int("max", 0, "process at most this many rows (0 = all)")
	)
	flag.Parse()

	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "usage: eval -input threads.csv [-output results.csv] [-provider name] [-max n]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	ctx := context.Background()

	defaultProvider := cfg.LLM.DefaultProvider
	if *provider != "" {
		defaultProvider = *provider
	}

	providers := make(map[string]llm.Config)
	for _, p := range cfg.LLM.Providers {
		if p.Enabled {
			providers[p.Name] = llm.Config{
				APIKey:    p.APIKey,
				Model:     p.Model,
				BaseURL:   p.BaseURL,
				ModelPath: p.ModelPath,
			}
		}
	}

	prompts := prompt.NewLoader(cfg.Assets.PromptsDir, ".prompt")
	templates := prompt.NewLoader(cfg.Assets.TemplatesDir, ".txt")
	cat := categorizer.New(prompts, templates, logger)

	triageAgent, err := agent.New(agent.Config{
		Registry:        llm.DefaultRegistry(),
		Providers:       providers,
		DefaultProvider: defaultProvider,
		Categorizer:     cat,
		Prompts:         prompts,
		Logger:          logger,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize agent: %v", err)
	}

	info := triageAgent.CurrentModelInfo()
	logger.Infof(ctx, "Evaluating with %s (%s)", info.Model, info.Provider)

	threads, err := readThreads(*inputPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to read input CSV: %v", err)
	}
	if *maxRows > 0 && len(threads) > *maxRows {
		threads = threads[:*maxRows]
	}
	logger.Infof(ctx, "Read %d threads from %s", len(threads), *inputPath)

	out := *outputPath
	if out == "" {
		out = fmt.Sprintf("eval_results_%s.csv", time.Now().Format("20060102_150405"))
	}

	results := make([][]string, 0, len(threads))
	errorCount := 0

	for i, row := range threads {
		logger.Infof(ctx, "Processing thread %d/%d", i+1, len(threads))

		message, threadCtx := splitThread(row.thread, fmt.Sprintf("eval_user_%d", i+1))

		category := cat.Categorize(ctx, message, threadCtx, triageAgent.CurrentModel())
		routing := categorizer.RoutingFor(category)

		status := "SUCCESS"
		reply, err := triageAgent.ProcessThread(ctx, agent.ThreadInput{
			ProcessInput: agent.ProcessInput{
				UserID:  fmt.Sprintf("eval_user_%d", i+1),
				Message: message,
			},
			ThreadContext: threadCtx,
		})
		if err != nil {
			status = "ERROR"
			reply = err.Error()
			errorCount++
		}

		results = append(results, []string{
			uuid.NewString(),
			row.thread,
			string(category),
			routing.RouteTo,
			reply,
			row.remarks,
			status,
			time.Now().Format(time.RFC3339),
		})
	}

	if err := writeResults(out, results); err != nil {
		logger.Fatalf(ctx, "Failed to write results: %v", err)
	}

	logger.Infof(ctx, "Evaluation complete: %d processed, %d errors, results in %s", len(results), errorCount, out)
}

type threadRow struct {
	thread  string
	remarks string
}

// readThreads reads all rows that have a non-empty Thread column.
func readThreads(path string) ([]threadRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	threadIdx, remarksIdx := -1, -1
	for i, col := range header {
		switch strings.TrimSpace(col) {
		case threadColumn:
			threadIdx = i
		case "Remarks":
			remarksIdx = i
		}
	}
	if threadIdx < 0 {
		return nil, fmt.Errorf("input CSV has no %q column", threadColumn)
	}

	var rows []threadRow
	for {
		record, err := r.Read()
		if err != nil {
			break
		}
		if threadIdx >= len(record) {
			continue
		}
		thread := strings.TrimSpace(record[threadIdx])
		if thread == "" {
			continue
		}
		row := threadRow{thread: thread}
		if remarksIdx >= 0 && remarksIdx < len(record) {
			row.remarks = strings.TrimSpace(record[remarksIdx])
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// splitThread breaks a recorded thread into context entries plus the current
// message. The last non-empty line is the message, the preceding lines form
// the thread context.
func splitThread(thread, authorID string) (string, []categorizer.ThreadMessage) {
	var lines []string
	for _, line := range strings.Split(thread, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return "", nil
	}

	message := lines[len(lines)-1]
	ctxLines := lines[:len(lines)-1]

	threadCtx := make([]categorizer.ThreadMessage, len(ctxLines))
	for i, line := range ctxLines {
		threadCtx[i] = categorizer.ThreadMessage{
			AuthorID:  authorID,
			Text:      line,
			Timestamp: fmt.Sprintf("%d", i+1),
		}
	}
	return message, threadCtx
}

func writeResults(path string, results [][]string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(outputHeader); err != nil {
		return err
	}
	for _, row := range results {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
