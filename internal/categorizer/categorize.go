package categorizer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"support-triage-bot/pkg/llm"
)

// categoryTokens maps model reply fragments to categories. Scanned in order,
// so the underscore form is tried before the spaced form and unknown last.
var categoryTokens = []struct {
	token    string
	category Category
}{
	{"technical_issue", CategoryTechnicalIssue},
	{"technical issue", CategoryTechnicalIssue},
	{"fyi", CategoryFYI},
	{"customer_query", CategoryCustomerQuery},
	{"customer query", CategoryCustomerQuery},
	{"engineering_query", CategoryEngineeringQuery},
	{"engineering query", CategoryEngineeringQuery},
	{"feature_request", CategoryFeatureRequest},
	{"feature request", CategoryFeatureRequest},
	{"feature_enablement", CategoryFeatureEnablement},
	{"feature enablement", CategoryFeatureEnablement},
	{"pr_review", CategoryPRReview},
	{"pr review", CategoryPRReview},
	{"unknown", CategoryUnknown},
}

// Categorize classifies a request using the pattern stage and, when a model
// is provided, a model-backed stage. The model's verdict wins whenever it is
// not unknown; model failures fall back to the pattern verdict. Never errors.
func (c *RequestCategorizer) Categorize(ctx context.Context, text string, threadCtx []ThreadMessage, model llm.Model) Category {
	patternCategory := c.classifyWithPatterns(text, threadCtx)

	if model == nil {
		return patternCategory
	}

	modelCategory, err := c.classifyWithModel(ctx, text, threadCtx, model)
	if err != nil {
		c.l.Errorf(ctx, "%s: model classification failed: %v, falling back to patterns", LogPrefixCategorize, err)
		return patternCategory
	}
	if modelCategory == CategoryUnknown {
		return patternCategory
	}

	if patternCategory != CategoryUnknown && patternCategory != modelCategory {
		c.l.Infof(ctx, "%s: classification mismatch, model: %s, patterns: %s, using model", LogPrefixCategorize, modelCategory, patternCategory)
	} else {
		c.l.Infof(ctx, "%s: model classification: %s (patterns: %s)", LogPrefixCategorize, modelCategory, patternCategory)
	}
	return modelCategory
}

// classifyWithPatterns scores every category's patterns against the message
// and thread context. The strictly highest score wins; ties resolve to the
// category declared first in the pattern table.
func (c *RequestCategorizer) classifyWithPatterns(text string, threadCtx []ThreadMessage) Category {
	best := CategoryUnknown
	bestScore := 0.0

	for _, entry := range categoryPatterns {
		score := 0.0
		for _, re := range entry.patterns {
			score += float64(len(re.FindAllStringIndex(text, -1))) * messageMatchWeight
			for _, msg := range threadCtx {
				score += float64(len(re.FindAllStringIndex(msg.Text, -1))) * threadMatchWeight
			}
		}
		if score > bestScore {
			best = entry.category
			bestScore = score
		}
	}

	return best
}

func (c *RequestCategorizer) classifyWithModel(ctx context.Context, text string, threadCtx []ThreadMessage, model llm.Model) (Category, error) {
	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: c.buildClassificationPrompt(threadCtx)},
		{Role: llm.RoleUser, Content: "Categorize this request: " + text},
	}

	resp, err := model.Generate(ctx, messages, &llm.Options{
		Temperature: ClassifyTemperature,
		MaxTokens:   ClassifyMaxTokens,
	})
	if err != nil {
		return CategoryUnknown, fmt.Errorf("%s: %w", LogPrefixCategorize, err)
	}

	category := parseCategory(resp.Content)
	if category == CategoryUnknown {
		c.l.Warnf(ctx, "%s: could not parse model reply: %q", LogPrefixCategorize, resp.Content)
	}
	return category, nil
}

// buildClassificationPrompt loads the classification prompt and appends the
// most recent thread entries as context.
func (c *RequestCategorizer) buildClassificationPrompt(threadCtx []ThreadMessage) string {
	base := c.prompts.LoadOr(ClassificationPromptName, FallbackClassificationPrompt)

	if len(threadCtx) == 0 {
		return base
	}

	var sb strings.Builder
	sb.WriteString(base)
	sb.WriteString("\n\n**Thread Context:**\n")

	start := len(threadCtx) - ClassifyContextWindow
	if start < 0 {
		start = 0
	}
	for i, msg := range threadCtx[start:] {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, msg.Text)
	}
	return sb.String()
}

// parseCategory extracts a category from a model reply: first a token scan,
// then a JSON object with a "category" field, else unknown.
func parseCategory(reply string) Category {
	lowered := strings.ToLower(strings.TrimSpace(reply))

	for _, entry := range categoryTokens {
		if strings.Contains(lowered, entry.token) {
			return entry.category
		}
	}

	open := strings.Index(lowered, "{")
	closing := strings.LastIndex(lowered, "}")
	if open >= 0 && closing > open {
		var parsed struct {
			Category string `json:"category"`
		}
		if err := json.Unmarshal([]byte(lowered[open:closing+1]), &parsed); err == nil {
			for _, entry := range categoryTokens {
				if entry.token == strings.ToLower(parsed.Category) {
					return entry.category
				}
			}
		}
	}

	return CategoryUnknown
}
