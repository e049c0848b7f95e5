package categorizer

import (
	"context"
	"strings"
)

// Note text injected into templates when the message mentions the related
// system or component.
const (
	jiraNote       = "I see this relates to a Jira ticket. I'll track any follow-up actions needed."
	confluenceNote = "I'll check our Confluence documentation for relevant context."
	dfOwnedNote    = "This relates to DF-owned components. I'll provide technical guidance."
)

// fallbackResponses cover a missing template file.
var fallbackResponses = map[Category]string{
	CategoryTechnicalIssue:    "🔧 I'm triaging this technical issue and will validate the debugging information.",
	CategoryFYI:               "📋 Thank you for the update. I've noted this information.",
	CategoryCustomerQuery:     "👥 This appears to be a customer-related query. Routing to the Product team for review.",
	CategoryEngineeringQuery:  "⚙️ I'll handle this internal engineering query directly.",
	CategoryFeatureRequest:    "✨ I've identified this as a new feature request. Routing to the Product team for evaluation.",
	CategoryFeatureEnablement: "🔧 I'll validate feature support and coordinate enablement.",
	CategoryPRReview:          "🔀 Code review requests should be posted in `#mobile-pr-reviews`.",
	CategoryUnknown:           "🤔 I'm analyzing your request to determine the best routing and action. Please clarify the type of request if needed.",
}

// RenderResponse produces the acknowledgement message for a categorized
// request. Templates are resolved per category with placeholder substitution;
// a missing template falls back to a built-in one-liner.
func (c *RequestCategorizer) RenderResponse(ctx context.Context, category Category, text string) string {
	tmpl, ok := c.templates.Load(string(category))
	if !ok {
		c.l.Warnf(ctx, "%s: missing template for %s, using fallback", LogPrefixRender, category)
		if fb, found := fallbackResponses[category]; found {
			return fb
		}
		return fallbackResponses[CategoryUnknown]
	}

	info := RoutingFor(category)
	lowered := strings.ToLower(text)

	replacer := strings.NewReplacer(
		"{priority}", Humanize(info.Priority),
		"{route_to}", Humanize(info.RouteTo),
		"{action}", Humanize(info.Action),
		"{missing_info_list}", missingInfoBlock(category, lowered),
		"{jira_note}", noteIf(strings.Contains(lowered, "jira"), jiraNote),
		"{confluence_note}", noteIf(strings.Contains(lowered, "confluence"), confluenceNote),
		"{df_owned_note}", noteIf(strings.Contains(lowered, "df-owned") || strings.Contains(lowered, "df owned"), dfOwnedNote),
	)
	return replacer.Replace(tmpl)
}

// MissingDebugInfo reports which required debugging details a technical
// issue report does not mention.
func MissingDebugInfo(text string) []string {
	lowered := strings.ToLower(text)

	var missing []string
	if !strings.Contains(lowered, "reproduce") && !strings.Contains(lowered, "repro") {
		missing = append(missing, "Steps to reproduce")
	}
	if !strings.Contains(lowered, "error") && !strings.Contains(lowered, "exception") {
		missing = append(missing, "Error messages/logs")
	}
	if !strings.Contains(lowered, "environment") && !strings.Contains(lowered, "version") {
		missing = append(missing, "Environment details")
	}
	return missing
}

// missingInfoBlock renders the missing-information section for technical
// issues, or empty when nothing is missing.
func missingInfoBlock(category Category, lowered string) string {
	if category != CategoryTechnicalIssue {
		return ""
	}
	missing := MissingDebugInfo(lowered)
	if len(missing) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("⚠️ **Missing Information:**\n")
	for _, info := range missing {
		sb.WriteString("• " + info + "\n")
	}
	sb.WriteString("\nPlease provide the missing details for proper debugging. ")
	sb.WriteString("The complete debugging format is available in the channel description.\n\n")
	return sb.String()
}

func noteIf(cond bool, note string) string {
	if cond {
		return note + "\n\n"
	}
	return ""
}

// Humanize turns an identifier like "ops_debugging" into "Ops Debugging".
func Humanize(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
