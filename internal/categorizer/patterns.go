package categorizer

import "regexp"

// categoryPatterns maps each category to its keyword patterns. Declaration
// order is the tie-break order: when two categories score equally, the one
// listed first wins.
var categoryPatterns = []struct {
	category Category
	patterns []*regexp.Regexp
}{
	{CategoryTechnicalIssue, compilePatterns(
		`\b(error|bug|issue|problem|fail|broken|crash|not working)\b`,
		`\b(stack trace|exception|timeout|500|404|502|503)\b`,
		`\b(debug|troubleshoot|investigate)\b`,
		`\b(reproduce|repro|steps)\b`,
	)},
	{CategoryFYI, compilePatterns(
		`\bfyi\b`,
		`\bfor your information\b`,
		`\bheads up\b`,
		`\bjira\b.*\b(ticket|issue)\b`,
		`\bupdate\b.*\bon\b`,
		`\bjust wanted to let you know\b`,
	)},
	{CategoryCustomerQuery, compilePatterns(
		`\bcustomer\b.*\b(ask|question|query|request)\b`,
		`\bclient\b.*\b(ask|question|query|request)\b`,
		`\buser\b.*\b(ask|question|query|request)\b`,
		`\bhow\s+do\s+customers?\b`,
		`\bcan\s+customers?\b`,
	)},
	{CategoryEngineeringQuery, compilePatterns(
		`\binternal\b.*\b(team|query|question)\b`,
		`\bengineering\b.*\b(team|query|question)\b`,
		`\bconfluence\b`,
		`\bdf-owned\b`,
		`\bdf\s+owned\b`,
		`\bknowledge\s+transfer\b`,
		`\bkt\s+docs?\b`,
	)},
	{CategoryFeatureRequest, compilePatterns(
		`\bnew\s+feature\b`,
		`\bfeature\s+request\b`,
		`\bcustomer\b.*\b(want|need|request)\b.*\bfeature\b`,
		`\bcan\s+we\s+add\b`,
		`\bwould\s+it\s+be\s+possible\b`,
		`\benhancement\b`,
	)},
	{CategoryFeatureEnablement, compilePatterns(
		`\benable\b.*\bfeature\b`,
		`\bfeature\b.*\b(enable|activation|turn\s+on)\b`,
		`\bvalidate\b.*\bfeature\s+support\b`,
		`\bfeature\s+flag\b`,
		`\btoggle\b.*\bfeature\b`,
	)},
	{CategoryPRReview, compilePatterns(
		`\bpr\s+review\b`,
		`\bpull\s+request\b.*\breview\b`,
		`\bcode\s+review\b`,
		`\breview\b.*\bpr\b`,
		`\bmobile-pr-reviews\b`,
	)},
}

func compilePatterns(exprs ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(exprs))
	for i, expr := range exprs {
		compiled[i] = regexp.MustCompile(`(?i)` + expr)
	}
	return compiled
}
