package categorizer

// Log prefixes
const (
	LogPrefixCategorize = "internal.categorizer.Categorize"
	LogPrefixRender     = "internal.categorizer.RenderResponse"
)

// Classification call tuning
const (
	ClassifyTemperature   = 0.1
	ClassifyMaxTokens     = 1024
	ClassifyContextWindow = 3
)

// Asset names resolved through the loaders
const (
	ClassificationPromptName = "request_categorization"
)

// FallbackClassificationPrompt is used when the prompt asset is missing.
const FallbackClassificationPrompt = `You are an expert at categorizing customer engineering requests.
Categorize the following request as: TECHNICAL_ISSUE, FYI, CUSTOMER_QUERY, ENGINEERING_QUERY,
FEATURE_REQUEST, FEATURE_ENABLEMENT, PR_REVIEW, or UNKNOWN.`

// Scoring weights for the pattern stage. Matches in the message itself count
// full weight, matches in surrounding thread context count half.
const (
	messageMatchWeight = 1.0
	threadMatchWeight  = 0.5
)
