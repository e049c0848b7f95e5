package categorizer

// Category classifies an incoming support request.
type Category string

const (
	CategoryTechnicalIssue    Category = "technical_issue"
	CategoryFYI               Category = "fyi"
	CategoryCustomerQuery     Category = "customer_query"
	CategoryEngineeringQuery  Category = "engineering_query"
	CategoryFeatureRequest    Category = "feature_request"
	CategoryFeatureEnablement Category = "feature_enablement"
	CategoryPRReview          Category = "pr_review"
	CategoryUnknown           Category = "unknown"
)

// ThreadMessage is one entry of the surrounding thread context.
type ThreadMessage struct {
	AuthorID  string `json:"author_id"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// RoutingInfo describes where a categorized request goes and what handling
// it needs.
type RoutingInfo struct {
	Action       string   `json:"action"`
	RouteTo      string   `json:"route_to"`
	Priority     string   `json:"priority"`
	RequiredInfo []string `json:"required_info"`
}
