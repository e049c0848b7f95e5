package categorizer

// routingTable holds the routing record for every known category.
var routingTable = map[Category]RoutingInfo{
	CategoryTechnicalIssue: {
		Action:   "validate_and_triage",
		RouteTo:  "ops_debugging",
		Priority: "high",
		RequiredInfo: []string{
			"Problem description",
			"Steps to reproduce",
			"Expected vs actual behavior",
			"Environment details",
			"Error messages/logs",
		},
	},
	CategoryFYI: {
		Action:       "acknowledge",
		RouteTo:      "ops_team",
		Priority:     "low",
		RequiredInfo: []string{},
	},
	CategoryCustomerQuery: {
		Action:       "route_to_product",
		RouteTo:      "df_product",
		Priority:     "medium",
		RequiredInfo: []string{"Customer context", "Specific query details"},
	},
	CategoryEngineeringQuery: {
		Action:       "respond_directly",
		RouteTo:      "df_ops",
		Priority:     "medium",
		RequiredInfo: []string{"Technical context", "Component details"},
	},
	CategoryFeatureRequest: {
		Action:       "verify_and_route",
		RouteTo:      "df_product",
		Priority:     "medium",
		RequiredInfo: []string{"Customer demand details", "Feature description"},
	},
	CategoryFeatureEnablement: {
		Action:       "verify_and_route",
		RouteTo:      "df_product",
		Priority:     "medium",
		RequiredInfo: []string{"Feature details", "Support validation"},
	},
	CategoryPRReview: {
		Action:       "redirect",
		RouteTo:      "mobile_pr_reviews",
		Priority:     "low",
		RequiredInfo: []string{},
	},
}

// RoutingFor returns the routing record for a category. Unmapped categories
// get a generic acknowledge record, so the lookup is total.
func RoutingFor(category Category) RoutingInfo {
	if info, ok := routingTable[category]; ok {
		return info
	}
	return RoutingInfo{
		Action:       "acknowledge",
		RouteTo:      "ops_team",
		Priority:     "medium",
		RequiredInfo: []string{},
	}
}
