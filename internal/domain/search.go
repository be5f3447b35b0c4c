package domain

// SearchRequest represents a storefront search request
type SearchRequest struct {
	Query    string `json:"query" form:"q"`
	Category string `json:"category,omitempty" form:"category"` // quick-filter button, exact match
}

// SearchResult is the filtered catalog together with how the query was read
type SearchResult struct {
	Query    string      `json:"query"`
	Parsed   ParsedQuery `json:"parsed"`
	Products []Product   `json:"products"`
	Total    int         `json:"total"`
}
