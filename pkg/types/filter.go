package types

// Filter represents query parameters for filtering and pagination.
// Page нумеруется с единицы; Offset всегда согласован с Page и PerPage.
type Filter struct {
	Search  string                 `json:"search,omitempty"`
	Filter  map[string]interface{} `json:"filter,omitempty"`
	Page    int                    `json:"page"`
	PerPage int                    `json:"per_page"`
	Offset  int                    `json:"offset"`
}

// Pagination represents pagination metadata of a list response.
type Pagination struct {
	Total       uint64 `json:"total"`
	Pages       int    `json:"pages"`
	CurrentPage int    `json:"current_page"`
	PerPage     int    `json:"per_page"`
}
