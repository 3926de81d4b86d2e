package paginator

// Query carries the page/limit pair of a list request.
type Query struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// Page is the pagination metadata returned alongside a list.
type Page struct {
	Total      int64 `json:"total"`
	Count      int   `json:"count"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}
