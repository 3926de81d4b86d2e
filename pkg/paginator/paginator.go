package paginator

// Normalize replaces out of range values with defaults and caps the limit.
func (q *Query) Normalize() {
	if q.Page < 1 {
		q.Page = DefaultPage
	}

	switch {
	case q.Limit < 1:
		q.Limit = DefaultLimit
	case q.Limit > MaxLimit:
		q.Limit = MaxLimit
	}
}

// Offset is the row offset of the first item on the page. Call Normalize first.
func (q Query) Offset() int {
	if q.Page < 1 {
		return 0
	}
	return (q.Page - 1) * q.Limit
}

// NewPage builds the metadata for a page holding count items out of total.
func NewPage(q Query, total int64, count int) Page {
	p := Page{
		Total: total,
		Count: count,
		Page:  q.Page,
		Limit: q.Limit,
	}
	if q.Limit > 0 && total > 0 {
		p.TotalPages = int((total + int64(q.Limit) - 1) / int64(q.Limit))
	}
	p.HasNext = p.Page < p.TotalPages
	p.HasPrev = p.Page > 1
	return p
}
