package paginator

const (
	DefaultPage  = 1
	DefaultLimit = 20
	// MaxLimit caps a single list query.
	MaxLimit = 100
)
