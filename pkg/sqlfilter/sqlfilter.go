package sqlfilter

import "strings"

// Filter collects AND-ed predicates written with ? placeholders. Pass the final
// query through sqlx's Rebind to get the driver's placeholder style.
type Filter struct {
	conds []string
	args  []any
}

// Add appends cond with its args. cond must hold one ? per arg.
func (f *Filter) Add(cond string, args ...any) {
	f.conds = append(f.conds, cond)
	f.args = append(f.args, args...)
}

// AddIf calls Add when ok is true.
func (f *Filter) AddIf(ok bool, cond string, args ...any) {
	if ok {
		f.Add(cond, args...)
	}
}

// Where returns " WHERE a AND b", or "" when nothing was added.
func (f Filter) Where() string {
	if len(f.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(f.conds, " AND ")
}

// Args returns a copy of the collected args, safe to append to.
func (f Filter) Args() []any {
	out := make([]any, len(f.args), len(f.args)+2)
	copy(out, f.args)
	return out
}
