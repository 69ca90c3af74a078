package database

import "strconv"

// SortDateDesc is the one recognized sort parameter value: newest event
// date first. Anything else means insertion order.
const SortDateDesc = "date_desc"

// ListQuery is the plan consumed by ListItems. The zero value means
// insertion order, unbounded.
type ListQuery struct {
	DateDesc bool
	Limit    int // 0 = unbounded
}

// BuildListQuery translates raw sort/limit request parameters into a
// query plan. It never fails: unrecognized sorts and unparseable or
// negative limits degrade to the defaults.
func BuildListQuery(sort, limit string) ListQuery {
	q := ListQuery{DateDesc: sort == SortDateDesc}
	if n, err := strconv.Atoi(limit); err == nil && n > 0 {
		q.Limit = n
	}
	return q
}
