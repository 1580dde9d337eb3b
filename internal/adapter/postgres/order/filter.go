package order

import sq "github.com/Masterminds/squirrel"

const (
	defaultLimit = 50
	maxLimit     = 200
)

// Filter defines parameters for listing orders on the admin surface.
type Filter struct {
	// CustomerPhone restricts to orders placed by one customer.
	CustomerPhone string

	// NotifiedRecipient restricts to orders whose dispatch attempt covered
	// the given shopkeeper phone.
	NotifiedRecipient string

	// Status restricts to one lifecycle status. Empty means all.
	Status string

	// Limit is the maximum number of orders to return. Default: 50, max: 200.
	Limit int

	// Offset is the number of orders to skip.
	Offset int
}

// normalize applies defaults and clamps values.
func (f *Filter) normalize() {
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}

// apply adds the filter's WHERE clauses to a select builder.
func (f Filter) apply(b sq.SelectBuilder) sq.SelectBuilder {
	if f.CustomerPhone != "" {
		b = b.Where(sq.Eq{"customer_phone": f.CustomerPhone})
	}
	if f.NotifiedRecipient != "" {
		b = b.Where("? = ANY(notified_recipients)", f.NotifiedRecipient)
	}
	if f.Status != "" {
		b = b.Where(sq.Eq{"status": f.Status})
	}
	return b
}
