package domain

// Update represents one Linear project update in the domain layer.
//
// CreatedAt and UpdatedAt are kept as the raw ISO-8601 strings (UTC, trailing
// Z) the API returns rather than parsed time.Time values: the latest-per-
// project reduction compares them lexicographically, which holds only while
// every timestamp shares that single format.
type Update struct {
	ID        string
	CreatedAt string
	UpdatedAt string // empty when the API omits it
	Body      string
	URL       string
	Author    Author
	Project   Project
}

// Author is the person who wrote an update. Fetched for completeness; the
// digest pipeline does not consult it.
type Author struct {
	Name  string
	Email string
}

// EffectiveTimestamp returns UpdatedAt when non-empty, else CreatedAt, else
// the empty string.
func (u Update) EffectiveTimestamp() string {
	if u.UpdatedAt != "" {
		return u.UpdatedAt
	}
	return u.CreatedAt
}
