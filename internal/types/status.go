package types

// Status tracks the lifecycle of a persisted resource. This is distinct
// from per-entity business statuses (e.g. invoice draft/sent/paid).
type Status string

const (
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
	StatusDeleted   Status = "deleted"
)

func (s Status) String() string {
	return string(s)
}
