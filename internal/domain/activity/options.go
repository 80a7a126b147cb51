package activity

// ListOptions narrows the activity log. Nil filters match everything.
type ListOptions struct {
	EntryID *string
	Type    *ActivityType
	Limit   int
	Offset  int
}
