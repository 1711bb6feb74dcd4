package domain

// ItemDependency records that one tracking item must finish before another
// starts. Stored and listed only; no float/slack computation is derived.
type ItemDependency struct {
	PredecessorItemID string
	SuccessorItemID   string
}
