package domain

// UnlockItem is the unlock status of one item for a user.
type UnlockItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Unlocked  bool   `json:"unlocked"`
	Timestamp int64  `json:"timestamp"`
}
