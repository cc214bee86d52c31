package models

// SyncSnapshot is the status a UI indicator polls from the reconciler.
type SyncSnapshot struct {
	IsSyncing    bool `json:"isSyncing"`
	PendingCount int  `json:"pendingCount"`
	HasAutoSync  bool `json:"hasAutoSync"`
}

// PassSummary reports the outcome of one reconciliation pass.
type PassSummary struct {
	// Skipped is true when the pass did not run because another pass held
	// the guard.
	Skipped bool `json:"skipped"`
	// Reachable is false when the availability check failed.
	Reachable bool `json:"reachable"`

	Attempted  int `json:"attempted"`
	Synced     int `json:"synced"`
	Duplicates int `json:"duplicates"`
	Failed     int `json:"failed"`
}

// NewlySynced counts items that left the unsynced set during the pass.
func (s PassSummary) NewlySynced() int {
	return s.Synced + s.Duplicates
}
