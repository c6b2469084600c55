package history

import "time"

// #region entry

// Entry is one persisted decision row.
type Entry struct {
	ID              string
	Decision        int
	Answer          string
	RawValue        float64
	EntropySources  int
	ChaosIterations int
	CreatedAt       time.Time
}

// #endregion entry

// #region tally

// Tally aggregates the stored decisions.
type Tally struct {
	Total int
	Yes   int
	No    int
}

// #endregion tally
