package chaos

// #region mix-state

// MixState carries the value being mixed through the cascade plus the
// lagged companion consumed by the Hénon and Arnold maps. Never shared
// across concurrent decisions.
type MixState struct {
	Value      float64 // current mix value in [0,1)
	Lag        float64 // lag-1 companion, also kept in [0,1)
	Iterations int     // map applications performed so far
}

// #endregion mix-state
