package oracle

// #region result

// Result is the immutable outcome of one decision.
type Result struct {
	Decision        int     // 0 or 1
	Answer          string  // "Yes" mirrors 1, "No" mirrors 0
	RawValue        float64 // pre-threshold value in [0,1)
	EntropySources  int     // distinct entropy fragments used
	ChaosIterations int     // echo of the configuration
}

// #endregion result
