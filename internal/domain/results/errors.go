package results

import "errors"

// ErrNoStoredAnalysis indicates report generation was requested for a user
// with no stored analysis and no fresh text to analyze.
var ErrNoStoredAnalysis = errors.New("no stored analysis for user")
