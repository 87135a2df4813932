package analysis

import "errors"

// ErrQuotaExceeded indicates the AI provider returned a quota/limit error (HTTP 429 or similar).
var ErrQuotaExceeded = errors.New("ai quota exceeded")

// ErrAnalysisFailed indicates the LLM call failed or returned output that
// could not be parsed into a Record. No partial record is persisted.
var ErrAnalysisFailed = errors.New("analysis failed")

// ErrUpstreamUnavailable indicates an external call timed out or the
// upstream was unreachable; the request is retriable.
var ErrUpstreamUnavailable = errors.New("upstream unavailable")
