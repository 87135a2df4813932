package extraction

import "errors"

// ErrEmptyDocument indicates the uploaded document yielded no usable text.
// Surfaced to clients as a bad request; the analyzer is never invoked.
var ErrEmptyDocument = errors.New("document contains no extractable text")
