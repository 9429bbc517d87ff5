package analyzer

import "errors"

// ErrUnsupportedLanguage is returned when a file's extension maps to no
// registered language. Explicit single-file requests surface it; directory
// and glob aggregation filters such files out before analysis.
var ErrUnsupportedLanguage = errors.New("unsupported language")
