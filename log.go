package chess

import "go.uber.org/zap"

// logger receives non-fatal warnings raised deep inside library code that
// has no error return to surface them through, e.g. a single malformed
// game inside an otherwise-healthy PGN database scan. Defaults to a no-op
// so callers that never call SetLogger pay nothing.
var logger = zap.NewNop()

// SetLogger installs l as the package-wide warning logger. Passing nil
// restores the no-op default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
