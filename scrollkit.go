// Package scrollkit is a scroll interaction core for retained-mode
// scene-graph UIs. The subpackages provide position capping, drag
// tracking, inertial scroll physics, hotkey direction tracking, and the
// scrollbar and scrollable components that fuse them into one scroll
// position.
package scrollkit

import "errors"

// ErrInvalidInput is returned by component constructors when settings
// are missing or malformed. Construction does not proceed.
var ErrInvalidInput = errors.New("invalid input")
