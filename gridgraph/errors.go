package gridgraph

import "errors"

// ErrShape indicates a grid (or a wall array describing one) whose dimensions
// are not usable: width or height below 1, or rows of the wrong length.
var ErrShape = errors.New("gridgraph: invalid grid shape")
