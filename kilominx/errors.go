package kilominx

import "errors"

// ErrBadMove reports an unparseable move token or an out-of-range Move.
var ErrBadMove = errors.New("kilominx: bad move")
