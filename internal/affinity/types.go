package affinity

import "errors"

// ErrBadCPU indicates a negative CPU index was requested.
var ErrBadCPU = errors.New("affinity: cpu index must be non-negative")
