package dpt

import "errors"

// Cancelled is returned by Decompose when the supplied context is done
// before the decomposition reaches a single remaining region. The
// Emitter already built is still valid and holds every pulse extracted
// up to the area boundary where cancellation was observed.
var Cancelled = errors.New("dpt: decomposition cancelled")
