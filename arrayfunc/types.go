package arrayfunc

import "github.com/cwbudde/algo-arrayfunc/arraylimits"

// Element type constraints, re-exported from arraylimits.
type (
	Number   = arraylimits.Number
	Integer  = arraylimits.Integer
	Signed   = arraylimits.Signed
	Unsigned = arraylimits.Unsigned
	Float    = arraylimits.Float
)
