package style

import "errors"

var (
	errInconsistentGridAreaWidth = errors.New("style: grid-template-areas rows have inconsistent column counts")
	errNonRectangularGridArea    = errors.New("style: grid-template-areas area is not a rectangle")
)
