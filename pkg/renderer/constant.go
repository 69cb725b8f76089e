package renderer

import "time"

const (
	// contentTimeout bounds one page load + render.
	contentTimeout = 60 * time.Second

	// A4 paper size in inches.
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
)
