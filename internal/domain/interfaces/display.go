package interfaces

import "nncalc/internal/natural"

// Display is the outbound view contract. The engine calls every method once
// after each transition. Values handed to UpdateTopDisplay and
// UpdateBottomDisplay are copies the display may keep.
type Display interface {
	UpdateTopDisplay(n *natural.Natural)
	UpdateBottomDisplay(n *natural.Natural)
	UpdateSubtractAllowed(allowed bool)
	UpdateDivideAllowed(allowed bool)
	UpdatePowerAllowed(allowed bool)
	UpdateRootAllowed(allowed bool)
}
