package types

// Legality holds the four derived "allowed" flags pushed to the view.
type Legality struct {
	Subtract bool `json:"subtract"`
	Divide   bool `json:"divide"`
	Power    bool `json:"power"`
	Root     bool `json:"root"`
}

// Allows reports whether op may run under l. Ungated operations are always allowed.
func (l Legality) Allows(op Operation) bool {
	switch op {
	case OpSubtract:
		return l.Subtract
	case OpDivide:
		return l.Divide
	case OpPower:
		return l.Power
	case OpRoot:
		return l.Root
	}
	return true
}

// Snapshot is the display-ready state last pushed to a view.
type Snapshot struct {
	Top      string   `json:"top"`
	Bottom   string   `json:"bottom"`
	Legality Legality `json:"allowed"`
}
