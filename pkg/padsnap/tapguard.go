package padsnap

const tapGuardUnarmed = ^uint64(0)

// TapGuard suppresses the one synthesized pointer click that mirrors a
// button-driven activation, so the action cannot fire twice in a frame.
// Hosts that simulate a click after Confirm ask Suppress from their click
// handler; clicks on any other tick pass through untouched.
type TapGuard struct {
	armedTick uint64
}

// NewTapGuard returns an unarmed guard.
func NewTapGuard() TapGuard {
	return TapGuard{armedTick: tapGuardUnarmed}
}

// Arm marks tick as carrying a synthesized click.
func (g *TapGuard) Arm(tick uint64) {
	g.armedTick = tick
}

// Suppress reports whether a click arriving at tick should be dropped, and
// consumes the armed state when it matches. At most one click is ever
// suppressed per Arm.
func (g *TapGuard) Suppress(tick uint64) bool {
	if g.armedTick != tapGuardUnarmed && g.armedTick == tick {
		g.armedTick = tapGuardUnarmed
		return true
	}
	return false
}

// Armed reports whether a suppression is pending.
func (g *TapGuard) Armed() bool {
	return g.armedTick != tapGuardUnarmed
}

// Disarm clears any pending suppression.
func (g *TapGuard) Disarm() {
	g.armedTick = tapGuardUnarmed
}
