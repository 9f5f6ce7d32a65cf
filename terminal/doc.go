// Package terminal presents the simulated device in a tcell screen.
//
// Features:
//   - Quadrant block rendering of the 1-bit panel (2x2 sub-pixels per cell)
//   - Held-button emulation from key press and repeat events
//   - Crank turning with the mouse wheel or bound crank keys
//   - Status line with frame, fps, crank and held buttons
//
// Terminals report no key releases, so a bound key counts as held until
// Options.HoldTimeout passes without a press or repeat event for it.
package terminal
