package constants

import "time"

// Crank Click Timing
const (
	ClickDuration = 12 * time.Millisecond
	ClickAttack   = 1 * time.Millisecond
	ClickRelease  = 8 * time.Millisecond

	// ClickFrequency is the square tone pitch in Hz
	ClickFrequency = 2200

	// MaxClicksPerFrame caps detents voiced from one fast crank sweep
	MaxClicksPerFrame = 3

	// ClickSpacing separates consecutive clicks of one sweep
	ClickSpacing = 15 * time.Millisecond
)
