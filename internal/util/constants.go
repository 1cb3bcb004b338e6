// Package util provides small helpers shared by the GUI and CLI frontends.
//
// This package contains:
//   - Bounded truncation of process output for user-facing messages
//   - Input selection summaries for display fields
//   - Elapsed-time formatting for batch reports
//   - Color constants for status messages
//
// All utilities are stateless and thread-safe.
package util

import "image/color"

// DefaultTruncateLimit bounds each excerpt embedded in a notification.
const DefaultTruncateLimit = 200

// Ellipsis is appended to truncated excerpts.
const Ellipsis = "..."

// Color constants for UI status messages
var (
	WHITE  = color.RGBA{0xff, 0xff, 0xff, 0xff}
	RED    = color.RGBA{0xff, 0x00, 0x00, 0xff}
	GREEN  = color.RGBA{0x00, 0xff, 0x00, 0xff}
	YELLOW = color.RGBA{0xcc, 0x70, 0x00, 0xff} // Dark amber for better readability
)
