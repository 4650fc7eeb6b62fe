package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Text fragments
const (
	LabelSuffix      = ":"
	SummarySeparator = " = "
)

// Layout sizing
const (
	NumericEntryWidth   float32 = 100
	RevealButtonWidth   float32 = 55
	TextAreaRows                = 6
	FormMinWidth        float32 = 420
	FormMinHeight       float32 = 480
	FieldSpacingDesktop float32 = 8

	// Mobile-specific sizing
	FieldSpacingMobile float32 = 16
)

// Window defaults
const (
	WindowWidth  float32 = 560
	WindowHeight float32 = 720
)

// Notification behavior
const (
	NotificationAutoHide = 4 * time.Second
)
