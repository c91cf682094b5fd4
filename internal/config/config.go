// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	WindowTitle  = "Companion"
	TPS          = 60
	MaxDeltaTime = 0.06

	// Camera, in the same units as style spreads.
	CameraFov  = 75.0
	CameraNear = 0.1
	CameraFar  = 1000.0
	CameraZ    = 5.0

	DefaultStyle = "particles"
	FieldOpacity = 0.8

	ExplosionBurstSize      = 50
	ExplosionVelocitySpread = 0.2 // full width, so each axis is in [-0.1, 0.1]
	ExplosionDecay          = 0.02
	ExplosionInitialLife    = 1.0
	ExplosionPointSize      = 2.0

	PointerScale   = 0.0005
	FollowFraction = 0.02

	RaycastThreshold = 1.0

	MinPointPixels = 1.0

	// Style switcher panel, anchored bottom-right.
	SwitcherMargin   = 20
	SwitcherPadding  = 10
	SwitcherGap      = 8
	SwitcherButtonW  = 90
	SwitcherButtonH  = 34
	SwitcherFontSize = 14

	TranscriptLines    = 8
	TranscriptFontSize = 14
	TranscriptX        = 20
	TranscriptY        = 30
	TranscriptLineH    = 20

	ChatEndpoint = "http://localhost:5000/get-response"
	ChatTimeout  = 30 * time.Second
	ChatBacklog  = 16

	CaptureDir = "captures"
	PprofAddr  = "localhost:6060"
)

var (
	BackgroundColor     = color.RGBA{10, 10, 20, 255}
	SwitcherPanelColor  = color.RGBA{17, 17, 17, 179}
	SwitcherBorderColor = color.RGBA{255, 255, 255, 26}
	ButtonBorderColor   = color.RGBA{139, 92, 246, 77}
	ButtonActiveColor   = color.RGBA{139, 92, 246, 51}
	ButtonHoverColor    = color.RGBA{139, 92, 246, 77}
	ButtonTextColor     = color.RGBA{255, 255, 255, 255}
	TranscriptColor     = color.RGBA{240, 240, 240, 230}
)
