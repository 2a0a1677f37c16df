package parameter

import "time"

// Viewer - Timing
const (
	// ViewerFrameInterval is the redraw period of the terminal viewer (~60 FPS)
	ViewerFrameInterval = 16 * time.Millisecond

	// ViewerEventBuffer is the capacity of the terminal event channel
	ViewerEventBuffer = 100
)

// Viewer - Controls
const (
	// ViewerFillStep is the fill factor change per +/- keypress
	ViewerFillStep = 0.05

	// ViewerDiameterStep is the diameter factor change per [ / ] keypress
	ViewerDiameterStep = 0.01

	// ViewerDiameterFactorMin/Max clamp the diameter factor adjustable from the keyboard
	ViewerDiameterFactorMin = 0.02
	ViewerDiameterFactorMax = 0.6
)

// Viewer - Audio
const (
	// ViewerSampleRate is the speaker sample rate in Hz
	ViewerSampleRate = 44100

	// ViewerToneDuration is the length of the regeneration cue
	ViewerToneDuration = 50 * time.Millisecond

	// ViewerToneBaseHz/SpanHz map fill factor 0..1 to cue pitch
	ViewerToneBaseHz = 440
	ViewerToneSpanHz = 880
)
