package models

// Transport mode labels emitted by the classifier
const (
	ModeCar     = "car"
	ModeBus     = "bus"
	ModeTram    = "tram"
	ModeMetro   = "metro"
	ModeFlight  = "flight"
	ModeBike    = "bike"
	ModeWalk    = "walk"
	ModeUnknown = "unknown"
)

// Prediction is the normalized classification result returned to the
// caller, regardless of whether it came from the live classifier or the
// mock path
type Prediction struct {
	Mode                  string   `json:"mode"`
	Confidence            float64  `json:"confidence"`
	NeedsVerification     bool     `json:"needsVerification"`
	Alternatives          []string `json:"alternatives"`
	ProcessingTimeMs      int64    `json:"processingTime"`
	SamplesProcessed      int      `json:"samplesProcessed"`
	WindowDurationSeconds int      `json:"windowDurationSeconds"`
}
