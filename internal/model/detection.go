package model

import (
	"time"
)

// DetectionEvent is a persisted finalized detection session
type DetectionEvent struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	EventID     string    `json:"event_id" gorm:"type:varchar(36);uniqueIndex;not null"`
	UserAgent   string    `json:"user_agent" gorm:"type:varchar(512)"`
	Referrer    string    `json:"referrer" gorm:"type:varchar(512)"`
	URL         string    `json:"url" gorm:"type:varchar(2048)"`
	BotName     string    `json:"bot_name" gorm:"type:varchar(255);index"`
	IsBot       bool      `json:"is_bot" gorm:"index"`
	Score       int       `json:"score"`
	ClientScore int       `json:"client_score"`
	ObservedAt  time.Time `json:"observed_at" gorm:"index"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName returns the table name for DetectionEvent
func (DetectionEvent) TableName() string {
	return "detection_events"
}

// PointerSample is one timestamped pointer position from the client
type PointerSample struct {
	X    int   `json:"x"`
	Y    int   `json:"y"`
	Time int64 `json:"time"`
}

// FeatureFlags carries declared browser capability probes
type FeatureFlags struct {
	HasWebGL          bool `json:"hasWebGL"`
	HasCanvas         bool `json:"hasCanvas"`
	HasSessionStorage bool `json:"hasSessionStorage"`
	HasLocalStorage   bool `json:"hasLocalStorage"`
	HasPlugins        bool `json:"hasPlugins"`
	HasTouch          bool `json:"hasTouch"`
	HasChromeRuntime  bool `json:"hasChromeRuntime"`
	HasInstallTrigger bool `json:"hasInstallTrigger"`
	HasSafariPush     bool `json:"hasSafariPush"`
}

// FingerprintData carries canvas/WebGL/font probe results
type FingerprintData struct {
	CanvasBlank   bool     `json:"canvasBlank"`
	CanvasError   bool     `json:"canvasError"`
	CanvasHash    string   `json:"canvasHash,omitempty"`
	WebGLRenderer string   `json:"webglRenderer,omitempty"`
	Fonts         []string `json:"fonts"`
}

// BehaviorMetrics carries the behavioral observation window
type BehaviorMetrics struct {
	PointerSamples         []PointerSample `json:"pointerSamples"`
	InteractionEvents      int             `json:"interactionEvents"`
	ScrollPercentage       float64         `json:"scrollPercentage"`
	ScrollDirectionChanges int             `json:"scrollDirectionChanges"`
}

// LogVisitRequest is the fire-and-forget classification payload sent by
// the client once a detection session finalizes
type LogVisitRequest struct {
	UserAgent   string          `json:"userAgent"`
	Timestamp   int64           `json:"timestamp"`
	Referrer    string          `json:"referrer"`
	URL         string          `json:"url"`
	BotScore    int             `json:"botScore"`
	Features    FeatureFlags    `json:"featureDetection"`
	Fingerprint FingerprintData `json:"fingerprinting"`
	Behavior    BehaviorMetrics `json:"behaviorMetrics"`
	Honeypot    int             `json:"honeypotInteractions"`
}

// LogVisitResponse acknowledges an ingested classification event
type LogVisitResponse struct {
	Success bool   `json:"success"`
	IsBot   bool   `json:"is_bot"`
	Score   int    `json:"score"`
	EventID string `json:"event_id"`
}
