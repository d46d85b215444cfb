package mq

import (
	"time"
)

// DetectionEventMessage represents a detection event message
type DetectionEventMessage struct {
	EventID     string    `json:"event_id"`
	UserAgent   string    `json:"user_agent"`
	Referrer    string    `json:"referrer"`
	URL         string    `json:"url"`
	BotName     string    `json:"bot_name"`
	IsBot       bool      `json:"is_bot"`
	Score       int       `json:"score"`
	ClientScore int       `json:"client_score"`
	ObservedAt  time.Time `json:"observed_at"`
}
