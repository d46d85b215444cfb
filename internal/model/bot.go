package model

import (
	"time"
)

// BotPattern is a canonical bot identifier matched against user agents
// by case-insensitive substring containment.
type BotPattern struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// AccessDecision is the per-request result of the decision engine.
// It is never persisted.
type AccessDecision struct {
	MatchedBot string `json:"matched_bot,omitempty"`
	Blocked    bool   `json:"blocked"`
}

// DailyCount represents aggregated traffic for one bot on one calendar
// day. At most one row exists per (bot_name, date_recorded) pair.
type DailyCount struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	BotName      string    `json:"bot_name" gorm:"type:varchar(255);uniqueIndex:idx_bot_date;not null"`
	DateRecorded string    `json:"date_recorded" gorm:"type:date;uniqueIndex:idx_bot_date;not null"`
	HitCount     int64     `json:"hit_count" gorm:"not null;default:1"`
	BlockedCount int64     `json:"blocked_count" gorm:"not null;default:0"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName returns the table name for DailyCount
func (DailyCount) TableName() string {
	return "bot_daily_counts"
}

// Setting is a persisted key/value configuration entry
type Setting struct {
	Key       string    `json:"key" gorm:"primaryKey;type:varchar(64)"`
	Value     string    `json:"value" gorm:"type:text"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName returns the table name for Setting
func (Setting) TableName() string {
	return "settings"
}

// Setting keys
const (
	SettingBlockingEnabled = "blocking_enabled"
	SettingDirectiveText   = "directive_text"
)

// BotStat is the per-bot aggregate over a date range
type BotStat struct {
	Total   int64 `json:"total"`
	Blocked int64 `json:"blocked"`
}

// DailyStat is the per-day aggregate over a date range
type DailyStat struct {
	Date   string `json:"date"`
	Hits   int64  `json:"hits"`
	Blocks int64  `json:"blocks"`
}

// StatsData carries range-aggregated counters grouped by bot and by day
type StatsData struct {
	StartDate string             `json:"start_date"`
	EndDate   string             `json:"end_date"`
	Bots      map[string]BotStat `json:"bots"`
	Daily     []DailyStat        `json:"daily"`
}

// StatsResponse is the stats query result envelope
type StatsResponse struct {
	Success bool      `json:"success"`
	Data    StatsData `json:"data"`
}

// SaveDirectivesRequest replaces the managed directive region
type SaveDirectivesRequest struct {
	Content string `json:"content"`
	Clear   bool   `json:"clear"`
}

// SaveDirectivesResponse returns the full document after the splice
type SaveDirectivesResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	FinalContent string `json:"final_content"`
}

// DirectivesResponse returns the current managed region and its patterns
type DirectivesResponse struct {
	Success    bool         `json:"success"`
	Content    string       `json:"content"`
	Disallowed []BotPattern `json:"disallowed"`
}

// BlockingRequest toggles the global blocking flag
type BlockingRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// BlockingResponse reports the global blocking flag
type BlockingResponse struct {
	Success bool `json:"success"`
	Enabled bool `json:"enabled"`
}
