// Package model contains domain models passed between layers.
package model

import "time"

// LeaderboardEntry represents a single leaderboard row.
// UserPoints only ever grows through awards; nothing in the service
// decrements it.
type LeaderboardEntry struct {
	UserID       string    `json:"user_id"`
	DisplayName  string    `json:"display_name"`
	UserPoints   int       `json:"user_points"`
	UpdatedAtUTC time.Time `json:"updated_at_utc"`
}

// RoadCamera is the normalized view of an upstream traffic camera record.
// It is derived from cached upstream data and never persisted; optional
// upstream fields stay nil rather than defaulting.
type RoadCamera struct {
	CameraID    string     `json:"camera_id"`
	Name        *string    `json:"name,omitempty"`
	Latitude    float64    `json:"latitude"`
	Longitude   float64    `json:"longitude"`
	ImageURL    *string    `json:"image_url,omitempty"`
	LastUpdated *time.Time `json:"last_updated,omitempty"`
}

// Report is a user-submitted infrastructure issue report.
type Report struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// Report statuses.
const (
	ReportStatusOpen   = "open"
	ReportStatusClosed = "closed"
)

// DashboardSummary aggregates the state shown on the operations dashboard.
type DashboardSummary struct {
	TotalPlayers  int                `json:"total_players"`
	TopEntries    []LeaderboardEntry `json:"top_entries"`
	CamerasCached int                `json:"cameras_cached"`
	OpenReports   int                `json:"open_reports"`
	GeneratedAt   time.Time          `json:"generated_at"`
}
