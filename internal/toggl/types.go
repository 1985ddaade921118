package toggl

import "time"

// TrackClient is a Toggl client (a customer grouping projects).
type TrackClient struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Project is a Toggl project.
type Project struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ClientID int64  `json:"client_id"`
}

// TimeEntry is a Toggl time entry. Duration is in seconds and is negative
// while the entry is still running.
type TimeEntry struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	ProjectID   int64     `json:"project_id"`
	WorkspaceID int64     `json:"workspace_id"`
	Start       time.Time `json:"start"`
	Duration    int64     `json:"duration"`
}

// Minutes returns the entry duration in whole minutes.
func (e TimeEntry) Minutes() int {
	return int(e.Duration / 60)
}

// NewTimeEntry is the payload for creating a time entry.
type NewTimeEntry struct {
	Description string    `json:"description"`
	Duration    int64     `json:"duration"` // seconds
	Start       time.Time `json:"start"`
	ProjectID   int64     `json:"project_id"`
	WorkspaceID int64     `json:"workspace_id"`
	CreatedWith string    `json:"created_with"`
}

type me struct {
	DefaultWorkspaceID int64 `json:"default_workspace_id"`
}
