package dto

// GetSnapshotRequest represents a dashboard snapshot query
type GetSnapshotRequest struct {
	Start string `form:"start" example:"2025-03-03"`
	End   string `form:"end" example:"2025-03-09"`
}
