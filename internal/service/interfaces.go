package service

import (
	"context"

	"github.com/BarkinBalci/email-analytics-dashboard/internal/dto"
)

// DashboardServicer defines the interface for dashboard service operations
type DashboardServicer interface {
	GetSnapshot(ctx context.Context, req *dto.GetSnapshotRequest) (*dto.SnapshotResponse, error)
	Ping(ctx context.Context) error
}
