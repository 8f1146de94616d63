package port

import (
	"context"
	"time"
)

// ReaperService is the periodic sweep that expires stale upload sessions
// and reclaims their chunk bytes
type ReaperService interface {
	ReapExpiredSessions(ctx context.Context, now time.Time) error
}
