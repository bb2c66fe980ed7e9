package stats

import (
	"context"
	"testing"

	"vershash/pkg/logger"
)

func TestMemoryCountersCountUniqueUsers(t *testing.T) {
	svc := New(Params{Logger: logger.New("error")})
	ctx := context.Background()

	svc.BumpMessage(ctx, 1)
	svc.BumpMessage(ctx, 1)
	svc.BumpMessage(ctx, 2)
	svc.BumpOrder(ctx)

	snap := svc.Snapshot(ctx)
	if snap.Users != 2 {
		t.Fatalf("expected 2 unique users, got %d", snap.Users)
	}
	if snap.Messages != 3 {
		t.Fatalf("expected 3 messages, got %d", snap.Messages)
	}
	if snap.Orders != 1 {
		t.Fatalf("expected 1 order, got %d", snap.Orders)
	}
}
