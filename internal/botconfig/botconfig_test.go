package botconfig

import (
	"context"
	"testing"

	"vershash/internal/structs"
	"vershash/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// offlineDB reports no configured store, which flips the service to its
// process-memory mode.
type offlineDB struct{}

func (offlineDB) Available() bool { return false }
func (offlineDB) Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, structs.ErrStoreUnavailable
}
func (offlineDB) Query(context.Context, string, ...interface{}) (pgx.Rows, error) {
	return nil, structs.ErrStoreUnavailable
}
func (offlineDB) QueryRow(context.Context, string, ...interface{}) pgx.Row { return nil }

func newMemService() Service {
	return New(Params{DB: offlineDB{}, Logger: logger.New("error")})
}

func TestMemoryModeServesDefaults(t *testing.T) {
	svc := newMemService()

	cfg, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if cfg.Welcome == "" || cfg.ButtonsPerRow != 2 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestPatchClampsButtonsPerRow(t *testing.T) {
	svc := newMemService()

	for _, tt := range []struct{ in, want int }{{0, 1}, {-3, 1}, {2, 2}, {4, 4}, {9, 4}} {
		n := tt.in
		cfg, err := svc.Patch(context.Background(), structs.PatchBotConfig{ButtonsPerRow: &n})
		if err != nil {
			t.Fatalf("Patch(%d): %v", tt.in, err)
		}
		if cfg.ButtonsPerRow != tt.want {
			t.Errorf("ButtonsPerRow %d clamped to %d, want %d", tt.in, cfg.ButtonsPerRow, tt.want)
		}
	}
}

func TestMemoryModePatchSticks(t *testing.T) {
	svc := newMemService()

	welcome := "Salut {firstname}"
	if _, err := svc.Patch(context.Background(), structs.PatchBotConfig{Welcome: &welcome}); err != nil {
		t.Fatalf("Patch: %v", err)
	}

	cfg, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if cfg.Welcome != welcome {
		t.Fatalf("patched welcome lost: %q", cfg.Welcome)
	}
}
