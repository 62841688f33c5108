package simulation

import (
	"context"
	"testing"
	"time"

	"github.com/lao-tseu-is-alive/go-electron-funnel/pkg/geometry"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/log"
)

// waitFor reads snapshots until one satisfies ok or the deadline passes.
func waitFor(t *testing.T, ch <-chan *Snapshot, ok func(*Snapshot) bool) *Snapshot {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case s := <-ch:
			if ok(s) {
				return s
			}
		case <-deadline:
			t.Fatal("timed out waiting for a snapshot")
			return nil
		}
	}
}

func TestWorldActor_TickAndReset(t *testing.T) {
	ctx := context.Background()
	system, err := actor.NewActorSystem("ElectronFunnelTest", actor.WithLogger(log.DiscardLogger))
	if err != nil {
		t.Fatalf("NewActorSystem: %v", err)
	}
	if err := system.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(func() { _ = system.Stop(ctx) })

	cfg := bareConfig()
	cfg.Emitters = []EmitterConfig{{X: -100, Y: 0}}
	world := NewWorld(cfg, log.DiscardLogger, WithSeed(7))
	snapshots := make(chan *Snapshot, 64)

	pid, err := system.Spawn(ctx, "world", NewWorldActor(world, snapshots))
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}

	for range 3 {
		msg, err := NewTickMessage(Frame{DeltaTime: 1.0 / 60, Input: Input{Cursor: &geometry.Vector2D{}}})
		if err != nil {
			t.Fatal(err)
		}
		if err := actor.Tell(ctx, pid, msg); err != nil {
			t.Fatalf("Tell: %v", err)
		}
	}
	snap := waitFor(t, snapshots, func(s *Snapshot) bool { return s.Tick == 3 })
	if len(snap.Agents) != 3 {
		t.Errorf("agents = %d; want 3", len(snap.Agents))
	}

	if err := actor.Tell(ctx, pid, NewResetMessage()); err != nil {
		t.Fatalf("Tell reset: %v", err)
	}
	waitFor(t, snapshots, func(s *Snapshot) bool { return s.Tick == 0 && len(s.Agents) == 0 })
}
