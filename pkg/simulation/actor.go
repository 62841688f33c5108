package simulation

import (
	"github.com/lao-tseu-is-alive/go-electron-funnel/pkg/event"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
	"google.golang.org/protobuf/types/known/structpb"
)

// WorldActor owns a World. The mailbox serializes ticks and resets, so the
// world needs no lock.
type WorldActor struct {
	world      *World
	snapshotCh chan<- *Snapshot
	victory    *event.Subscription
}

// NewWorldActor wraps world; snapshots are pushed to snapshotCh after each tick.
func NewWorldActor(world *World, snapshotCh chan<- *Snapshot) *WorldActor {
	return &WorldActor{world: world, snapshotCh: snapshotCh}
}

func (w *WorldActor) PreStart(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("world starting with %d emitters", w.world.reg.Emitters.Len())
	return nil
}

func (w *WorldActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {
	case *goaktpb.PostStart:
		ctx.Logger().Info("World started")
		logger := ctx.Logger()
		w.victory = w.world.Bus().Subscribe(event.Victory, func(event.Event) {
			logger.Infof("🏆 all levels cleared at tick %d", w.world.Tick())
		})
		w.pushSnapshot()

	case *structpb.Struct:
		switch messageKind(msg) {
		case msgKindTick:
			frame, err := decodeFrame(msg)
			if err != nil {
				ctx.Logger().Errorf("dropping tick: %v", err)
				return
			}
			w.world.Step(frame)
			w.pushSnapshot()
		case msgKindReset:
			ctx.Logger().Info("World reset")
			w.world.Reset()
			w.pushSnapshot()
		default:
			ctx.Unhandled()
		}

	default:
		ctx.Unhandled()
	}
}

func (w *WorldActor) pushSnapshot() {
	if w.snapshotCh == nil {
		return
	}
	select {
	case w.snapshotCh <- w.world.Snapshot():
	default:
		// UI busy, skip frame
	}
}

func (w *WorldActor) PostStop(ctx *actor.Context) error {
	w.world.Bus().Unsubscribe(w.victory)
	ctx.ActorSystem().Logger().Info("World is shutdown...")
	return nil
}
