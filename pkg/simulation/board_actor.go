package simulation

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/lao-tseu-is-alive/go-neon-task/pb"
	"github.com/lao-tseu-is-alive/go-neon-task/pkg/board"
	"github.com/lao-tseu-is-alive/go-neon-task/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-neon-task/pkg/motion"
	"github.com/lao-tseu-is-alive/go-neon-task/pkg/viewport"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
)

// ErrInvalidRequest is returned for requests the board cannot make sense of.
var ErrInvalidRequest = errors.New("invalid request")

// BoardActor owns the authoritative state of the floating todos.
// Every mutation and every tick goes through its mailbox, so the store is
// only ever touched by one goroutine at a time.
type BoardActor struct {
	store   *board.Store[*pb.Todo]
	spawner *motion.Spawner
	layout  viewport.Layout
	width   float64
	height  float64
	bounds  geometry.Rect
	params  motion.Params
	frame   uint64
	seed    []string
	// Communication with UI
	snapshotCh chan<- *pb.BoardSnapshot
	// --- Stats ---
	tickCount   int
	lastLogTime time.Time
}

// NewBoardActor creates the board. snapshotCh may be nil when nobody renders
// the board, snapshots are then only available through GetSnapshot.
func NewBoardActor(snapshotCh chan<- *pb.BoardSnapshot, cfg *Config) *BoardActor {
	var src rand.Source
	if cfg.Seed != 0 {
		src = rand.NewPCG(cfg.Seed, cfg.Seed)
	}
	return &BoardActor{
		store:       board.New[*pb.Todo](),
		spawner:     motion.NewSpawner(cfg.SpawnSpeed, src),
		layout:      cfg.Layout,
		width:       cfg.WindowWidth,
		height:      cfg.WindowHeight,
		bounds:      cfg.Layout.SafeRect(cfg.WindowWidth, cfg.WindowHeight),
		params:      cfg.Params(),
		seed:        cfg.Todos,
		snapshotCh:  snapshotCh,
		lastLogTime: time.Now(),
	}
}

func (a *BoardActor) PreStart(ctx *actor.Context) error {
	// The board fills itself before the first message, like the original
	// fetch-all: each todo gets a random position and velocity.
	for _, title := range a.seed {
		if _, err := a.add("", &pb.Todo{Title: title}); err != nil {
			return fmt.Errorf("seed todo %q: %w", title, err)
		}
	}
	// a restarted board keeps its items
	a.seed = nil
	ctx.ActorSystem().Logger().Infof("Board seeded with %d todos inside %v", a.store.Len(), a.bounds)
	return nil
}

func (a *BoardActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {

	case *goaktpb.PostStart:
		ctx.Logger().Info("Board started.")

	// 1. CRUD coming from the shell
	case *pb.AddItem:
		item, err := a.add(msg.GetId(), msg.GetTodo())
		if err != nil {
			a.reject(ctx, msg.GetId(), err)
			return
		}
		ctx.Logger().Debugf("Added %s at %v", item.GetId(), item.GetPosition())
		ctx.Response(item)

	case *pb.RemoveItem:
		if err := a.store.Remove(msg.GetId()); err != nil {
			a.reject(ctx, msg.GetId(), err)
			return
		}
		ctx.Response(&pb.Ack{Id: msg.GetId()})

	case *pb.ReplaceTodo:
		if msg.GetTodo() == nil {
			a.reject(ctx, msg.GetId(), fmt.Errorf("replace %q without a todo: %w", msg.GetId(), ErrInvalidRequest))
			return
		}
		if err := a.store.ReplacePayload(msg.GetId(), cloneTodo(msg.GetTodo())); err != nil {
			a.reject(ctx, msg.GetId(), err)
			return
		}
		ctx.Response(&pb.Ack{Id: msg.GetId()})

	case *pb.GetSnapshot:
		ctx.Response(a.buildSnapshot())

	// 2. The Main Simulation Step (Driven by the scheduling loop)
	case *pb.Tick:
		a.store.Tick(a.bounds, a.params)
		a.frame++
		a.logStats(ctx)
		a.pushSnapshot()

	// 3. Viewport and tuning changes
	case *pb.Resize:
		if err := a.resize(msg.GetWidth(), msg.GetHeight()); err != nil {
			ctx.Logger().Warnf("Ignoring resize: %v", err)
		}

	case *pb.UpdateTuning:
		if err := a.tune(msg); err != nil {
			ctx.Logger().Warnf("Ignoring part of tuning update: %v", err)
		}

	default:
		ctx.Unhandled()
	}
}

func (a *BoardActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("Board is shutdown after %d frames...", a.frame)
	return nil
}

// add spawns a new entity inside the current safe rectangle.
// An empty id gets a fresh UUID.
func (a *BoardActor) add(id string, todo *pb.Todo) (*pb.Item, error) {
	if id == "" {
		id = uuid.NewString()
	}
	body := a.spawner.NewBody(id, a.bounds)
	e := Entity{
		ID:      body.ID,
		Pos:     body.Pos,
		Vel:     body.Vel,
		Payload: cloneTodo(todo),
	}
	if err := a.store.Insert(e); err != nil {
		return nil, err
	}
	return ToProto(e), nil
}

func (a *BoardActor) resize(width, height float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("viewport %vx%v: %w", width, height, ErrInvalidRequest)
	}
	if width == a.width && height == a.height {
		return nil
	}
	a.width, a.height = width, height
	a.bounds = a.layout.SafeRect(width, height)
	return nil
}

// tune applies every positive value of msg, the others are reported.
func (a *BoardActor) tune(msg *pb.UpdateTuning) error {
	var errs []error
	if v := msg.GetMinDistance(); v > 0 {
		a.params.MinDistance = v
	} else {
		errs = append(errs, fmt.Errorf("minDistance %v: %w", v, ErrInvalidRequest))
	}
	if v := msg.GetBounceStrength(); v > 0 {
		a.params.BounceStrength = v
	} else {
		errs = append(errs, fmt.Errorf("bounceStrength %v: %w", v, ErrInvalidRequest))
	}
	return errors.Join(errs...)
}

func (a *BoardActor) reject(ctx *actor.ReceiveContext, id string, err error) {
	ctx.Logger().Warnf("Rejected request for %q: %v", id, err)
	ctx.Response(&pb.Rejection{
		Id:     id,
		Reason: rejectReason(err),
		Detail: err.Error(),
	})
}

func rejectReason(err error) pb.RejectReason {
	switch {
	case errors.Is(err, board.ErrDuplicateID):
		return pb.RejectReason_REJECT_REASON_DUPLICATE_ID
	case errors.Is(err, board.ErrNotFound):
		return pb.RejectReason_REJECT_REASON_NOT_FOUND
	default:
		return pb.RejectReason_REJECT_REASON_INVALID
	}
}

func (a *BoardActor) buildSnapshot() *pb.BoardSnapshot {
	entities := a.store.Snapshot()
	snapshot := &pb.BoardSnapshot{
		Frame:  a.frame,
		Bounds: BoundsToProto(a.bounds),
		Items:  make([]*pb.Item, 0, len(entities)),
	}
	for _, e := range entities {
		snapshot.Items = append(snapshot.Items, ToProto(e))
	}
	return snapshot
}

func (a *BoardActor) pushSnapshot() {
	if a.snapshotCh == nil {
		return
	}
	select {
	case a.snapshotCh <- a.buildSnapshot():
	default:
		// UI busy, skip frame
	}
}

func (a *BoardActor) logStats(ctx *actor.ReceiveContext) {
	a.tickCount++
	if time.Since(a.lastLogTime) >= time.Second {
		ctx.Logger().Debugf("TICK RATE: %d/sec | Items: %d | Frame: %d", a.tickCount, a.store.Len(), a.frame)
		a.tickCount = 0
		a.lastLogTime = time.Now()
	}
}
