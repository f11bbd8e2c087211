package simulation

import (
	"context"
	"fmt"
	"time"

	"github.com/lao-tseu-is-alive/go-neon-task/pb"
	"github.com/lao-tseu-is-alive/go-neon-task/pkg/board"
	"github.com/lao-tseu-is-alive/go-neon-task/pkg/motion"
	"github.com/tochemey/goakt/v3/actor"
	"google.golang.org/protobuf/proto"
)

const DefaultAskTimeout = time.Second

// Client is the typed front of a BoardActor.
// Requests expecting an answer go through actor.Ask, the per frame traffic
// (Tick, Resize, Tune) through actor.Tell.
type Client struct {
	pid     *actor.PID
	timeout time.Duration
}

func NewClient(pid *actor.PID, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultAskTimeout
	}
	return &Client{pid: pid, timeout: timeout}
}

// Add puts a new todo on the board. An empty id lets the board pick a UUID.
// It fails with board.ErrDuplicateID when id is already live.
func (c *Client) Add(ctx context.Context, id string, todo *pb.Todo) (*pb.Item, error) {
	reply, err := c.ask(ctx, &pb.AddItem{Id: id, Todo: todo})
	if err != nil {
		return nil, err
	}
	item, ok := reply.(*pb.Item)
	if !ok {
		return nil, unexpectedReply(reply)
	}
	return item, nil
}

// Remove takes id off the board, board.ErrNotFound if it is not there.
func (c *Client) Remove(ctx context.Context, id string) error {
	_, err := c.ask(ctx, &pb.RemoveItem{Id: id})
	return err
}

// Replace swaps the todo of id, the item keeps floating where it was.
func (c *Client) Replace(ctx context.Context, id string, todo *pb.Todo) error {
	_, err := c.ask(ctx, &pb.ReplaceTodo{Id: id, Todo: todo})
	return err
}

// Snapshot returns the items in board order.
func (c *Client) Snapshot(ctx context.Context) (*pb.BoardSnapshot, error) {
	reply, err := c.ask(ctx, &pb.GetSnapshot{})
	if err != nil {
		return nil, err
	}
	snap, ok := reply.(*pb.BoardSnapshot)
	if !ok {
		return nil, unexpectedReply(reply)
	}
	return snap, nil
}

func (c *Client) Tick(ctx context.Context) error {
	return c.tell(ctx, &pb.Tick{})
}

func (c *Client) Resize(ctx context.Context, width, height float64) error {
	return c.tell(ctx, &pb.Resize{Width: width, Height: height})
}

func (c *Client) Tune(ctx context.Context, p motion.Params) error {
	return c.tell(ctx, &pb.UpdateTuning{MinDistance: p.MinDistance, BounceStrength: p.BounceStrength})
}

func (c *Client) ask(ctx context.Context, msg proto.Message) (any, error) {
	reply, err := actor.Ask(ctx, c.pid, msg, c.timeout)
	if err != nil {
		return nil, fmt.Errorf("ask board: %w", err)
	}
	if rej, ok := any(reply).(*pb.Rejection); ok {
		return nil, rejectionError(rej)
	}
	return reply, nil
}

func (c *Client) tell(ctx context.Context, msg proto.Message) error {
	if err := actor.Tell(ctx, c.pid, msg); err != nil {
		return fmt.Errorf("tell board: %w", err)
	}
	return nil
}

// rejectionError maps a Rejection back onto the error the store returned.
func rejectionError(rej *pb.Rejection) error {
	var sentinel error
	switch rej.GetReason() {
	case pb.RejectReason_REJECT_REASON_DUPLICATE_ID:
		sentinel = board.ErrDuplicateID
	case pb.RejectReason_REJECT_REASON_NOT_FOUND:
		sentinel = board.ErrNotFound
	default:
		sentinel = ErrInvalidRequest
	}
	return fmt.Errorf("board rejected %q (%s): %w", rej.GetId(), rej.GetDetail(), sentinel)
}

func unexpectedReply(reply any) error {
	return fmt.Errorf("unexpected reply %T: %w", reply, ErrInvalidRequest)
}
