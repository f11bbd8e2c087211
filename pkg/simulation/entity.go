package simulation

import (
	"github.com/lao-tseu-is-alive/go-neon-task/pb"
	"github.com/lao-tseu-is-alive/go-neon-task/pkg/board"
	"github.com/lao-tseu-is-alive/go-neon-task/pkg/geometry"
	"google.golang.org/protobuf/proto"
)

// Entity is a floating todo as kept by the board actor.
type Entity = board.Entity[*pb.Todo]

// ToProto converts the entity into the Protobuf "Envelope" sent to the shell.
// The todo is cloned so the receiver never shares memory with the store.
func ToProto(e Entity) *pb.Item {
	return &pb.Item{
		Id:       e.ID,
		Position: VectorToProto(e.Pos),
		Velocity: VectorToProto(e.Vel),
		Todo:     cloneTodo(e.Payload),
	}
}

// FromProto converts an Item back to an Entity.
func FromProto(p *pb.Item) Entity {
	return Entity{
		ID:      p.GetId(),
		Pos:     VectorFromProto(p.GetPosition()),
		Vel:     VectorFromProto(p.GetVelocity()),
		Payload: cloneTodo(p.GetTodo()),
	}
}

func VectorToProto(v geometry.Vector2D) *pb.Vector {
	return &pb.Vector{X: v.X, Y: v.Y}
}

// VectorFromProto is nil safe, a missing vector is the zero vector.
func VectorFromProto(v *pb.Vector) geometry.Vector2D {
	return geometry.Vector2D{X: v.GetX(), Y: v.GetY()}
}

func BoundsToProto(r geometry.Rect) *pb.Bounds {
	return &pb.Bounds{MinX: r.MinX, MaxX: r.MaxX, MinY: r.MinY, MaxY: r.MaxY}
}

func BoundsFromProto(b *pb.Bounds) geometry.Rect {
	return geometry.Rect{MinX: b.GetMinX(), MaxX: b.GetMaxX(), MinY: b.GetMinY(), MaxY: b.GetMaxY()}
}

func cloneTodo(t *pb.Todo) *pb.Todo {
	if t == nil {
		return &pb.Todo{}
	}
	return proto.Clone(t).(*pb.Todo)
}
