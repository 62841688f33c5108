package simulation

import (
	"fmt"

	"github.com/lao-tseu-is-alive/go-electron-funnel/pkg/geometry"
	"google.golang.org/protobuf/types/known/structpb"
)

// Message kinds understood by WorldActor.
const (
	msgKindTick  = "tick"
	msgKindReset = "reset"
)

// NewTickMessage encodes a frame for the world actor.
func NewTickMessage(frame Frame) (*structpb.Struct, error) {
	fields := map[string]any{
		"kind":      msgKindTick,
		"deltaTime": frame.DeltaTime,
		"elapsed":   frame.Elapsed,
		"rotate":    frame.Input.Rotate,
		"grab":      frame.Input.Grab,
	}
	if c := frame.Input.Cursor; c != nil {
		fields["cursor"] = map[string]any{"x": c.X, "y": c.Y}
	}
	msg, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tick: %w", err)
	}
	return msg, nil
}

// NewResetMessage asks the world actor to rebuild the world from config.
func NewResetMessage() *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"kind": structpb.NewStringValue(msgKindReset),
	}}
}

func messageKind(msg *structpb.Struct) string {
	return msg.GetFields()["kind"].GetStringValue()
}

// decodeFrame is the inverse of NewTickMessage.
func decodeFrame(msg *structpb.Struct) (Frame, error) {
	if k := messageKind(msg); k != msgKindTick {
		return Frame{}, fmt.Errorf("not a tick message: %q", k)
	}
	f := msg.GetFields()
	frame := Frame{
		DeltaTime: f["deltaTime"].GetNumberValue(),
		Elapsed:   f["elapsed"].GetNumberValue(),
		Input: Input{
			Rotate: f["rotate"].GetNumberValue(),
			Grab:   f["grab"].GetBoolValue(),
		},
	}
	if c := f["cursor"].GetStructValue(); c != nil {
		frame.Input.Cursor = &geometry.Vector2D{
			X: c.GetFields()["x"].GetNumberValue(),
			Y: c.GetFields()["y"].GetNumberValue(),
		}
	}
	return frame, nil
}
