package events

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// EncodePayload serializes fields as a google.protobuf.Struct. Values must be
// JSON-like: strings, bools, numbers, nil, nested maps or slices.
func EncodePayload(fields map[string]any) ([]byte, error) {
	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, err
	}
	return proto.Marshal(s)
}

// DecodePayload is the inverse of EncodePayload.
func DecodePayload(body []byte) (map[string]any, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(body, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}
	return s.AsMap(), nil
}
