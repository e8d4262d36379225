// Package rpc carries the connect options shared by servers and clients.
package rpc

import (
	"bytes"
	"encoding/json"

	"connectrpc.com/connect"
)

// jsonCodec marshals plain Go structs, so the RPC contract does not depend on
// generated protobuf messages.
type jsonCodec struct {
	name string
}

func (c jsonCodec) Name() string { return c.name }

func (c jsonCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (c jsonCodec) Unmarshal(data []byte, msg any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(msg)
}

// WithJSON registers the JSON codec under both content types browsers send.
// Clients use the plain "json" codec.
func WithJSON() connect.Option {
	return connect.WithOptions(
		connect.WithCodec(jsonCodec{name: "json; charset=utf-8"}),
		connect.WithCodec(jsonCodec{name: "json"}),
	)
}
