// Package api holds the wire types of the dayplanner RPC API, the procedure
// names and a small typed client.
//
// Messages are plain Go structs encoded as JSON. Handlers and clients must be
// created with the codec returned by Codec so that the Connect "json" codec
// works on these structs instead of protobuf messages.
package api

import (
	"encoding/json"
	"fmt"

	"connectrpc.com/connect"
)

// CodecName replaces Connect's default protojson codec.
const CodecName = "json"

type jsonCodec struct{}

// Codec returns the JSON codec for handlers and clients.
func Codec() connect.Codec {
	return jsonCodec{}
}

// WithCodec is the handler and client option installing Codec.
func WithCodec() connect.Option {
	return connect.WithCodec(jsonCodec{})
}

func (jsonCodec) Name() string {
	return CodecName
}

func (jsonCodec) Marshal(msg any) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %T: %w", msg, err)
	}
	return data, nil
}

func (jsonCodec) Unmarshal(data []byte, msg any) error {
	// Connect sends an empty body for messages without fields.
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("failed to unmarshal %T: %w", msg, err)
	}
	return nil
}
