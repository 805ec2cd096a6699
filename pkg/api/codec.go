// Package api defines the request and response messages of the Fairs
// services. Messages are plain Go structs carried as JSON over Connect.
package api

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// jsonCodec replaces Connect's protobuf JSON codec for non-proto messages.
type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (jsonCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}

// WithJSON registers the JSON codec on a Connect client or handler.
func WithJSON() connect.Option {
	return connect.WithCodec(jsonCodec{})
}
