package live

import (
	"encoding/json"
	"fmt"
)

// Frame types exchanged with the client.
const (
	// FrameEvent is a client-to-server DOM event.
	FrameEvent = "event"

	// FramePing is answered with a FramePong carrying the same timestamp.
	FramePing = "ping"
	FramePong = "pong"

	// FrameSwap replaces the client's document body with new HTML.
	FrameSwap = "swap"

	// FrameFocus asks the client to move focus to an element id.
	FrameFocus = "focus"

	// FrameError reports a rejected client frame.
	FrameError = "error"
)

// EventFrame is a DOM event the client forwards to its session. NID
// addresses the handler's element by the data-nid attribute in the last
// swap; Event is the handler name ("onclick", "onkeydown"). Key carries
// the pressed key for keyboard events.
type EventFrame struct {
	Type  string `json:"type"`
	NID   string `json:"nid"`
	Event string `json:"event"`
	Key   string `json:"key,omitempty"`
	TS    int64  `json:"ts,omitempty"`
}

// SwapFrame carries a full re-render.
type SwapFrame struct {
	Type string `json:"type"`
	Seq  uint64 `json:"seq"`
	HTML string `json:"html"`
}

// FocusFrame moves client focus to the element with the given id.
type FocusFrame struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// ErrorFrame reports why a client frame was dropped.
type ErrorFrame struct {
	Type   string `json:"type"`
	Code   string `json:"code"`
	Detail string `json:"detail,omitempty"`
}

// PongFrame answers a ping.
type PongFrame struct {
	Type string `json:"type"`
	TS   int64  `json:"ts"`
}

// Error codes sent in ErrorFrame.Code.
const (
	ErrBadFrame  = "bad_frame"
	ErrNoHandler = "no_handler"
)

// frameType peeks at the type discriminator without decoding the body.
func frameType(msg []byte) (string, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(msg, &head); err != nil {
		return "", fmt.Errorf("live: decode frame: %w", err)
	}
	if head.Type == "" {
		return "", fmt.Errorf("live: frame missing type")
	}
	return head.Type, nil
}

// decodeEventFrame decodes and validates an event frame.
func decodeEventFrame(msg []byte) (*EventFrame, error) {
	var f EventFrame
	if err := json.Unmarshal(msg, &f); err != nil {
		return nil, fmt.Errorf("live: decode event frame: %w", err)
	}
	if f.NID == "" {
		return nil, fmt.Errorf("live: event frame missing nid")
	}
	if f.Event == "" {
		return nil, fmt.Errorf("live: event frame missing event")
	}
	return &f, nil
}
