package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// CrowdStatusTopic is the destination every crowd-status frame is addressed to
const CrowdStatusTopic = "/topic/crowd-status"

// ErrHubClosed is returned when publishing after shutdown
var ErrHubClosed = errors.New("realtime hub closed")

// Frame is the envelope pushed to WebSocket subscribers
type Frame struct {
	Destination string      `json:"destination"`
	Body        interface{} `json:"body"`
}

// EncodeFrame marshals body addressed to destination
func EncodeFrame(destination string, body interface{}) ([]byte, error) {
	data, err := json.Marshal(Frame{Destination: destination, Body: body})
	if err != nil {
		return nil, fmt.Errorf("encode %s frame: %w", destination, err)
	}
	return data, nil
}

// Publisher delivers a payload to every subscriber of a topic
type Publisher interface {
	Publish(ctx context.Context, destination string, body interface{}) error
}

// LocalPublisher delivers straight to this process's hub
type LocalPublisher struct {
	hub *Hub
}

// NewLocalPublisher creates a publisher for single-replica deployments
func NewLocalPublisher(hub *Hub) *LocalPublisher {
	return &LocalPublisher{hub: hub}
}

func (p *LocalPublisher) Publish(ctx context.Context, destination string, body interface{}) error {
	frame, err := EncodeFrame(destination, body)
	if err != nil {
		return err
	}
	if !p.hub.Broadcast(frame) {
		return ErrHubClosed
	}
	return nil
}
