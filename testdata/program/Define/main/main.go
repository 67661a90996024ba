//go:build messageforge

package main

import "github.com/kinghuynh/messageforge"

type MessageType string

func (t MessageType) String() string { return string(t) }

const (
	MessageTypeSystem MessageType = "system"
	MessageTypeTool   MessageType = "tool"
)

type BaseMessageFields struct {
	Content          string
	Example          bool
	MessageType      MessageType
	AdditionalKwargs map[string]string
	ResponseMetadata map[string]string
	ID               *string
	Name             *string
	Role             string
}

type BaseMessage interface {
	Content() string
	Role() string
}

var (
	_ = messageforge.Define[BaseMessageFields](MessageTypeSystem)
	_ = messageforge.Define[BaseMessageFields](MessageTypeTool)
)
