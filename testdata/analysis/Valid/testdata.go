//go:build messageforge

package testdata

import "github.com/kinghuynh/messageforge"

type MessageType string

func (t MessageType) String() string { return string(t) }

const (
	MessageTypeHuman  MessageType = "human"
	MessageTypeSystem MessageType = "system"
	MessageTypeTool   MessageType = "tool"
)

type BaseMessageFields struct {
	Content          string
	Example          bool
	MessageType      MessageType
	AdditionalKwargs map[string]any
	ResponseMetadata map[string]any
	ID               *string
	Name             *string
	Role             string
}

type BaseMessage interface {
	Content() string
	Role() string
}

type HumanMessage struct {
	base BaseMessageFields
	role string
}

type ToolMessage struct {
	base       BaseMessageFields
	toolCallID string
}

var (
	_ = messageforge.Derive[HumanMessage]()
	_ = messageforge.Derive[ToolMessage]()
	_ = messageforge.Define[BaseMessageFields](MessageTypeSystem)
)
