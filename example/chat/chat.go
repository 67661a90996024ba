// Package chat declares the base record and the kinds of chat messages.
package chat

// MessageType is the kind of a message.
type MessageType string

func (t MessageType) String() string { return string(t) }

const (
	MessageTypeHuman  MessageType = "human"
	MessageTypeAI     MessageType = "ai"
	MessageTypeSystem MessageType = "system"
	MessageTypeTool   MessageType = "tool"
)

// BaseMessageFields is embedded in every message type as the "base" field.
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

// BaseMessage is implemented by every message type.
type BaseMessage interface {
	Content() string
	MessageType() MessageType
	IsExample() bool
	AdditionalKwargs() map[string]any
	ResponseMetadata() map[string]any
	ID() *string
	Name() *string
	Role() string
}
