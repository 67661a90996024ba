package chat

type MessageType string

func (t MessageType) String() string { return string(t) }

const (
	MessageTypeHuman MessageType = "human"
	MessageTypeAI    MessageType = "ai"
	MessageTypeTool  MessageType = "tool"
	MessageTypeNote  MessageType = "note"
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
	MessageType() MessageType
	IsExample() bool
	AdditionalKwargs() map[string]any
	ResponseMetadata() map[string]any
	ID() *string
	Name() *string
	Role() string
}
