//go:build messageforge

package testdata

import "github.com/kinghuynh/messageforge"

type MessageType string

func (t MessageType) String() string { return string(t) }

const (
	MessageTypeAI   MessageType = "ai"
	MessageTypeChat MessageType = "chat"
	MessageTypeTool MessageType = "tool"
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

type Message struct { // want `cannot derive Message: empty category`
	base BaseMessageFields
}

type WizardMessage struct { // want `cannot derive WizardMessage: no message kind MessageTypeWizard of type MessageType`
	base BaseMessageFields
}

type AIMessage struct {
	base BaseMessageFields
}

func (m *AIMessage) Content() string { return m.base.Content } // want `cannot derive AIMessage: method Content is already declared`

type ToolMessage struct {
	base BaseMessageFields
	ID   string // want `cannot derive ToolMessage: field ID conflicts with the generated method`
}

type ChatMessage struct {
	base BaseMessageFields
	role string
}

func NewChatMessageWithExample() {} // want `cannot derive ChatMessage: NewChatMessageWithExample is already declared`

var (
	_ = messageforge.Derive[Message]()
	_ = messageforge.Derive[WizardMessage]()
	_ = messageforge.Derive[AIMessage]()
	_ = messageforge.Derive[ToolMessage]()
	_ = messageforge.Derive[ChatMessage]()
)
