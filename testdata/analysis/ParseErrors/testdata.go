//go:build messageforge

package testdata

import "github.com/kinghuynh/messageforge"

type MessageType string

func (t MessageType) String() string { return string(t) }

const (
	MessageTypeHuman  MessageType = "human"
	MessageTypeSystem MessageType = "system"
	MessageTypeTool   MessageType = "tool"
	KindWizard        MessageType = "wizard"
)

var notKind = MessageTypeHuman

// BaseMessageFields has no Role member.
type BaseMessageFields struct {
	Content          string
	Example          bool
	MessageType      MessageType
	AdditionalKwargs map[string]any
	ResponseMetadata map[string]any
	ID               *string
	Name             *string
}

type HumanMessage struct {
	base BaseMessageFields
	role string
}

type EmbedMessage struct {
	BaseMessageFields // want `cannot derive EmbedMessage: embedded field BaseMessageFields is not supported`
}

type GenericMessage[T any] struct { // want `cannot derive GenericMessage: generic type is not supported`
	base BaseMessageFields
	role T
}

type NoBaseMessage struct { // want `cannot derive NoBaseMessage: no base field`
	role string
}

type SystemMessage struct {
	base BaseMessageFields // want `cannot derive SystemMessage: base record BaseMessageFields is missing members: Role`
}

var (
	_ = messageforge.Derive[HumanMessage]()
	_ = messageforge.Derive[HumanMessage]() // want `HumanMessage is already derived at`
	_ = messageforge.Derive[EmbedMessage]()
	_ = messageforge.Derive[GenericMessage[string]]()
	_ = messageforge.Derive[NoBaseMessage]()
	_ = messageforge.Derive[SystemMessage]()
	_ = messageforge.Derive[int]() // want `cannot derive int; need a type declared in this package`
)

var (
	_ = messageforge.Define[BaseMessageFields](notKind)          // want `message kind must be a constant; got notKind`
	_ = messageforge.Define[BaseMessageFields](KindWizard)       // want `message kind KindWizard must be named MessageType followed by a category`
	_ = messageforge.Define[BaseMessageFields](MessageTypeHuman) // want `cannot define HumanMessage; already declared at`
	_ = messageforge.Define[BaseMessageFields](MessageTypeTool)  // want `cannot derive ToolMessage: base record BaseMessageFields is missing members: Role`
)
