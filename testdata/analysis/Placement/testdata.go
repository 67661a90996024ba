//go:build messageforge

package testdata

import "github.com/kinghuynh/messageforge"

type MessageType string

func (t MessageType) String() string { return string(t) }

const MessageTypeHuman MessageType = "human"

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

var _ = messageforge.Derive[HumanMessage]() // ok

var Human = messageforge.Derive[HumanMessage]() // want `messageforge.Derive must be assigned to the blank identifier at package level`

func init() {
	_ = messageforge.Derive[HumanMessage]() // want `messageforge.Derive must be assigned to the blank identifier at package level`
}
