//go:build messageforge

package main

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
	Role             string
}

type HumanMessage struct {
	base BaseMessageFields
	role string
}

var _ = messageforge.Derive[HumanMessage]()
