//go:build messageforge

package main

import "github.com/kinghuynh/messageforge"

type MessageType string

const MessageTypeSystem MessageType = "system"

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

type SystemMessage struct {
	base BaseMessageFields
}

var _ = messageforge.Derive[SystemMessage]()

func main() {}
