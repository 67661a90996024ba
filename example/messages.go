//go:build messageforge

package main

import (
	"example.com/messageforgeexample/chat"
	"github.com/kinghuynh/messageforge"
)

// HumanMessage is a message from a user.
type HumanMessage struct {
	base chat.BaseMessageFields
	role string
}

// ToolMessage is the result of a tool call.
type ToolMessage struct {
	base       chat.BaseMessageFields
	toolCallID string
}

var (
	_ = messageforge.Derive[HumanMessage]()
	_ = messageforge.Derive[ToolMessage]()
	_ = messageforge.Define[chat.BaseMessageFields](chat.MessageTypeSystem)
)
