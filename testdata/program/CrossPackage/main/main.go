//go:build messageforge

package main

import (
	"example.com/CrossPackage/chat"
	"github.com/kinghuynh/messageforge"
)

type HumanMessage struct {
	base chat.BaseMessageFields
	role string
}

type ToolMessage struct {
	base       chat.BaseMessageFields
	toolCallID string
}

var (
	_ = messageforge.Derive[HumanMessage]()
	_ = messageforge.Derive[ToolMessage]()
	_ = messageforge.Define[chat.BaseMessageFields](chat.MessageTypeAI)
)
