//go:build messageforge

package main

import "github.com/kinghuynh/messageforge"

type MessageType string

func (t MessageType) String() string { return string(t) }

const MessageTypeFooBarBaz MessageType = "foo_bar_baz"

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

type FooBarBaz struct {
	base  BaseMessageFields
	extra int
}

var _ = messageforge.Derive[FooBarBaz]()
