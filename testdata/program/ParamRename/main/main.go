//go:build messageforge

package main

import (
	"example.com/ParamRename/chat"
	"github.com/kinghuynh/messageforge"
)

// NoteMessage has fields named like the constructor parameters and the
// imported package.
type NoteMessage struct {
	content string
	base    chat.BaseMessageFields
	chat    string
	example bool
}

var _ = messageforge.Derive[NoteMessage]()
