//go:build !messageforge

package main

import (
	"fmt"

	"example.com/messageforgeexample/chat"
)

func main() {
	history := []chat.BaseMessage{
		NewSystemMessage("You are a helpful assistant."),
		NewHumanMessage("What is 6 times 7?", "user"),
		NewToolMessage("42", "call-1"),
	}

	for _, m := range history {
		fmt.Printf("%-6s %-6s %s\n", m.MessageType(), m.Role(), m.Content())
	}
}
