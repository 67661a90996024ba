//go:build !messageforge

package main

import (
	"fmt"

	"example.com/CrossPackage/chat"
)

func main() {
	msgs := []chat.BaseMessage{
		NewHumanMessage("hi", "user"),
		NewAIMessage("hello"),
		NewToolMessage("42", "call-1"),
	}

	// Output:
	// hi user human
	// hello ai ai
	// 42 tool tool
	for _, m := range msgs {
		fmt.Println(m.Content(), m.Role(), m.MessageType())
	}

	// Output: call-1
	fmt.Println(msgs[2].(*ToolMessage).toolCallID)
}
