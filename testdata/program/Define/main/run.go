//go:build !messageforge

package main

import "fmt"

func main() {
	msgs := []BaseMessage{
		NewSystemMessage("rules"),
		NewToolMessageWithExample("result", true),
	}

	// Output:
	// rules system
	// result tool
	for _, m := range msgs {
		fmt.Println(m.Content(), m.Role())
	}

	// Output: true
	fmt.Println(msgs[1].(*ToolMessage).IsExample())
}
