//go:build !messageforge

package main

import "fmt"

func main() {
	m := NewNoteMessageWithExample("body", true, "note", "general", false)

	// Output: body true note general false note
	fmt.Println(m.Content(), m.IsExample(), m.content, m.chat, m.example, m.Role())
}
