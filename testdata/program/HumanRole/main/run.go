//go:build !messageforge

package main

import "fmt"

func main() {
	m := NewHumanMessage("hello", "user")

	// Output: hello user human false
	fmt.Println(m.Content(), m.Role(), m.MessageType(), m.IsExample())

	// Output: 0 0 true true true
	fmt.Println(len(m.AdditionalKwargs()), len(m.ResponseMetadata()), m.AdditionalKwargs() != nil, m.ResponseMetadata() != nil, m.ID() == nil)

	id := "msg-1"
	m.SetID(&id)
	m.SetContent("bye")
	m.SetExample(true)

	// Output: bye msg-1 true
	fmt.Println(m.Content(), *m.ID(), m.IsExample())

	// Output: -
	fmt.Println("-" + m.base.Role)
}
