//go:build !messageforge

package main

import "fmt"

func main() {
	m := NewFooBarBaz("x", 7)

	// Output: x foo_bar_baz foo_bar_baz 7
	fmt.Println(m.Content(), m.MessageType(), m.Role(), m.extra)
}
