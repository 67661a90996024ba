//go:build !messageforge

package main

import "fmt"

func main() {
	m := NewHumanMessage("hello", 7, true)
	fmt.Println(m.Content(), m.any, m.false, m.Role(), m.IsExample(), len(m.AdditionalKwargs()))
}
