//go:build !messageforge

package main

import "fmt"

func main() {
	m := NewSystemMessageWithExample("be brief", true)

	// Output: be brief System System true
	fmt.Println(m.Content(), m.Role(), m.base.Role, m.IsExample())

	name := "sys"
	m.SetName(&name)

	// Output: sys
	fmt.Println(*m.Name())
}
