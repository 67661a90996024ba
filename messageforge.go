// Package messageforge provides directives for generating message type
// boilerplate.
//
// A message type is a struct which embeds a common base record in a field
// named "base". Every message type exposes the same accessors and mutators
// over the base record, and implements a shared message interface. Writing
// them by hand for each type is tedious. Declare the type once, and the
// generator produces its constructors, accessors, mutators, and the interface
// implementation.
//
// To start with messageforge, add a build constraint to files containing
// messageforge directives:
//
//	//go:build messageforge
//
// Then declare message types and derive them with [Derive]:
//
//	// source:
//	type HumanMessage struct {
//		base BaseMessageFields
//		role string
//	}
//
//	var _ = messageforge.Derive[HumanMessage]()
//
//	// generated: (simplified)
//	func NewHumanMessage(content string, role string) *HumanMessage {
//		return NewHumanMessageWithExample(content, false, role)
//	}
//
//	func NewHumanMessageWithExample(content string, example bool, role string) *HumanMessage {
//		return &HumanMessage{
//			base: BaseMessageFields{
//				Content:          content,
//				Example:          example,
//				MessageType:      MessageTypeHuman,
//				AdditionalKwargs: map[string]string{},
//				ResponseMetadata: map[string]string{},
//			},
//			role: role,
//		}
//	}
//
//	func (m *HumanMessage) Content() string { return m.base.Content }
//	func (m *HumanMessage) Role() string    { return m.role }
//	...
//
// After declaring message types, run the messageforge command. It will
// generate messageforge_gen.go for your package:
//
//	go run github.com/kinghuynh/messageforge/cmd/messageforge
//
// The generated file is built only without the messageforge tag, and it
// carries the declarations of the tagged files along. So code calling the
// generated constructors or methods must live in files with the opposite
// constraint:
//
//	//go:build !messageforge
//
// The "messageforge check" command reports generated files which are out of
// date, for use in CI.
//
// # Base record
//
// The type of the "base" field is the base record. It must be a struct with
// the members Content, Example, MessageType, AdditionalKwargs,
// ResponseMetadata, ID, and Name. The type of MessageType is the message kind.
// Message kinds are constants named after the kind type and the category of
// the message, such as MessageTypeHuman. The kind type must have a String
// method. If the package of the base record declares an interface named
// BaseMessage, the generated code asserts that the message type implements
// it.
//
// # Categories
//
// The category of a message type is its name without the "Message" suffix:
// HumanMessage has category Human and kind MessageTypeHuman. A name without
// the suffix is its own category, so FooBarBaz has kind MessageTypeFooBarBaz.
//
// # Role
//
// A message type may declare a field named "role". Then the constructors take
// the role as a parameter and Role returns the field. Otherwise, Role returns
// the string form of the stored message kind, and the constructor sets the
// base record's Role member to the same string. So base records of role-less
// message types must have a Role member.
//
// # Definitions
//
// Message types without extra fields need no declaration at all. [Define]
// declares the type by its kind and derives it at once:
//
//	// source:
//	var _ = messageforge.Define[BaseMessageFields](MessageTypeSystem)
//
//	// generated: (simplified)
//	type SystemMessage struct {
//		base BaseMessageFields
//	}
//
//	func NewSystemMessage(content string) *SystemMessage {
//		return NewSystemMessageWithExample(content, false)
//	}
//	...
package messageforge

// derivation is the result of a directive. It is unexported so directives can
// only be used as values discarded to the blank identifier.
type derivation *struct{}

// Derive directive generates constructors, accessors, mutators, and the
// message interface implementation for T. T must be a struct type declared in
// the current package with a "base" field and optional extra fields:
//
//	var _ = messageforge.Derive[HumanMessage]()
//
// Extra fields become constructor parameters in declaration order. A field
// named "role" is special-cased, see the package documentation.
func Derive[T any]() derivation {
	panic("messageforge: not generated")
}

// Define directive declares a message type by its kind and derives it. B is the
// base record type, and kind is a message kind constant:
//
//	var _ = messageforge.Define[BaseMessageFields](MessageTypeSystem)
//
// The name of the declared type is the category of the kind followed by
// "Message", such as SystemMessage for MessageTypeSystem. The type has no
// fields other than "base".
func Define[B any, K comparable](kind K) derivation {
	panic("messageforge: not generated")
}
