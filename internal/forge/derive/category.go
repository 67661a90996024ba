package derive

import "strings"

const messageSuffix = "Message"

// Category returns the category of a message type name, which is the name
// without the "Message" suffix. A name without the suffix is returned as is.
//
//	Category("HumanMessage") // "Human"
//	Category("FooBarBaz")    // "FooBarBaz"
func Category(name string) string {
	return strings.TrimSuffix(name, messageSuffix)
}

// DefinedName returns the name of the message type declared by a definition
// of the given kind constant. The kind constant must be named after its type
// followed by a category:
//
//	DefinedName("MessageType", "MessageTypeSystem") // "SystemMessage", true
//	DefinedName("MessageType", "System")            // "", false
func DefinedName(kindType, kind string) (string, bool) {
	category, ok := strings.CutPrefix(kind, kindType)
	if !ok || category == "" {
		return "", false
	}
	return category + messageSuffix, true
}
