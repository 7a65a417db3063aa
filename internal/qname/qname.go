// Package qname normalizes the qualified names that appear in XML tag
// names and in QName-valued attributes such as type="tns:Foo".
package qname

import "strings"

// Split separates a qualified name into its prefix and local part.
// Both prefixed names ("tns:Foo") and Clark notation ("{urn:x}Foo")
// are understood; for Clark notation the prefix is the namespace URI.
// A name without a qualifier has an empty prefix.
func Split(name string) (prefix, local string) {
	if strings.HasPrefix(name, "{") {
		if i := strings.IndexByte(name, '}'); i > 0 {
			return name[1:i], name[i+1:]
		}
	}
	if i := strings.LastIndexByte(name, ':'); i >= 0 {
		return name[:i], name[i+1:]
	}
	return "", name
}

// Local returns the local part of a qualified name:
//
//	Local("tns:Projekt")        == "Projekt"
//	Local("{urn:zep}Projekt")  == "Projekt"
//	Local("Projekt")            == "Projekt"
//	Local("")                   == ""
//
// Surrounding white space is ignored.
func Local(name string) string {
	_, local := Split(strings.TrimSpace(name))
	return local
}
