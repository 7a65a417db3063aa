package xsd

import "github.com/CognitoIQ/wsdlmd/xmltree"

// Search predicates for the xmltree.Element.SearchFunc method
type predicate func(el *xmltree.Element) bool

func isElem(space, local string) predicate {
	return func(el *xmltree.Element) bool {
		if el.Name.Local != local {
			return false
		}
		return space == "" || el.Name.Space == space
	}
}

var (
	isSequence  = isElem(schemaNS, "sequence")
	isElement   = isElem(schemaNS, "element")
	isAttribute = isElem(schemaNS, "attribute")
	isSchema    = isElem(schemaNS, "schema")
	isDoc       = isElem(schemaNS, "documentation")
)
