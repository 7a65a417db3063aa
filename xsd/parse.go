package xsd

import (
	"strings"

	"github.com/CognitoIQ/wsdlmd/internal/qname"
	"github.com/CognitoIQ/wsdlmd/xmltree"
)

// FindSchema locates the <schema> element in a document. If root is
// itself a <schema> element, as in a plain .xsd file, root is
// returned. Otherwise the first <schema> descendant in document
// order is returned, or nil if the document has none.
func FindSchema(root *xmltree.Element) *xmltree.Element {
	if isSchema(root) {
		return root
	}
	return root.FindDescendant(schemaNS, "schema")
}

// Parse reads the top-level simple and complex type declarations of
// a <schema> element. Declarations nested inside other declarations,
// such as anonymous types of elements, are not included.
func Parse(schema *xmltree.Element) Schema {
	s := Schema{TargetNS: schema.Attr("", "targetNamespace")}
	walk(schema, func(el *xmltree.Element) {
		switch el.Name.Local {
		case "simpleType":
			s.SimpleTypes = append(s.SimpleTypes, ParseSimpleType(el))
		case "complexType":
			s.ComplexTypes = append(s.ComplexTypes, ParseComplexType(el))
		}
	})
	return s
}

// ParseSimpleType reads a <simpleType> declaration. Each child of
// its <restriction> becomes one constraint of the form
// "facet: value", provided it has a non-empty value attribute.
func ParseSimpleType(root *xmltree.Element) SimpleType {
	t := SimpleType{
		Name: root.Attr("", "name"),
		Doc:  Documentation(root),
	}
	restriction := root.Find(schemaNS, "restriction")
	if restriction == nil {
		return t
	}
	t.Base = qname.Local(restriction.Attr("", "base"))
	for _, facet := range restriction.Children {
		value := facet.Attr("", "value")
		if facet.Name.Local == "" || value == "" {
			continue
		}
		t.Constraints = append(t.Constraints, facet.Name.Local+": "+value)
	}
	return t
}

// ParseComplexType reads a <complexType> declaration. Every element
// nested anywhere below a <sequence> of the type becomes a Field, and
// every attribute anywhere in the type becomes an Attribute.
func ParseComplexType(root *xmltree.Element) ComplexType {
	t := ComplexType{
		Name: root.Attr("", "name"),
		Doc:  Documentation(root),
	}
	walkSequences(root, func(el *xmltree.Element) {
		t.Elements = append(t.Elements, parseField(el))
	})
	for _, el := range root.SearchFunc(isAttribute) {
		t.Attributes = append(t.Attributes, parseAttribute(el))
	}
	return t
}

func parseField(el *xmltree.Element) Field {
	name, typ := declName(el)
	return Field{
		Name:      name,
		Type:      typ,
		MinOccurs: attrDefault(el, "minOccurs", "1"),
		MaxOccurs: attrDefault(el, "maxOccurs", "1"),
		Doc:       Documentation(el),
	}
}

func parseAttribute(el *xmltree.Element) Attribute {
	name, typ := declName(el)
	return Attribute{
		Name: name,
		Type: typ,
		Doc:  Documentation(el),
	}
}

// declName returns the name and type of an element or attribute
// declaration. Declarations of the form <element ref="tns:foo"/>
// borrow both from the referenced name.
func declName(el *xmltree.Element) (name, typ string) {
	name = el.Attr("", "name")
	typ = qname.Local(el.Attr("", "type"))
	if ref := qname.Local(el.Attr("", "ref")); name == "" && ref != "" {
		name = ref
		if typ == "" {
			typ = ref
		}
	}
	return name, typ
}

func attrDefault(el *xmltree.Element, local, def string) string {
	if v, ok := el.LookupAttr("", local); ok {
		return v
	}
	return def
}

// Documentation returns the text of the first XML Schema
// <documentation> element found anywhere below el, with runs of
// white space collapsed to a single space and leading and trailing
// white space removed. Only the text preceding any markup inside
// the element is used. If there is no such element, or its text is
// blank, Documentation returns the empty string; later
// <documentation> elements are not consulted.
func Documentation(el *xmltree.Element) string {
	for _, doc := range el.SearchFunc(isDoc) {
		return CollapseSpace(string(doc.Content))
	}
	return ""
}

// CollapseSpace replaces every run of white space in s with a single
// space and trims white space from both ends.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
