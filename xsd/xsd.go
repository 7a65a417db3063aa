// Package xsd extracts type declarations from an XML Schema.
//
// The xsd package reads the <simpleType> and <complexType>
// declarations found directly under a <schema> element and
// flattens them into plain records that are convenient for
// producing documentation. It does not resolve type references,
// imports or includes, and it does not validate the schema.
package xsd // import "github.com/CognitoIQ/wsdlmd/xsd"

const schemaNS = "http://www.w3.org/2001/XMLSchema"

// A SimpleType is a named <simpleType> declaration. Only
// restriction-derived simple types carry a Base and Constraints;
// list and union types are recorded with their name and
// documentation only.
type SimpleType struct {
	Name string
	// Annotation provided by the schema author, with white space
	// collapsed.
	Doc string
	// The restricted type, without a namespace prefix.
	Base string
	// One "facet: value" string per restriction facet, in
	// document order, e.g. "maxLength: 20".
	Constraints []string
}

// A ComplexType is a named <complexType> declaration.
type ComplexType struct {
	Name       string
	Doc        string
	Elements   []Field
	Attributes []Attribute
}

// A Field is an <element> declared inside a <sequence> of a complex
// type. MinOccurs and MaxOccurs hold the attribute values verbatim,
// and default to "1" when the attribute is absent.
type Field struct {
	Name      string
	Type      string
	MinOccurs string
	MaxOccurs string
	Doc       string
}

// Required reports whether the field must appear at least once.
func (f Field) Required() bool {
	return f.MinOccurs != "0"
}

// An Attribute is an <attribute> declared anywhere inside a complex
// type.
type Attribute struct {
	Name string
	Type string
	Doc  string
}

// A Schema holds the top-level type declarations of a <schema>
// element, in document order.
type Schema struct {
	// The targetNamespace attribute of the <schema> element.
	TargetNS     string
	SimpleTypes  []SimpleType
	ComplexTypes []ComplexType
}
