package xsd

import (
	"reflect"
	"testing"

	"github.com/CognitoIQ/wsdlmd/xmltree"
)

var schemaDoc = []byte(`<?xml version="1.0" encoding="UTF-8"?>
<wsdl:definitions xmlns:wsdl="http://schemas.xmlsoap.org/wsdl/"
    xmlns:xsd="http://www.w3.org/2001/XMLSchema"
    xmlns:tns="http://zep.provantis.de"
    targetNamespace="http://zep.provantis.de">
  <wsdl:types>
    <xsd:schema targetNamespace="http://zep.provantis.de">
      <xsd:simpleType name="String20">
        <xsd:annotation>
          <xsd:documentation>
            Zeichenkette mit
            maximal 20 Zeichen.
          </xsd:documentation>
        </xsd:annotation>
        <xsd:restriction base="xsd:string">
          <xsd:maxLength value="20"/>
          <xsd:pattern value="[A-Z]+"/>
          <xsd:whiteSpace/>
        </xsd:restriction>
      </xsd:simpleType>
      <xsd:simpleType name="IdListe">
        <xsd:list itemType="xsd:int"/>
      </xsd:simpleType>
      <xsd:complexType name="ProjektType">
        <xsd:annotation>
          <xsd:documentation>Ein Projekt.</xsd:documentation>
        </xsd:annotation>
        <xsd:sequence>
          <xsd:element name="id" type="xsd:int"/>
          <xsd:element name="bezeichnung" type="tns:String20" minOccurs="0">
            <xsd:annotation>
              <xsd:documentation>Bezeichnung   des Projekts</xsd:documentation>
            </xsd:annotation>
          </xsd:element>
          <xsd:choice>
            <xsd:element name="kundeNr" type="xsd:string" maxOccurs="unbounded"/>
          </xsd:choice>
          <xsd:sequence>
            <xsd:element ref="tns:attributes"/>
          </xsd:sequence>
        </xsd:sequence>
        <xsd:attribute name="version" type="xsd:string">
          <xsd:annotation>
            <xsd:documentation>Version</xsd:documentation>
          </xsd:annotation>
        </xsd:attribute>
      </xsd:complexType>
      <xsd:complexType name="LeerType"/>
      <xsd:element name="wrapper">
        <xsd:complexType name="NestedType"/>
      </xsd:element>
    </xsd:schema>
  </wsdl:types>
</wsdl:definitions>`)

func parseSchema(t *testing.T, doc []byte) Schema {
	root, err := xmltree.Parse(doc)
	if err != nil {
		t.Fatal(err)
	}
	el := FindSchema(root)
	if el == nil {
		t.Fatal("no <schema> element found")
	}
	return Parse(el)
}

func TestParse(t *testing.T) {
	s := parseSchema(t, schemaDoc)
	if s.TargetNS != "http://zep.provantis.de" {
		t.Errorf("TargetNS = %q", s.TargetNS)
	}
	if len(s.SimpleTypes) != 2 {
		t.Errorf("got %d simple types, want 2", len(s.SimpleTypes))
	}
	var names []string
	for _, c := range s.ComplexTypes {
		names = append(names, c.Name)
	}
	if want := []string{"ProjektType", "LeerType"}; !reflect.DeepEqual(names, want) {
		t.Errorf("complex types = %v, want %v", names, want)
	}
}

func TestParseSimpleType(t *testing.T) {
	s := parseSchema(t, schemaDoc)
	want := SimpleType{
		Name:        "String20",
		Doc:         "Zeichenkette mit maximal 20 Zeichen.",
		Base:        "string",
		Constraints: []string{"maxLength: 20", "pattern: [A-Z]+"},
	}
	if !reflect.DeepEqual(s.SimpleTypes[0], want) {
		t.Errorf("got %#v\nwant %#v", s.SimpleTypes[0], want)
	}
	list := s.SimpleTypes[1]
	if list.Name != "IdListe" || list.Base != "" || len(list.Constraints) != 0 {
		t.Errorf("list type without restriction parsed as %#v", list)
	}
}

func TestParseComplexType(t *testing.T) {
	s := parseSchema(t, schemaDoc)
	ct := s.ComplexTypes[0]
	if ct.Doc != "Ein Projekt." {
		t.Errorf("Doc = %q", ct.Doc)
	}
	wantFields := []Field{
		{Name: "id", Type: "int", MinOccurs: "1", MaxOccurs: "1"},
		{Name: "bezeichnung", Type: "String20", MinOccurs: "0", MaxOccurs: "1", Doc: "Bezeichnung des Projekts"},
		{Name: "kundeNr", Type: "string", MinOccurs: "1", MaxOccurs: "unbounded"},
		{Name: "attributes", Type: "attributes", MinOccurs: "1", MaxOccurs: "1"},
	}
	if !reflect.DeepEqual(ct.Elements, wantFields) {
		t.Errorf("fields:\n got %#v\nwant %#v", ct.Elements, wantFields)
	}
	wantAttrs := []Attribute{{Name: "version", Type: "string", Doc: "Version"}}
	if !reflect.DeepEqual(ct.Attributes, wantAttrs) {
		t.Errorf("attributes:\n got %#v\nwant %#v", ct.Attributes, wantAttrs)
	}

	empty := s.ComplexTypes[1]
	if empty.Doc != "" || len(empty.Elements) != 0 || len(empty.Attributes) != 0 {
		t.Errorf("empty type parsed as %#v", empty)
	}

	// Each sequence lists its own elements before any sequence
	// nested inside it is read.
	nested := parseSchema(t, []byte(`<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
	  <xs:complexType name="BelegType">
	    <xs:sequence>
	      <xs:element name="a" type="xs:string"/>
	      <xs:element name="b">
	        <xs:complexType>
	          <xs:sequence>
	            <xs:element name="c" type="xs:string"/>
	          </xs:sequence>
	        </xs:complexType>
	      </xs:element>
	      <xs:choice>
	        <xs:element name="d" type="xs:string"/>
	      </xs:choice>
	      <xs:element name="e">
	        <xs:complexType>
	          <xs:sequence>
	            <xs:element name="f" type="xs:string"/>
	            <xs:sequence>
	              <xs:element name="g" type="xs:string"/>
	            </xs:sequence>
	          </xs:sequence>
	        </xs:complexType>
	      </xs:element>
	      <xs:element name="h" type="xs:string"/>
	    </xs:sequence>
	  </xs:complexType>
	</xs:schema>`))
	var order []string
	for _, f := range nested.ComplexTypes[0].Elements {
		order = append(order, f.Name)
	}
	if want := []string{"a", "b", "d", "e", "h", "c", "f", "g"}; !reflect.DeepEqual(order, want) {
		t.Errorf("nested field order = %v, want %v", order, want)
	}
}

func TestFieldRequired(t *testing.T) {
	tests := map[string]bool{
		"0":  false,
		"1":  true,
		"2":  true,
		"":   true,
		"00": true,
	}
	for min, want := range tests {
		if got := (Field{MinOccurs: min}).Required(); got != want {
			t.Errorf("Field{MinOccurs: %q}.Required() = %v, want %v", min, got, want)
		}
	}
}

func TestFindSchemaRoot(t *testing.T) {
	doc := []byte(`<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
	  <xs:simpleType name="Datum"><xs:restriction base="xs:date"/></xs:simpleType>
	</xs:schema>`)
	s := parseSchema(t, doc)
	if len(s.SimpleTypes) != 1 || s.SimpleTypes[0].Base != "date" {
		t.Errorf("bare schema parsed as %#v", s)
	}
}

func TestFindSchemaMissing(t *testing.T) {
	root, err := xmltree.Parse([]byte(`<definitions><types/></definitions>`))
	if err != nil {
		t.Fatal(err)
	}
	if el := FindSchema(root); el != nil {
		t.Errorf("FindSchema found <%s> in a document without a schema", el.Name.Local)
	}
}

func TestDocumentation(t *testing.T) {
	tests := []struct {
		doc, want string
	}{
		{`<el/>`, ""},
		{`<el xmlns:xs="http://www.w3.org/2001/XMLSchema"><xs:annotation><xs:documentation>   </xs:documentation></xs:annotation></el>`, ""},
		{`<el xmlns:xs="http://www.w3.org/2001/XMLSchema"><xs:documentation>a
		  b	c</xs:documentation></el>`, "a b c"},
		{`<el xmlns:w="http://schemas.xmlsoap.org/wsdl/"><w:documentation>Liest Projekte</w:documentation></el>`, ""},
		{`<el xmlns:xs="http://www.w3.org/2001/XMLSchema"><xs:documentation> Kunde <b>alt</b> und neu</xs:documentation></el>`, "Kunde"},
		{`<el xmlns:xs="http://www.w3.org/2001/XMLSchema"><xs:documentation/><xs:documentation>later</xs:documentation></el>`, ""},
		{`<el xmlns:xs="http://www.w3.org/2001/XMLSchema"><x><xs:documentation>first</xs:documentation></x><xs:documentation>second</xs:documentation></el>`, "first"},
		{`<el><documentation>no namespace</documentation></el>`, ""},
	}
	for _, tt := range tests {
		root, err := xmltree.Parse([]byte(tt.doc))
		if err != nil {
			t.Fatal(err)
		}
		if got := Documentation(root); got != tt.want {
			t.Errorf("Documentation(%s) = %q, want %q", tt.doc, got, tt.want)
		}
	}
}
