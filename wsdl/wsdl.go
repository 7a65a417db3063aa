// Package wsdl parses Web Service Definition Language documents.
//
// The wsdl package locates the XML Schema embedded in a WSDL
// document and collects the operations declared by its port types.
// Only the parts of the document needed to describe the service
// are read; bindings and services are ignored.
package wsdl // import "github.com/CognitoIQ/wsdlmd/wsdl"

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/CognitoIQ/wsdlmd/internal/qname"
	"github.com/CognitoIQ/wsdlmd/xmltree"
	"github.com/CognitoIQ/wsdlmd/xsd"
)

const wsdlNS = "http://schemas.xmlsoap.org/wsdl/"

// ErrSchemaNotFound is returned when a document does not contain an
// XML Schema <schema> element.
var ErrSchemaNotFound = errors.New("no <schema> element found")

// A ParseError is returned when an input document cannot be read or
// is not well-formed XML.
type ParseError struct {
	// Source names the document, such as a file name or URL.
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Source == "" {
		return "parse wsdl: " + e.Err.Error()
	}
	return fmt.Sprintf("parse %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// A Definition contains everything needed to document a service
// from a wsdl document.
type Definition struct {
	// The targetNamespace of the definitions element, or of the
	// schema if the definitions element does not declare one.
	TargetNS     string
	SimpleTypes  []xsd.SimpleType
	ComplexTypes []xsd.ComplexType
	Operations   []Operation
}

// An Operation describes an RPC call that can be made against the
// remote server. Input and Output name the request and response
// messages without their namespace prefix, and are empty if the
// operation does not declare them.
type Operation struct {
	Name   string
	Doc    string
	Input  string
	Output string
}

// Parse reads a WSDL definition from data. The source argument is
// only used in error messages. A document without a <schema> element
// yields an error matching ErrSchemaNotFound.
func Parse(source string, data []byte) (*Definition, error) {
	root, err := xmltree.Parse(data)
	if err != nil {
		return nil, &ParseError{Source: source, Err: err}
	}
	return newDefinition(source, root)
}

// Load is like Parse, but reads the document from r.
func Load(source string, r io.Reader) (*Definition, error) {
	root, err := xmltree.ParseReader(r)
	if err != nil {
		return nil, &ParseError{Source: source, Err: err}
	}
	return newDefinition(source, root)
}

// LoadFile reads and parses the WSDL document stored in filename.
func LoadFile(filename string) (*Definition, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, &ParseError{Source: filename, Err: err}
	}
	defer f.Close()
	return Load(filename, f)
}

// Fetch retrieves and parses the WSDL document at url. If client is
// nil, http.DefaultClient is used.
func Fetch(client *http.Client, url string) (*Definition, error) {
	if client == nil {
		client = http.DefaultClient
	}
	rsp, err := client.Get(url)
	if err != nil {
		return nil, &ParseError{Source: url, Err: err}
	}
	defer rsp.Body.Close()
	if rsp.StatusCode != http.StatusOK {
		return nil, &ParseError{Source: url, Err: fmt.Errorf("unexpected status %s", rsp.Status)}
	}
	return Load(url, rsp.Body)
}

func newDefinition(source string, root *xmltree.Element) (*Definition, error) {
	schema := xsd.FindSchema(root)
	if schema == nil {
		return nil, fmt.Errorf("%s: %w", source, ErrSchemaNotFound)
	}
	types := xsd.Parse(schema)
	def := &Definition{
		TargetNS:     root.Attr("", "targetNamespace"),
		SimpleTypes:  types.SimpleTypes,
		ComplexTypes: types.ComplexTypes,
		Operations:   ParseOperations(root),
	}
	if def.TargetNS == "" {
		def.TargetNS = types.TargetNS
	}
	return def, nil
}

// ParseOperations returns the operations of every <portType> in the
// document, in document order.
func ParseOperations(root *xmltree.Element) []Operation {
	var ops []Operation
	for _, portType := range root.Search(wsdlNS, "portType") {
		for _, el := range portType.FindAll(wsdlNS, "operation") {
			ops = append(ops, parseOperation(el))
		}
	}
	return ops
}

func parseOperation(el *xmltree.Element) Operation {
	op := Operation{
		Name: el.Attr("", "name"),
		Doc:  xsd.Documentation(el),
	}
	if in := el.Find(wsdlNS, "input"); in != nil {
		op.Input = qname.Local(in.Attr("", "message"))
	}
	if out := el.Find(wsdlNS, "output"); out != nil {
		op.Output = qname.Local(out.Attr("", "message"))
	}
	return op
}
