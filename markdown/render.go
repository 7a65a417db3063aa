package markdown

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"unicode/utf8"

	"github.com/CognitoIQ/wsdlmd/wsdl"
	"github.com/CognitoIQ/wsdlmd/xsd"
)

// Field descriptions longer than this many characters are cut short
// in the field table.
const maxFieldDoc = 80

// Render writes the Markdown document of d to w. Operations, complex
// types and simple types are listed in that order, each section
// sorted by name and omitted when empty.
func Render(w io.Writer, d *Document) error {
	var buf bytes.Buffer
	info := d.Category.Info()

	fmt.Fprintf(&buf, "# %s\n\n", info.Title)
	fmt.Fprintf(&buf, "%s\n\n", info.Description)
	buf.WriteString("---\n\n")

	if len(d.Operations) > 0 {
		ops := append([]wsdl.Operation(nil), d.Operations...)
		sort.SliceStable(ops, func(i, j int) bool { return ops[i].Name < ops[j].Name })
		buf.WriteString("## Operationen\n\n")
		for _, op := range ops {
			writeOperation(&buf, op)
		}
	}
	if len(d.ComplexTypes) > 0 {
		types := append([]xsd.ComplexType(nil), d.ComplexTypes...)
		sort.SliceStable(types, func(i, j int) bool { return types[i].Name < types[j].Name })
		buf.WriteString("## Komplexe Typen\n\n")
		for _, t := range types {
			writeComplexType(&buf, t)
		}
	}
	if len(d.SimpleTypes) > 0 {
		types := append([]xsd.SimpleType(nil), d.SimpleTypes...)
		sort.SliceStable(types, func(i, j int) bool { return types[i].Name < types[j].Name })
		buf.WriteString("## Einfache Typen\n\n")
		for _, t := range types {
			writeSimpleType(&buf, t)
		}
	}

	_, err := w.Write(buf.Bytes())
	return err
}

func writeHeading(buf *bytes.Buffer, name, doc string) {
	fmt.Fprintf(buf, "### %s\n\n", name)
	if doc != "" {
		fmt.Fprintf(buf, "%s\n\n", doc)
	}
}

func writeOperation(buf *bytes.Buffer, op wsdl.Operation) {
	writeHeading(buf, op.Name, op.Doc)
	fmt.Fprintf(buf, "- **Request:** `%s`\n", op.Input)
	fmt.Fprintf(buf, "- **Response:** `%s`\n\n", op.Output)
}

func writeComplexType(buf *bytes.Buffer, t xsd.ComplexType) {
	writeHeading(buf, t.Name, t.Doc)

	if len(t.Elements) > 0 {
		buf.WriteString("#### Felder\n\n")
		buf.WriteString("| Feld | Typ | Pflicht | Beschreibung |\n")
		buf.WriteString("|------|-----|---------|-------------|\n")
		for _, f := range t.Elements {
			fmt.Fprintf(buf, "| `%s` | `%s` | %s | %s |\n",
				f.Name, f.Type, required(f), truncate(f.Doc, maxFieldDoc))
		}
		buf.WriteString("\n")
	}

	if len(t.Attributes) > 0 {
		buf.WriteString("#### Attribute\n\n")
		for _, a := range t.Attributes {
			fmt.Fprintf(buf, "- `%s` (%s): %s\n", a.Name, a.Type, a.Doc)
		}
		buf.WriteString("\n")
	}
}

func writeSimpleType(buf *bytes.Buffer, t xsd.SimpleType) {
	writeHeading(buf, t.Name, t.Doc)
	fmt.Fprintf(buf, "- **Basis-Typ:** `%s`\n", t.Base)

	if len(t.Constraints) > 0 {
		buf.WriteString("- **Einschränkungen:**\n")
		for _, c := range t.Constraints {
			fmt.Fprintf(buf, "  - %s\n", c)
		}
	}
	buf.WriteString("\n")
}

func required(f xsd.Field) string {
	if f.Required() {
		return "Ja"
	}
	return "Nein"
}

// truncate shortens s to its first n characters followed by "..."
// if s is longer than n characters.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + "..."
}
