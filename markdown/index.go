package markdown

import (
	_ "embed"
	"io"
	"text/template"

	"github.com/CognitoIQ/wsdlmd/category"
)

// IndexFile is the name of the index document.
const IndexFile = "README.md"

//go:embed index.md.tmpl
var indexSource string

var indexTmpl = template.Must(template.New("index").Parse(indexSource))

// RenderIndex writes the index document to w. The table of
// documentation files lists the categories in produced, in the
// order of category.All; categories missing from produced are
// left out.
func RenderIndex(w io.Writer, produced []category.Category) error {
	have := make(map[category.Category]bool, len(produced))
	for _, c := range produced {
		have[c] = true
	}
	rows := make([]category.Info, 0, len(produced))
	for _, c := range category.All {
		if have[c] {
			rows = append(rows, c.Info())
		}
	}
	return indexTmpl.Execute(w, rows)
}
