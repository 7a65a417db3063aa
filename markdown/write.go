package markdown

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/CognitoIQ/wsdlmd/category"
	"github.com/CognitoIQ/wsdlmd/internal/ordered"
)

// A WriteError is returned when a documentation file cannot be
// written. Files written before the failure are left in place.
type WriteError struct {
	File string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.File, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Types implementing the Logger interface receive a message for
// every file written. The Logger interface is implemented by
// *log.Logger.
type Logger interface {
	Printf(format string, v ...interface{})
}

// WriteFiles renders every non-empty document of docs into dir,
// followed by the index, overwriting existing files of the same
// name. dir is created if it does not exist. Category files are
// written in ascending order of category name. WriteFiles returns
// the names of the files it wrote, in order. If log is not nil, each
// file written is reported to it.
func WriteFiles(dir string, docs map[category.Category]*Document, log Logger) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &WriteError{File: dir, Err: err}
	}

	var (
		written  []string
		produced []category.Category
		err      error
	)
	ordered.RangeMap(docs, func(c category.Category, d *Document) {
		if err != nil || d.Len() == 0 || !c.Valid() {
			return
		}
		var buf bytes.Buffer
		if err = Render(&buf, d); err != nil {
			return
		}
		name := c.Info().File
		if err = writeFile(dir, name, buf.Bytes()); err != nil {
			return
		}
		if log != nil {
			log.Printf("wrote %s", name)
		}
		written = append(written, name)
		produced = append(produced, c)
	})
	if err != nil {
		return written, err
	}

	var buf bytes.Buffer
	if err := RenderIndex(&buf, produced); err != nil {
		return written, err
	}
	if err := writeFile(dir, IndexFile, buf.Bytes()); err != nil {
		return written, err
	}
	if log != nil {
		log.Printf("wrote %s", IndexFile)
	}
	return append(written, IndexFile), nil
}

func writeFile(dir, name string, data []byte) error {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &WriteError{File: path, Err: err}
	}
	return nil
}
