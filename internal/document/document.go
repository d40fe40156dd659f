// Package document decodes YAML statement documents into statement models.
//
// A document holds exactly one of the select, insert, update and delete
// sections:
//
//	update:
//	  table: {name: users}
//	  sets:
//	    - {column: name, value: alice}
//	  where:
//	    - {field: id, op: "=", value: 1}
package document

import (
	"io"
	"os"

	query "github.com/izayoijiichan/izayoi-data-query"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoStatement is returned for a document without any statement section.
	ErrNoStatement = errors.New("no statement in document")
	// ErrMultipleStatements is returned for a document with more than one statement section.
	ErrMultipleStatements = errors.New("more than one statement in document")
	// ErrUnknownName is returned for an unrecognized join type, sort
	// direction, connector or json mode.
	ErrUnknownName = errors.New("unknown name")
)

// Document is a statement document.
type Document struct {
	Select *Select `yaml:"select"`
	Insert *Insert `yaml:"insert"`
	Update *Update `yaml:"update"`
	Delete *Delete `yaml:"delete"`
}

// Load reads the document at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open statement document")
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a document from r. Unknown keys are errors.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoStatement
		}
		return nil, errors.Wrap(err, "decode statement document")
	}
	return &doc, nil
}

// Statement returns the statement model of the document.
func (d *Document) Statement() (query.Statement, error) {
	sections := 0
	for _, present := range []bool{d.Select != nil, d.Insert != nil, d.Update != nil, d.Delete != nil} {
		if present {
			sections++
		}
	}
	switch {
	case sections == 0:
		return nil, ErrNoStatement
	case sections > 1:
		return nil, ErrMultipleStatements
	}
	var (
		stmt query.Statement
		err  error
	)
	switch {
	case d.Select != nil:
		stmt, err = d.Select.Model()
	case d.Insert != nil:
		stmt, err = d.Insert.Model()
	case d.Update != nil:
		stmt, err = d.Update.Model()
	default:
		stmt, err = d.Delete.Model()
	}
	if err != nil {
		return nil, err
	}
	return stmt, nil
}
