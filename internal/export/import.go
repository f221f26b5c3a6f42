package export

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"

	"github.com/abhisek/mathdrill/internal/notebook"
)

//go:embed notebook.schema.json
var notebookSchema []byte

const notebookSchemaURL = "schema://notebook.json"

var (
	// ErrInvalidDocument is returned when an import fails schema validation.
	ErrInvalidDocument = errors.New("invalid notebook document")

	// ErrIncompatibleVersion is returned for documents from another major
	// version of the format.
	ErrIncompatibleVersion = errors.New("incompatible notebook version")
)

var compileNotebookSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(notebookSchema))
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(notebookSchemaURL, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(notebookSchemaURL)
})

// ReadNotebook validates a notebook export and returns its records.
// Documents without a version predate versioning and are accepted.
func ReadNotebook(r io.Reader) ([]notebook.Record, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read notebook: %w", err)
	}

	schema, err := compileNotebookSchema()
	if err != nil {
		return nil, fmt.Errorf("compile notebook schema: %w", err)
	}
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	var doc NotebookDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if doc.Version != "" && semver.Major(doc.Version) != semver.Major(Version) {
		return nil, fmt.Errorf("%w: %s (want %s.x)", ErrIncompatibleVersion, doc.Version, semver.Major(Version))
	}
	return doc.Records, nil
}

// Merge adds recs to nb with the notebook's usual de-duplication and
// returns how many were new.
func Merge(nb *notebook.Notebook, recs []notebook.Record) int {
	added := 0
	// Oldest first so the newest import ends up at the front.
	for i := len(recs) - 1; i >= 0; i-- {
		if nb.Merge(recs[i]) {
			added++
		}
	}
	return added
}
