// Package export writes practice results, the mistake notebook and
// printable worksheets to files, and reads notebooks back in.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/abhisek/mathdrill/internal/notebook"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/session"
)

// Version is the document format written by this package. Imports accept
// any document with the same major version.
const Version = "v1.0.0"

const dateLayout = "2006-01-02"

// ResultsFileName returns the file name for a results export on day now.
func ResultsFileName(now time.Time) string {
	return "math-practice-" + now.Format(dateLayout) + ".json"
}

// NotebookFileName returns the file name for a notebook export.
func NotebookFileName(now time.Time) string {
	return "wrong-questions-" + now.Format(dateLayout) + ".json"
}

// WorksheetFileName returns the file name for a PDF worksheet.
func WorksheetFileName(now time.Time) string {
	return "worksheet-" + now.Format(dateLayout) + ".pdf"
}

// AnsweredQuestion is one scored question in a results export.
type AnsweredQuestion struct {
	Expression string          `json:"expression"`
	Answer     int             `json:"answer"`
	UserAnswer int             `json:"userAnswer"`
	Correct    bool            `json:"isCorrect"`
	Kind       problemgen.Kind `json:"type"`
	Difficulty int             `json:"difficulty"`
}

// ResultsDocument is the results export of one timed session.
type ResultsDocument struct {
	Version        string             `json:"version"`
	Date           time.Time          `json:"date"`
	Mode           problemgen.Domain  `json:"mode"`
	Correct        int                `json:"correct"`
	Wrong          int                `json:"wrong"`
	Total          int                `json:"total"`
	Accuracy       int                `json:"accuracy"`
	Questions      []AnsweredQuestion `json:"questions"`
	WrongQuestions []notebook.Record  `json:"wrongQuestions"`
}

// NewResults builds a results document from a session summary and the
// current notebook contents.
func NewResults(domain problemgen.Domain, sum *session.SessionSummary, wrong []notebook.Record, now time.Time) ResultsDocument {
	doc := ResultsDocument{
		Version:        Version,
		Date:           now,
		Mode:           domain,
		Correct:        sum.TotalCorrect,
		Wrong:          sum.TotalWrong,
		Total:          sum.TotalQuestions,
		Accuracy:       sum.Accuracy,
		Questions:      make([]AnsweredQuestion, 0, len(sum.Results)),
		WrongQuestions: wrong,
	}
	if doc.WrongQuestions == nil {
		doc.WrongQuestions = []notebook.Record{}
	}
	for _, r := range sum.Results {
		doc.Questions = append(doc.Questions, AnsweredQuestion{
			Expression: r.Question.Expression(),
			Answer:     r.Question.Answer(),
			UserAnswer: r.UserAnswer,
			Correct:    r.Correct,
			Kind:       r.Question.Kind(),
			Difficulty: r.Question.Difficulty,
		})
	}
	return doc
}

// NotebookDocument is the notebook export.
type NotebookDocument struct {
	Version string    `json:"version"`
	Date    time.Time `json:"date"`
	notebook.Snapshot
}

// NewNotebook wraps a notebook snapshot for export.
func NewNotebook(snap notebook.Snapshot, now time.Time) NotebookDocument {
	if snap.Records == nil {
		snap.Records = []notebook.Record{}
	}
	return NotebookDocument{Version: Version, Date: now, Snapshot: snap}
}

// WriteJSON writes doc as indented JSON.
func WriteJSON(w io.Writer, doc any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return nil
}

// WriteFile writes doc as JSON to dir/name and returns the path.
func WriteFile(dir, name string, doc any) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(f, doc); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}
