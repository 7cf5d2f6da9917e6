package bank

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Form lengths offered to users.
const (
	ShortForm = 60
	LongForm  = 120
)

var (
	ErrEmptyText       = errors.New("statement text is empty")
	ErrNoTags          = errors.New("statement has no tags")
	ErrUnknownLetter   = errors.New("unknown trait letter")
	ErrConflictingTags = errors.New("statement tags both letters of one axis")
)

//go:embed statements.yaml
var defaultBankYAML []byte

// Statement is a single quiz item.
type Statement struct {
	Text string `yaml:"text" json:"text"`
	Tags TagSet `yaml:"tags" json:"-"`
}

// NewStatement is a convenience constructor for banks built in code.
func NewStatement(text string, letters ...Letter) Statement {
	return Statement{Text: text, Tags: Tags(letters...)}
}

// Bank is an ordered, immutable statement sequence. Answers are matched to
// statements by position.
type Bank struct {
	statements []Statement
}

// New builds a bank without validation.
func New(statements ...Statement) *Bank {
	s := make([]Statement, len(statements))
	copy(s, statements)
	return &Bank{statements: s}
}

func (b *Bank) Len() int { return len(b.statements) }

// At returns the statement at index i and whether it exists.
func (b *Bank) At(i int) (Statement, bool) {
	if i < 0 || i >= len(b.statements) {
		return Statement{}, false
	}
	return b.statements[i], true
}

// Prefix returns the first n statements, clamped to [0, Len()]. The returned
// slice shares storage with the bank and must not be modified.
func (b *Bank) Prefix(n int) []Statement {
	if n <= 0 {
		return nil
	}
	if n > len(b.statements) {
		n = len(b.statements)
	}
	return b.statements[:n:n]
}

// Statements returns a copy of every statement.
func (b *Bank) Statements() []Statement {
	out := make([]Statement, len(b.statements))
	copy(out, b.statements)
	return out
}

// Validate checks every statement and joins all problems found.
func (b *Bank) Validate() error {
	var errs []error
	for i, s := range b.statements {
		if err := validateStatement(s); err != nil {
			errs = append(errs, fmt.Errorf("statement %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

func validateStatement(s Statement) error {
	if strings.TrimSpace(s.Text) == "" {
		return ErrEmptyText
	}
	if s.Tags.Empty() {
		return ErrNoTags
	}
	if c := s.Tags.Conflicts(); len(c) > 0 {
		return fmt.Errorf("%w: %s", ErrConflictingTags, c[0])
	}
	return nil
}

type bankFile struct {
	Statements []statementEntry `yaml:"statements"`
}

type statementEntry struct {
	Text string   `yaml:"text"`
	Tags []string `yaml:"tags"`
}

// Load parses and validates a YAML statement bank.
func Load(r io.Reader) (*Bank, error) {
	var f bankFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return New(), nil
		}
		return nil, fmt.Errorf("parse bank: %w", err)
	}

	statements := make([]Statement, 0, len(f.Statements))
	for i, e := range f.Statements {
		var tags TagSet
		for _, sym := range e.Tags {
			l, err := ParseLetter(sym)
			if err != nil {
				return nil, fmt.Errorf("statement %d: %w", i, err)
			}
			tags = tags.Add(l)
		}
		statements = append(statements, Statement{Text: e.Text, Tags: tags})
	}

	b := &Bank{statements: statements}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// LoadFile reads a bank from disk.
func LoadFile(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank: %w", err)
	}
	return Load(bytes.NewReader(data))
}

var (
	defaultOnce sync.Once
	defaultBank *Bank
)

// Default returns the embedded 120-statement bank. It panics if the embedded
// file is invalid, which the package tests rule out.
func Default() *Bank {
	defaultOnce.Do(func() {
		b, err := Load(bytes.NewReader(defaultBankYAML))
		if err != nil {
			panic(fmt.Sprintf("embedded statement bank: %v", err))
		}
		defaultBank = b
	})
	return defaultBank
}

// FormLength resolves the "questions" query value the way the start page
// does: "120" selects the long form and anything else the short form.
func FormLength(questions string) int {
	if strings.TrimSpace(questions) == "120" {
		return LongForm
	}
	return ShortForm
}

// FormLabel names a question count by the form it belongs to: "60", "120",
// or "other". Metric labels and event subjects use it so that arbitrary
// client counts map onto a fixed set of values.
func FormLabel(questionCount int) string {
	switch questionCount {
	case ShortForm:
		return "60"
	case LongForm:
		return "120"
	default:
		return "other"
	}
}
