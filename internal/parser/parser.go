// Package parser converts raw bank statements (CSV text or text
// already extracted from a PDF) into canonical transactions. Dispatch
// is table-driven over the bank dialect; adding a bank means adding a
// dialect, never branching on bank names in shared code.
package parser

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"finsight/internal/models"

	"github.com/google/uuid"
)

// ContentKind selects the dialect routine for a statement body.
type ContentKind int

const (
	// KindTabular is delimited CSV text.
	KindTabular ContentKind = iota
	// KindText is free text extracted from a PDF by an external
	// collaborator; PDF decoding itself happens outside this module.
	KindText
)

// TextExtractor is the collaborator boundary for PDF decoding. When no
// extractor is configured, .pdf content is assumed to be text that was
// extracted upstream.
type TextExtractor interface {
	ExtractText(content []byte) (string, error)
}

// Result carries the parsed records plus the partial-failure evidence:
// per-record errors for rows that failed dialect parsing and a count
// of free-text lines that did not match the record pattern.
type Result struct {
	Transactions []models.Transaction
	SkippedLines int
	RecordErrors []*RecordError
}

// Service parses statements for every supported bank dialect.
type Service struct {
	dialects  map[models.Bank]Dialect
	extractor TextExtractor
}

// Option configures a Service.
type Option func(*Service)

// WithTextExtractor plugs in the external PDF text extractor.
func WithTextExtractor(extractor TextExtractor) Option {
	return func(s *Service) {
		s.extractor = extractor
	}
}

// NewService builds a parser with all supported dialects registered.
func NewService(opts ...Option) *Service {
	s := &Service{
		dialects: make(map[models.Bank]Dialect),
	}
	for _, d := range []Dialect{newSBIDialect(), newHDFCDialect(), newAxisDialect()} {
		s.dialects[d.Bank()] = d
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SupportedBanks lists registered dialects in stable order.
func (s *Service) SupportedBanks() []models.Bank {
	banks := make([]models.Bank, 0, len(s.dialects))
	for bank := range s.dialects {
		banks = append(banks, bank)
	}
	sort.Slice(banks, func(i, j int) bool { return banks[i] < banks[j] })
	return banks
}

// ParseFile routes a statement file by extension: .csv to the tabular
// routine, .pdf/.txt to the free-text routine. Anything else fails
// with ErrUnsupportedFormat.
func (s *Service) ParseFile(filename string, content []byte, bank models.Bank, userID uuid.UUID) (*Result, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return s.Parse(string(content), KindTabular, bank, userID)
	case ".pdf":
		text := string(content)
		if s.extractor != nil {
			extracted, err := s.extractor.ExtractText(content)
			if err != nil {
				return nil, fmt.Errorf("failed to extract text from %s: %w", filename, err)
			}
			text = extracted
		}
		return s.Parse(text, KindText, bank, userID)
	case ".txt":
		return s.Parse(string(content), KindText, bank, userID)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}
}

// Parse converts statement content into transactions for one user.
// Every produced record carries the dialect's bank identifier and the
// supplied user ID; IDs stay unset until the store assigns them.
func (s *Service) Parse(content string, kind ContentKind, bank models.Bank, userID uuid.UUID) (*Result, error) {
	d, ok := s.dialects[models.NormalizeBank(string(bank))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedBank, bank, s.supportedList())
	}

	switch kind {
	case KindTabular:
		return d.ParseTabular(content, userID)
	case KindText:
		return d.ParseText(content, userID)
	default:
		return nil, fmt.Errorf("%w: unknown content kind %d", ErrUnsupportedFormat, kind)
	}
}

func (s *Service) supportedList() string {
	banks := s.SupportedBanks()
	names := make([]string, len(banks))
	for i, b := range banks {
		names[i] = string(b)
	}
	return strings.Join(names, ", ")
}
