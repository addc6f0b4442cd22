package categorizer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"finsight/internal/models"
)

const (
	vectorizerFile = "vectorizer.json"
	classifierFile = "classifier.json"
)

// ErrModelUnavailable means the artifact pair is missing or corrupt.
// The learned tier degrades to unavailable; rule and default tiers
// keep working.
var ErrModelUnavailable = errors.New("classifier artifacts unavailable")

// Model is the trained artifact pair: a fitted vectorizer and a fitted
// classifier plus the class label mapping. Immutable after load; a
// retrain builds a fresh Model and swaps it in atomically.
type Model struct {
	Vectorizer *Vectorizer       `json:"-"`
	Forest     *Forest           `json:"-"`
	Classes    []models.Category `json:"classes"`
}

// Predict classifies a raw description.
func (m *Model) Predict(description string) models.Category {
	vec := m.Vectorizer.Transform(tokenize(description))
	class := m.Forest.Predict(vec)
	if class < 0 || class >= len(m.Classes) {
		return models.CategoryOther
	}
	return m.Classes[class]
}

// classifierArtifact is the serialized classifier blob: the ensemble
// and its class labels travel together.
type classifierArtifact struct {
	Classes []models.Category `json:"classes"`
	Forest  *Forest           `json:"forest"`
}

// ArtifactStore persists the artifact pair in a directory. Both blobs
// load together or not at all.
type ArtifactStore struct {
	dir string
}

// NewArtifactStore creates a store rooted at dir.
func NewArtifactStore(dir string) *ArtifactStore {
	return &ArtifactStore{dir: dir}
}

// Load reads and validates the artifact pair. A missing or undecodable
// file yields ErrModelUnavailable rather than a crash.
func (s *ArtifactStore) Load() (*Model, error) {
	var vectorizer Vectorizer
	if err := s.readJSON(vectorizerFile, &vectorizer); err != nil {
		return nil, err
	}

	var classifier classifierArtifact
	if err := s.readJSON(classifierFile, &classifier); err != nil {
		return nil, err
	}

	if classifier.Forest == nil || len(classifier.Classes) == 0 || vectorizer.NumFeatures() == 0 {
		return nil, fmt.Errorf("%w: artifact pair is incomplete", ErrModelUnavailable)
	}

	return &Model{
		Vectorizer: &vectorizer,
		Forest:     classifier.Forest,
		Classes:    classifier.Classes,
	}, nil
}

// Save writes both artifacts with write-temp-then-rename so a reader
// never observes a partially written pair.
func (s *ArtifactStore) Save(m *Model) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create artifact directory: %w", err)
	}

	if err := s.writeJSON(vectorizerFile, m.Vectorizer); err != nil {
		return err
	}
	return s.writeJSON(classifierFile, classifierArtifact{
		Classes: m.Classes,
		Forest:  m.Forest,
	})
}

func (s *ArtifactStore) readJSON(name string, v interface{}) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrModelUnavailable, name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s is corrupt: %v", ErrModelUnavailable, name, err)
	}
	return nil
}

func (s *ArtifactStore) writeJSON(name string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}

	target := filepath.Join(s.dir, name)
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp artifact: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to swap %s into place: %w", name, err)
	}
	return nil
}
