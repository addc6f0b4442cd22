// Package categorizer assigns spending categories with a two-tier
// strategy: ordered keyword rules first, a trained TF-IDF text
// classifier as fallback, and the `other` label when neither tier
// yields anything. Categorization itself never fails.
package categorizer

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"finsight/internal/models"

	"github.com/google/uuid"
)

// MinTrainingCorpus is the minimum number of labeled descriptions a
// training run needs. Below it, training fails cleanly and leaves any
// previously loaded model untouched.
const MinTrainingCorpus = 20

// DefaultMaxFeatures bounds the TF-IDF vocabulary size.
const DefaultMaxFeatures = 5000

// ErrInsufficientTrainingData is returned when the corpus is below
// MinTrainingCorpus.
var ErrInsufficientTrainingData = errors.New("not enough labeled descriptions to train")

// ErrTrainingInProgress is returned when a training run is already
// holding the single-writer lock.
var ErrTrainingInProgress = errors.New("a training run is already in progress")

// Tier is one categorization strategy. Tiers are evaluated in priority
// order until one returns a label.
type Tier interface {
	Name() string
	Attempt(description string) (models.Category, bool)
}

// modelTier wraps the learned classifier. The current model is held
// behind an atomic pointer: read-only after load, safe to share across
// concurrent categorization calls, swapped wholesale on retrain.
type modelTier struct {
	current atomic.Pointer[Model]
}

func (t *modelTier) Name() string {
	return "model"
}

func (t *modelTier) Attempt(description string) (models.Category, bool) {
	model := t.current.Load()
	if model == nil || description == "" {
		return "", false
	}
	return model.Predict(description), true
}

// Categorizer is the priority-ordered tier chain plus the model
// lifecycle (load, train, swap).
type Categorizer struct {
	rules    *ruleTier
	model    *modelTier
	tiers    []Tier
	store    *ArtifactStore
	observer func(tier string)

	// trainMu serializes training runs; inference never takes it.
	trainMu sync.Mutex

	maxFeatures int
	forestCfg   forestConfig
}

// Option configures a Categorizer.
type Option func(*Categorizer)

// WithArtifactStore enables artifact persistence and initial load.
func WithArtifactStore(store *ArtifactStore) Option {
	return func(c *Categorizer) {
		c.store = store
	}
}

// WithObserver registers a callback invoked with the winning tier name
// on every categorization; used for metrics.
func WithObserver(fn func(tier string)) Option {
	return func(c *Categorizer) {
		c.observer = fn
	}
}

// WithForestConfig overrides ensemble training parameters.
func WithForestConfig(cfg forestConfig) Option {
	return func(c *Categorizer) {
		c.forestCfg = cfg
	}
}

// ForestConfig builds ensemble parameters for WithForestConfig. Zero
// values fall back to defaults.
func ForestConfig(numTrees, maxDepth int, seed int64) forestConfig {
	cfg := defaultForestConfig()
	if numTrees > 0 {
		cfg.numTrees = numTrees
	}
	if maxDepth > 0 {
		cfg.maxDepth = maxDepth
	}
	if seed != 0 {
		cfg.seed = seed
	}
	return cfg
}

// New builds the categorizer and, when an artifact store is
// configured, attempts to load a previously trained model. A missing
// or corrupt artifact pair only disables the learned tier.
func New(opts ...Option) *Categorizer {
	c := &Categorizer{
		rules:       newRuleTier(),
		model:       &modelTier{},
		maxFeatures: DefaultMaxFeatures,
		forestCfg:   defaultForestConfig(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.tiers = []Tier{c.rules, c.model}

	if c.store != nil {
		model, err := c.store.Load()
		if err != nil {
			slog.Warn("classifier artifacts not loaded, learned tier disabled",
				"error", err)
		} else {
			c.model.current.Store(model)
			slog.Info("classifier artifacts loaded",
				"classes", len(model.Classes),
				"features", model.Vectorizer.NumFeatures())
		}
	}
	return c
}

// ModelReady reports whether the learned tier has a model loaded.
func (c *Categorizer) ModelReady() bool {
	return c.model.current.Load() != nil
}

// Resolve runs the tier chain for one description and returns the
// label plus the name of the tier that produced it ("default" when
// every tier passed).
func (c *Categorizer) Resolve(description string) (models.Category, string) {
	for _, tier := range c.tiers {
		if category, ok := tier.Attempt(description); ok {
			c.observe(tier.Name())
			return category, tier.Name()
		}
	}
	c.observe("default")
	return models.CategoryOther, "default"
}

// Categorize populates the transaction's category field.
func (c *Categorizer) Categorize(t *models.Transaction) *models.Transaction {
	category, _ := c.Resolve(t.Description)
	t.Category = category
	return t
}

// BulkCategorize categorizes a batch in place and returns it.
func (c *Categorizer) BulkCategorize(transactions []models.Transaction) []models.Transaction {
	for i := range transactions {
		c.Categorize(&transactions[i])
	}
	return transactions
}

// Train fits the vectorizer and classifier on the transactions'
// descriptions. Explicit labels win; otherwise the rule tier's output
// (or `other`) is the training label, bootstrapping the model from its
// own rules. The new artifact pair is persisted and swapped in only
// after a fully successful fit, so a failed run leaves the prior model
// usable.
func (c *Categorizer) Train(transactions []models.Transaction, labels map[uuid.UUID]models.Category) error {
	if !c.trainMu.TryLock() {
		return ErrTrainingInProgress
	}
	defer c.trainMu.Unlock()

	var descriptions []string
	var categories []models.Category
	for i := range transactions {
		t := &transactions[i]
		if t.Description == "" {
			continue
		}
		label, ok := labels[t.ID]
		if !ok {
			if ruleLabel, matched := c.rules.Attempt(t.Description); matched {
				label = ruleLabel
			} else {
				label = models.CategoryOther
			}
		}
		descriptions = append(descriptions, t.Description)
		categories = append(categories, label)
	}

	if len(descriptions) < MinTrainingCorpus {
		return fmt.Errorf("%w: have %d, need %d",
			ErrInsufficientTrainingData, len(descriptions), MinTrainingCorpus)
	}

	docs := make([][]string, len(descriptions))
	for i, desc := range descriptions {
		docs[i] = tokenize(desc)
	}
	vectorizer := fitVectorizer(docs, c.maxFeatures)

	classIndex := make(map[models.Category]int)
	var classes []models.Category
	labelIDs := make([]int, len(categories))
	for i, category := range categories {
		idx, ok := classIndex[category]
		if !ok {
			idx = len(classes)
			classIndex[category] = idx
			classes = append(classes, category)
		}
		labelIDs[i] = idx
	}

	samples := make([][]float64, len(docs))
	for i, doc := range docs {
		samples[i] = vectorizer.Transform(doc)
	}

	forest := trainForest(samples, labelIDs, len(classes), c.forestCfg)
	model := &Model{
		Vectorizer: vectorizer,
		Forest:     forest,
		Classes:    classes,
	}

	if c.store != nil {
		if err := c.store.Save(model); err != nil {
			return fmt.Errorf("failed to persist classifier artifacts: %w", err)
		}
	}
	c.model.current.Store(model)

	slog.Info("classifier trained",
		"corpus_size", len(descriptions),
		"classes", len(classes),
		"features", vectorizer.NumFeatures(),
		"trees", c.forestCfg.numTrees)
	return nil
}

func (c *Categorizer) observe(tier string) {
	if c.observer != nil {
		c.observer(tier)
	}
}
