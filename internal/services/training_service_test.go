package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"finsight/internal/categorizer"
	"finsight/internal/database"
	"finsight/internal/models"
	"finsight/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestTrainingService(t *testing.T) {
	suite.Run(t, new(TrainingServiceSuite))
}

type TrainingServiceSuite struct {
	suite.Suite
	db          *database.DB
	txnRepo     repositories.TransactionRepositoryInterface
	user        *models.User
	categorizer *categorizer.Categorizer
	service     TrainingServiceInterface
}

func (s *TrainingServiceSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.txnRepo = repositories.NewTransactionRepository(s.db.DB)
	s.user = database.CreateTestUser(s.T(), s.db, "ravi")

	s.categorizer = categorizer.New(
		categorizer.WithArtifactStore(categorizer.NewArtifactStore(s.T().TempDir())),
		categorizer.WithForestConfig(categorizer.ForestConfig(20, 8, 42)),
	)
	s.service = NewTrainingService(s.categorizer, s.txnRepo, nil)
}

func (s *TrainingServiceSuite) seedCorpus() {
	batch := make([]models.Transaction, 0, 24)
	for i := 0; i < 12; i++ {
		batch = append(batch, models.Transaction{
			Date:            models.NewDate(2024, time.January, 1+i),
			Description:     fmt.Sprintf("UPI-SWIGGY ORDER %d", i),
			Amount:          decimal.NewFromFloat(250),
			TransactionType: models.TransactionTypeDebit,
			Bank:            models.BankSBI,
		})
		batch = append(batch, models.Transaction{
			Date:            models.NewDate(2024, time.January, 1+i),
			Description:     fmt.Sprintf("ZERODHA SETTLEMENT %d", i),
			Amount:          decimal.NewFromFloat(5000),
			TransactionType: models.TransactionTypeDebit,
			Bank:            models.BankSBI,
		})
	}
	s.Require().NoError(s.txnRepo.SaveBatch(batch, s.user.ID))
}

func (s *TrainingServiceSuite) TestTrain_SelfSupervisedFromStoredCorpus() {
	s.seedCorpus()

	s.NoError(s.service.Train(nil))
	s.True(s.categorizer.ModelReady())
}

func (s *TrainingServiceSuite) TestTrain_InsufficientCorpus() {
	s.ErrorIs(s.service.Train(nil), categorizer.ErrInsufficientTrainingData)
	s.False(s.categorizer.ModelReady())
}

func (s *TrainingServiceSuite) TestTrain_ExplicitLabelsOverride() {
	s.seedCorpus()

	stored, err := s.txnRepo.GetAll()
	s.Require().NoError(err)

	// relabel every Zerodha row as bills; the learned tier should pick
	// up the correction
	labels := make(map[uuid.UUID]models.Category)
	for _, txn := range stored {
		if strings.HasPrefix(txn.Description, "ZERODHA") {
			labels[txn.ID] = models.CategoryBills
		}
	}

	s.NoError(s.service.Train(labels))

	category, tier := s.categorizer.Resolve("settlement payout note")
	s.Equal("model", tier)
	s.Equal(models.CategoryBills, category)
}

func (s *TrainingServiceSuite) TestOverride() {
	s.seedCorpus()

	stored, err := s.txnRepo.GetAll()
	s.Require().NoError(err)
	target := stored[0]

	s.NoError(s.service.Override(target.ID, models.CategoryShopping))

	updated, err := s.txnRepo.GetByID(target.ID)
	s.Require().NoError(err)
	s.Equal(models.CategoryShopping, updated.Category)
}

func (s *TrainingServiceSuite) TestOverride_NotFound() {
	s.ErrorIs(s.service.Override(uuid.New(), models.CategoryFood),
		repositories.ErrTransactionNotFound)
}
