package services

import (
	"testing"

	"finsight/internal/categorizer"
	"finsight/internal/database"
	"finsight/internal/models"
	"finsight/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestSeedService(t *testing.T) {
	suite.Run(t, new(SeedServiceSuite))
}

type SeedServiceSuite struct {
	suite.Suite
	db      *database.DB
	txnRepo repositories.TransactionRepositoryInterface
	user    *models.User
	service SeedServiceInterface
}

func (s *SeedServiceSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.txnRepo = repositories.NewTransactionRepository(s.db.DB)
	userRepo := repositories.NewUserRepository(s.db.DB)
	s.user = database.CreateTestUser(s.T(), s.db, "kiran")

	s.service = NewSeedService(
		NewTransactionGenerator(42),
		categorizer.New(),
		s.txnRepo,
		userRepo,
	)
}

func (s *SeedServiceSuite) TestSeed() {
	count, err := s.service.Seed(s.user.ID, 3, 15)
	s.NoError(err)
	s.Equal(45, count)

	stored, err := s.txnRepo.GetByUserID(s.user.ID, repositories.TransactionFilters{})
	s.NoError(err)
	s.Len(stored, 45)

	for _, txn := range stored {
		s.Equal(models.BankSBI, txn.Bank)
		s.True(models.IsValidCategory(txn.Category))
	}
}

func (s *SeedServiceSuite) TestSeed_UnknownUser() {
	_, err := s.service.Seed(uuid.New(), 3, 15)
	s.ErrorIs(err, ErrNotFound)
}

func (s *SeedServiceSuite) TestSeed_RejectsNonPositiveArgs() {
	_, err := s.service.Seed(s.user.ID, 0, 15)
	s.Error(err)

	_, err = s.service.Seed(s.user.ID, 3, -1)
	s.Error(err)

	count, err := s.txnRepo.CountByUserID(s.user.ID)
	s.NoError(err)
	s.Zero(count)
}
