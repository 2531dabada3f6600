package repositories

import (
	"testing"
	"time"

	"fintrack/internal/database"
	"fintrack/internal/models"

	"github.com/stretchr/testify/suite"
)

// CategoryRepositorySuite defines the test suite for CategoryRepository
type CategoryRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo CategoryRepositoryInterface
}

// SetupTest runs before each test in the suite
func (s *CategoryRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewCategoryRepository(s.db.DB)
}

// TearDownTest runs after each test in the suite
func (s *CategoryRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestCategoryRepositorySuite runs the test suite
func TestCategoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(CategoryRepositorySuite))
}

func (s *CategoryRepositorySuite) TestCreate() {
	category := &models.Category{Name: "Groceries"}

	err := s.repo.Create(category)
	s.NoError(err)
	s.NotZero(category.ID)
}

func (s *CategoryRepositorySuite) TestCreate_DuplicateName() {
	s.NoError(s.repo.Create(&models.Category{Name: "Groceries"}))

	err := s.repo.Create(&models.Category{Name: "Groceries"})
	s.Error(err)
}

func (s *CategoryRepositorySuite) TestGetByID_NotFound() {
	category, err := s.repo.GetByID(99999)
	s.ErrorIs(err, ErrCategoryNotFound)
	s.Nil(category)
}

func (s *CategoryRepositorySuite) TestGetByName() {
	created := database.CreateTestCategory(s.T(), s.db, "Utilities")

	found, err := s.repo.GetByName("Utilities")
	s.NoError(err)
	s.Equal(created.ID, found.ID)

	_, err = s.repo.GetByName("Nonexistent")
	s.ErrorIs(err, ErrCategoryNotFound)
}

func (s *CategoryRepositorySuite) TestGetAll_OrderedByName() {
	database.CreateTestCategory(s.T(), s.db, "Utilities")
	database.CreateTestCategory(s.T(), s.db, "Groceries")
	database.CreateTestCategory(s.T(), s.db, "Rent")

	categories, err := s.repo.GetAll()
	s.NoError(err)
	s.Require().Len(categories, 3)
	s.Equal("Groceries", categories[0].Name)
	s.Equal("Rent", categories[1].Name)
	s.Equal("Utilities", categories[2].Name)
}

func (s *CategoryRepositorySuite) TestUpdate() {
	created := database.CreateTestCategory(s.T(), s.db, "Food")

	created.Name = "Dining"
	s.NoError(s.repo.Update(created))

	found, err := s.repo.GetByID(created.ID)
	s.NoError(err)
	s.Equal("Dining", found.Name)
}

func (s *CategoryRepositorySuite) TestUpdate_NotFound() {
	err := s.repo.Update(&models.Category{ID: 99999, Name: "Ghost"})
	s.ErrorIs(err, ErrCategoryNotFound)
}

func (s *CategoryRepositorySuite) TestDelete() {
	created := database.CreateTestCategory(s.T(), s.db, "Temporary")

	s.NoError(s.repo.Delete(created.ID))
	s.ErrorIs(s.repo.Delete(created.ID), ErrCategoryNotFound)
}

func (s *CategoryRepositorySuite) TestCountTransactions() {
	category := database.CreateTestCategory(s.T(), s.db, "Groceries")
	date := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	database.CreateTestTransaction(s.T(), s.db, models.TransactionTypeExpense, 50, &category.ID, date)
	database.CreateTestTransaction(s.T(), s.db, models.TransactionTypeExpense, 25, &category.ID, date)

	count, err := s.repo.CountTransactions(category.ID)
	s.NoError(err)
	s.Equal(int64(2), count)

	empty := database.CreateTestCategory(s.T(), s.db, "Unused")
	count, err = s.repo.CountTransactions(empty.ID)
	s.NoError(err)
	s.Equal(int64(0), count)
}
