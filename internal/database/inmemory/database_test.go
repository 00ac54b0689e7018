package inmemory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/tokengate-project/tokengate/internal/repositories"
	"github.com/tokengate-project/tokengate/internal/utils/apiError"
	"github.com/tokengate-project/tokengate/internal/utils/pointer"
)

type InMemoryDatabaseTestSuite struct {
	suite.Suite
}

func TestInMemoryDatabaseTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(InMemoryDatabaseTestSuite))
}

func (s *InMemoryDatabaseTestSuite) TestInsertAndFirstBySubject() {
	// arrange
	db, err := NewInMemoryDatabase()
	s.Require().NoError(err)
	tx, err := db.Tx()
	s.Require().NoError(err)
	ctx := context.Background()

	account := repositories.NewAccount("subject-1")

	// act
	err = tx.Accounts().Insert(ctx, account)
	s.NoError(err)
	found, err := tx.Accounts().First(ctx, repositories.NewAccountFilter().BySubject("subject-1"))

	// assert
	s.NoError(err)
	s.NotNil(found)
	s.Equal(account.GetId(), found.GetId())
	s.Equal("subject-1", found.GetSubject())
}

func (s *InMemoryDatabaseTestSuite) TestFirstWithoutMatch() {
	// arrange
	db, err := NewInMemoryDatabase()
	s.Require().NoError(err)
	tx, err := db.Tx()
	s.Require().NoError(err)
	ctx := context.Background()

	// act
	found, err := tx.Accounts().First(ctx, repositories.NewAccountFilter().BySubject("missing"))

	// assert
	s.NoError(err)
	s.Nil(found)
}

func (s *InMemoryDatabaseTestSuite) TestSingleWithoutMatch() {
	// arrange
	db, err := NewInMemoryDatabase()
	s.Require().NoError(err)
	tx, err := db.Tx()
	s.Require().NoError(err)
	ctx := context.Background()

	// act
	found, err := tx.Accounts().Single(ctx, repositories.NewAccountFilter().BySubject("missing"))

	// assert
	s.ErrorIs(err, apiError.ErrApiAccountNotFound)
	s.Nil(found)
}

func (s *InMemoryDatabaseTestSuite) TestUpdate() {
	// arrange
	db, err := NewInMemoryDatabase()
	s.Require().NoError(err)
	tx, err := db.Tx()
	s.Require().NoError(err)
	ctx := context.Background()

	account := repositories.NewAccount("subject-1")
	err = tx.Accounts().Insert(ctx, account)
	s.Require().NoError(err)

	// act
	account.SetDisplayName(pointer.To("Test User"))
	err = tx.Accounts().Update(ctx, account)
	s.NoError(err)
	found, err := tx.Accounts().First(ctx, repositories.NewAccountFilter().ById(account.GetId()))

	// assert
	s.NoError(err)
	s.NotNil(found)
	s.Equal("Test User", pointer.DerefOrZero(found.GetDisplayName()))
}

func (s *InMemoryDatabaseTestSuite) TestDelete() {
	// arrange
	db, err := NewInMemoryDatabase()
	s.Require().NoError(err)
	tx, err := db.Tx()
	s.Require().NoError(err)
	ctx := context.Background()

	account := repositories.NewAccount("subject-1")
	err = tx.Accounts().Insert(ctx, account)
	s.Require().NoError(err)

	// act
	err = tx.Accounts().Delete(ctx, account.GetId())
	s.NoError(err)
	found, err := tx.Accounts().First(ctx, repositories.NewAccountFilter().ById(account.GetId()))

	// assert
	s.NoError(err)
	s.Nil(found)
}

func (s *InMemoryDatabaseTestSuite) TestCommitMakesChangesVisible() {
	// arrange
	db, err := NewInMemoryDatabase()
	s.Require().NoError(err)
	tx, err := db.Tx()
	s.Require().NoError(err)
	ctx := context.Background()

	account := repositories.NewAccount("subject-1")
	err = tx.Accounts().Insert(ctx, account)
	s.Require().NoError(err)

	// act
	err = tx.Commit()
	s.NoError(err)
	tx2, err := db.Tx()
	s.Require().NoError(err)
	found, err := tx2.Accounts().First(ctx, repositories.NewAccountFilter().BySubject("subject-1"))

	// assert
	s.NoError(err)
	s.NotNil(found)
}
