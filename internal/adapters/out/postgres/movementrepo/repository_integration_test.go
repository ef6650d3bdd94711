package movementrepo_test

import (
	"context"
	"testing"
	"time"

	"wms/internal/adapters/out/postgres/movementrepo"
	"wms/internal/adapters/out/postgres/pgtest"
	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/movement"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type MovementRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *movementrepo.GormMovementRepository
	tracker    *MockAggregateTracker
}

func (suite *MovementRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&movementrepo.MovementDTO{}))
}

func (suite *MovementRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE stock_movements").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = movementrepo.NewGormMovementRepository(suite.db, suite.tracker)
}

func (suite *MovementRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *MovementRepositoryIntegrationTestSuite) TestAdd_StoresEndsPerReason() {
	ctx := context.Background()
	operator, err := kernel.NewOperator("alice")
	suite.Require().NoError(err)
	itemID, from, to := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	at := time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)

	inbound, err := movement.NewInbound(itemID, to, kernel.MustQuantity(5), operator, at)
	suite.Require().NoError(err)
	move, err := movement.NewMove(itemID, from, to, kernel.MustQuantity(2), operator, at)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", inbound.ID(), inbound).Once()
	suite.tracker.On("TrackAggregate", move.ID(), move).Once()

	suite.Require().NoError(suite.repository.Add(ctx, inbound))
	suite.Require().NoError(suite.repository.Add(ctx, move))

	var rows []movementrepo.MovementDTO
	suite.Require().NoError(suite.db.Order("quantity").Find(&rows).Error)
	suite.Require().Len(rows, 2)

	suite.Equal("MOVE", rows[0].Reason)
	suite.NotNil(rows[0].FromLocationID)
	suite.NotNil(rows[0].ToLocationID)

	suite.Equal("INBOUND", rows[1].Reason)
	suite.Nil(rows[1].FromLocationID)
	suite.Equal(to.Bytes(), *rows[1].ToLocationID)
	suite.Equal("alice", rows[1].Operator)
	suite.True(at.Equal(rows[1].CreatedAt))

	suite.tracker.AssertExpectations(suite.T())
}

func TestMovementRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(MovementRepositoryIntegrationTestSuite))
}
