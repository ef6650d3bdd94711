package taskrepo_test

import (
	"context"
	"testing"

	"wms/internal/adapters/out/postgres/pgtest"
	"wms/internal/adapters/out/postgres/taskrepo"
	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/task"
	"wms/internal/pkg/errs"

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

type TaskRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *taskrepo.GormTaskRepository
	tracker    *MockAggregateTracker
}

func (suite *TaskRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&taskrepo.TaskDTO{}))
}

func (suite *TaskRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE picking_tasks").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = taskrepo.NewGormTaskRepository(suite.db, suite.tracker)
}

func (suite *TaskRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *TaskRepositoryIntegrationTestSuite) add(orderID, itemID, locationID kernel.UUID, qty int64) *task.PickingTask {
	t, err := task.NewPickingTask(kernel.NewUUID(), orderID, itemID, locationID, kernel.MustQuantity(qty))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), t))
	return t
}

func (suite *TaskRepositoryIntegrationTestSuite) TestReservedQuantity_CountsOutstandingOnly() {
	ctx := context.Background()
	orderID, itemID, binA, binB := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	suite.add(orderID, itemID, binA, 4)
	suite.add(orderID, itemID, binB, 6)
	assigned := suite.add(orderID, itemID, binA, 3)
	completed := suite.add(orderID, itemID, binA, 10)
	cancelled := suite.add(orderID, itemID, binB, 20)
	suite.add(orderID, kernel.NewUUID(), binA, 100)

	suite.Require().NoError(assigned.Assign())
	suite.Require().NoError(suite.repository.Update(ctx, assigned))
	suite.Require().NoError(completed.Complete())
	suite.Require().NoError(suite.repository.Update(ctx, completed))
	suite.Require().NoError(cancelled.Cancel())
	suite.Require().NoError(suite.repository.Update(ctx, cancelled))

	global, err := suite.repository.ReservedQuantity(ctx, itemID, nil)
	suite.Require().NoError(err)
	suite.True(global.Equal(kernel.MustQuantity(13)), global.String())

	scoped, err := suite.repository.ReservedQuantity(ctx, itemID, &binA)
	suite.Require().NoError(err)
	suite.True(scoped.Equal(kernel.MustQuantity(7)), scoped.String())

	none, err := suite.repository.ReservedQuantity(ctx, kernel.NewUUID(), nil)
	suite.Require().NoError(err)
	suite.True(none.IsZero())
}

func (suite *TaskRepositoryIntegrationTestSuite) TestUpdate_PersistsCompletion() {
	ctx := context.Background()
	t := suite.add(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 3)

	suite.Require().NoError(t.Complete())
	suite.Require().NoError(suite.repository.Update(ctx, t))

	loaded, err := suite.repository.Get(ctx, t.ID())
	suite.Require().NoError(err)
	suite.Equal(task.Completed, loaded.Status())
	suite.True(loaded.PickedQuantity().Equal(kernel.MustQuantity(3)))
}

func (suite *TaskRepositoryIntegrationTestSuite) TestFindByOrder_InsertionOrder() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	first := suite.add(orderID, kernel.NewUUID(), kernel.NewUUID(), 1)
	second := suite.add(orderID, kernel.NewUUID(), kernel.NewUUID(), 2)
	suite.add(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 3)

	tasks, err := suite.repository.FindByOrder(ctx, orderID)

	suite.Require().NoError(err)
	suite.Require().Len(tasks, 2)
	suite.True(tasks[0].ID().IsEqual(first.ID()))
	suite.True(tasks[1].ID().IsEqual(second.ID()))
}

func (suite *TaskRepositoryIntegrationTestSuite) TestGet_Missing_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestTaskRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(TaskRepositoryIntegrationTestSuite))
}
