package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"parcelhub/internal/adapters/out/postgres/orderrepo"
	"parcelhub/internal/core/application/usecases/queries"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/order"
	"parcelhub/internal/pkg/errs"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

// OrderQueriesIntegrationTestSuite exercises the read-side handlers against
// a real PostgreSQL instance seeded through the write-side repository.
type OrderQueriesIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository

	byIDHandler        queries.GetOrderByIDQueryHandler
	byURLHandler       queries.GetOrderByURLQueryHandler
	byRecipientHandler queries.GetOrdersByRecipientQueryHandler
}

func (suite *OrderQueriesIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))

	suite.repo = orderrepo.NewGormOrderRepository(db, noopTracker{})
	suite.byIDHandler = queries.NewGetOrderByIDQueryHandler(db)
	suite.byURLHandler = queries.NewGetOrderByURLQueryHandler(db)
	suite.byRecipientHandler = queries.NewGetOrdersByRecipientQueryHandler(db)
}

func (suite *OrderQueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

func (suite *OrderQueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderQueriesIntegrationTestSuite) seedOrder(url, phone string) *order.Order {
	addressee, err := order.NewAddressee("Jordan Lee", phone)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), url, "123456", addressee)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(context.Background(), aggregate))
	return aggregate
}

func (suite *OrderQueriesIntegrationTestSuite) TestGetOrderByID_ReturnsFullView() {
	aggregate := suite.seedOrder("query-by-id", "+5511987654321")

	query, err := queries.NewGetOrderByIDQuery(aggregate.ID())
	suite.Require().NoError(err)

	resp, err := suite.byIDHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.True(aggregate.ID().IsEqual(resp.ID))
	suite.Equal("query-by-id", resp.URL)
	suite.Equal("123456", resp.Code)
	suite.Equal("Pending", resp.Status)
	suite.Equal("Jordan Lee", resp.AddresseeName)
	suite.Equal("+5511987654321", resp.PhoneNumber)
}

func (suite *OrderQueriesIntegrationTestSuite) TestGetOrderByID_DeletedOrder_NotFound() {
	aggregate := suite.seedOrder("query-deleted", "+5511987654321")
	suite.Require().NoError(suite.repo.SoftDelete(context.Background(), aggregate.ID(), time.Now().UTC()))

	query, err := queries.NewGetOrderByIDQuery(aggregate.ID())
	suite.Require().NoError(err)

	_, err = suite.byIDHandler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderQueriesIntegrationTestSuite) TestGetOrderByURL_OmitsSecrets() {
	suite.seedOrder("query-public", "+5511987654321")

	query, err := queries.NewGetOrderByURLQuery("query-public")
	suite.Require().NoError(err)

	resp, err := suite.byURLHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal("query-public", resp.URL)
	suite.Equal("Pending", resp.Status)
	suite.Equal("Jordan Lee", resp.AddresseeName)
}

func (suite *OrderQueriesIntegrationTestSuite) TestGetOrderByURL_UnknownToken_NotFound() {
	query, err := queries.NewGetOrderByURLQuery("no-such-token")
	suite.Require().NoError(err)

	_, err = suite.byURLHandler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderQueriesIntegrationTestSuite) TestGetOrdersByRecipient_ScopesAndExcludesDeleted() {
	mine1 := suite.seedOrder("query-mine-1", "+5511987654321")
	mine2 := suite.seedOrder("query-mine-2", "+5511987654321")
	deleted := suite.seedOrder("query-mine-gone", "+5511987654321")
	suite.seedOrder("query-other", "+5511999999999")
	suite.Require().NoError(suite.repo.SoftDelete(context.Background(), deleted.ID(), time.Now().UTC()))

	query, err := queries.NewGetOrdersByRecipientQuery("+5511987654321")
	suite.Require().NoError(err)

	resp, err := suite.byRecipientHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Len(resp, 2)

	urls := map[string]bool{}
	for _, item := range resp {
		urls[item.URL] = true
	}
	suite.True(urls[mine1.URL()])
	suite.True(urls[mine2.URL()])
}

func (suite *OrderQueriesIntegrationTestSuite) TestGetOrdersByRecipient_Empty_ReturnsEmptySlice() {
	query, err := queries.NewGetOrdersByRecipientQuery("+5511000000000")
	suite.Require().NoError(err)

	resp, err := suite.byRecipientHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.NotNil(resp)
	suite.Empty(resp)
}

func TestOrderQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderQueriesIntegrationTestSuite))
}
