package queries_test

import (
	"context"
	"testing"

	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderByIDQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderByIDQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrderByIDQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.LineItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrderByIDQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrderByIDQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderByIDQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderByIDQueryHandlerTestSuite) TestHandle_ReturnsFullDetail() {
	ctx := context.Background()
	aggregate := newTestOrder(&suite.Suite, "ada@example.com")
	suite.Require().NoError(suite.orderRepo.Add(ctx, aggregate))

	query, err := queries.NewGetOrderByIDQuery(aggregate.ID())
	suite.Require().NoError(err)

	detail, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(aggregate.ID(), detail.ID)
	suite.Equal("Ada", detail.Customer.FirstName)
	suite.Equal("Lovelace", detail.Customer.LastName)
	suite.Equal("ada@example.com", detail.Customer.Email)
	suite.Equal("1 Main St", detail.Customer.Street)
	suite.Equal("Springfield", detail.Customer.City)
	suite.Equal("62704", detail.Customer.ZipCode)
	suite.Equal(order.Standard, detail.ShippingMethod)
	suite.Equal("card", detail.PaymentMethod)
	suite.Equal("180.00", detail.Subtotal.String())
	suite.Equal("5.00", detail.Shipping.String())
	suite.Equal("18.00", detail.Tax.String())
	suite.Equal("203.00", detail.Total.String())
	suite.Equal(order.Pending, detail.Status)
	suite.Nil(detail.CourierID)
	suite.Equal(0, detail.Version)

	suite.Require().Len(detail.Items, 1)
	item := detail.Items[0]
	suite.Equal("Trail Runner", item.ProductName)
	suite.Equal("90.00", item.UnitPrice.String())
	suite.Equal(2, item.Quantity)
	suite.Equal("blue", item.Color)
	suite.Equal("42", item.Size)
	suite.Equal("img/trail.png", item.ImageRef)
	suite.Equal("180.00", item.LineTotal.String())
}

func (suite *GetOrderByIDQueryHandlerTestSuite) TestHandle_ExposesCourierAndVersion() {
	ctx := context.Background()
	aggregate := newTestOrder(&suite.Suite, "ada@example.com")
	suite.Require().NoError(suite.orderRepo.Add(ctx, aggregate))

	_, err := aggregate.TransitionTo(order.Processing)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.UpdateVersioned(ctx, aggregate, 0))

	courierID := kernel.NewUUID()
	suite.Require().NoError(aggregate.Assign(courierID))
	suite.Require().NoError(suite.orderRepo.UpdateVersioned(ctx, aggregate, 1))

	query, err := queries.NewGetOrderByIDQuery(aggregate.ID())
	suite.Require().NoError(err)

	detail, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(order.Processing, detail.Status)
	suite.Require().NotNil(detail.CourierID)
	suite.Equal(courierID, *detail.CourierID)
	suite.Equal(2, detail.Version)
}

func (suite *GetOrderByIDQueryHandlerTestSuite) TestHandle_UnknownOrder_ReturnsNotFound() {
	query, err := queries.NewGetOrderByIDQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderByIDQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrderByIDQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetOrderByIDQuery constructor")
}

func TestGetOrderByIDQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderByIDQueryHandlerTestSuite))
}
