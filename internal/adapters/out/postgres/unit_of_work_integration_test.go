package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/postgres/checkoutrepo"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&productrepo.ProductDTO{},
		&checkoutrepo.CheckoutKeyDTO{},
	)
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items, products, checkout_keys").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newPendingOrder() *order.Order {
	address, err := order.NewAddress("1 Main St", "Springfield", "IL", "62704", "US")
	suite.Require().NoError(err)

	customer, err := order.NewCustomerSnapshot("Ada", "Lovelace", "ada@example.com", "+1-555-0101", address)
	suite.Require().NoError(err)

	item, err := order.NewPricedLineItem(
		kernel.NewUUID(), "Trail Runner", kernel.NewMoneyFromFloat(90), 2, "blue", "42", "img/trail.png",
	)
	suite.Require().NoError(err)

	totals, err := order.NewTotals(
		kernel.NewMoneyFromFloat(180), kernel.NewMoneyFromFloat(5), kernel.NewMoneyFromFloat(18),
	)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), customer, []order.PricedLineItem{item}, order.Standard, "card", totals,
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *UnitOfWorkIntegrationTestSuite) seedProduct(stock int) kernel.UUID {
	id := kernel.NewUUID()
	resolved, err := product.NewProduct(
		id, "Trail Runner", kernel.NewMoneyFromFloat(100), 10, "img/trail.png", stock,
	)
	suite.Require().NoError(err)

	dto := productrepo.FromDomain(resolved)
	err = suite.db.Create(&dto).Error
	suite.Require().NoError(err)
	return id
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow1.ProductCatalog(), "First instance should provide product catalog")
	suite.NotNil(uow1.CheckoutKeyRepository(), "First instance should provide checkout key repository")
	suite.NotNil(uow2.OrderRepository(), "Second instance should provide order repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_CommitWithoutBegin verifies commit fails without an active transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitWithoutBegin() {
	uow := suite.factory.Create()

	err := uow.Commit(context.Background())
	suite.Require().Error(err, "Commit without begin should fail")

	err = uow.Rollback(context.Background())
	suite.Require().Error(err, "Rollback without begin should fail")
}

// TestUnitOfWork_CommittedCheckoutIsPersisted verifies that an order, its
// stock reservation, and its idempotency key all become visible after commit.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommittedCheckoutIsPersisted() {
	ctx := context.Background()
	productID := suite.seedProduct(5)
	aggregate := suite.newPendingOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.ProductCatalog().ReserveStock(ctx, productID, 2))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.CheckoutKeyRepository().Add(ctx, "idem-123", aggregate.ID()))

	suite.Require().NoError(uow.Commit(ctx))

	// verify via fresh, non-transactional repositories
	verify := suite.factory.Create()

	loaded, err := verify.OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(aggregate.ID()))

	resolved, err := verify.ProductCatalog().Get(ctx, productID)
	suite.Require().NoError(err)
	suite.Equal(3, resolved.Stock())

	orderID, err := verify.CheckoutKeyRepository().GetOrderID(ctx, "idem-123")
	suite.Require().NoError(err)
	suite.True(orderID.IsEqual(aggregate.ID()))
}

// TestUnitOfWork_RollbackDiscardsCheckout verifies that nothing from a rolled
// back checkout is visible outside the transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsCheckout() {
	ctx := context.Background()
	productID := suite.seedProduct(5)
	aggregate := suite.newPendingOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.ProductCatalog().ReserveStock(ctx, productID, 2))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.CheckoutKeyRepository().Add(ctx, "idem-123", aggregate.ID()))

	suite.Require().NoError(uow.Rollback(ctx))

	verify := suite.factory.Create()

	_, err := verify.OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	resolved, err := verify.ProductCatalog().Get(ctx, productID)
	suite.Require().NoError(err)
	suite.Equal(5, resolved.Stock(), "the stock reservation must be rolled back")

	_, err = verify.CheckoutKeyRepository().GetOrderID(ctx, "idem-123")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
