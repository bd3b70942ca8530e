package checkoutrepo_test

import (
	"context"
	"testing"

	"storefront/internal/adapters/out/postgres/checkoutrepo"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type CheckoutKeyRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *checkoutrepo.GormCheckoutKeyRepository
}

func (suite *CheckoutKeyRepositoryIntegrationTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&checkoutrepo.CheckoutKeyDTO{})
	suite.Require().NoError(err)

	suite.repo = checkoutrepo.NewGormCheckoutKeyRepository(db)
}

func (suite *CheckoutKeyRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE checkout_keys").Error
	suite.Require().NoError(err)
}

func (suite *CheckoutKeyRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *CheckoutKeyRepositoryIntegrationTestSuite) TestAddAndGetOrderID() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	err := suite.repo.Add(ctx, "idem-123", orderID)
	suite.Require().NoError(err)

	resolved, err := suite.repo.GetOrderID(ctx, "idem-123")
	suite.Require().NoError(err)
	suite.True(resolved.IsEqual(orderID))
}

func (suite *CheckoutKeyRepositoryIntegrationTestSuite) TestAdd_DuplicateKeyReportsRace() {
	ctx := context.Background()
	winnerOrderID := kernel.NewUUID()

	err := suite.repo.Add(ctx, "idem-123", winnerOrderID)
	suite.Require().NoError(err)

	err = suite.repo.Add(ctx, "idem-123", kernel.NewUUID())
	suite.Require().ErrorIs(err, ports.ErrCheckoutKeyAlreadyUsed)

	// the first binding survives
	resolved, err := suite.repo.GetOrderID(ctx, "idem-123")
	suite.Require().NoError(err)
	suite.True(resolved.IsEqual(winnerOrderID))
}

func (suite *CheckoutKeyRepositoryIntegrationTestSuite) TestGetOrderID_UnknownKey() {
	_, err := suite.repo.GetOrderID(context.Background(), "never-used")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CheckoutKeyRepositoryIntegrationTestSuite) TestAdd_EmptyKeyRejected() {
	err := suite.repo.Add(context.Background(), "", kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrValueIsRequired)
}

func TestCheckoutKeyRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CheckoutKeyRepositoryIntegrationTestSuite))
}
