package customerrepo_test

import (
	"context"
	"testing"

	postgres_adapter "ordering/internal/adapters/out/postgres"
	"ordering/internal/adapters/out/postgres/customerrepo"
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/testpg"

	"github.com/stretchr/testify/suite"
)

type CustomerRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg    *testpg.Database
	repo  *customerrepo.GormCustomerRepository
	phone kernel.Phone
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := testpg.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg

	suite.Require().NoError(postgres_adapter.Migrate(pg.DB))
	suite.repo = customerrepo.NewGormCustomerRepository(pg.DB)
	suite.phone, _ = kernel.NewPhone("+91 98765 43210")
}

func (suite *CustomerRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate("customers"))
}

func (suite *CustomerRepositoryIntegrationTestSuite) upsert(name, address string, verified bool) *customer.Customer {
	c, err := customer.NewCustomer(suite.phone, name, address, verified)
	suite.Require().NoError(err)
	stored, err := suite.repo.Upsert(context.Background(), c)
	suite.Require().NoError(err)
	return stored
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestUpsert_Inserts() {
	stored := suite.upsert("Asha", "MG Road 1", false)

	suite.Positive(stored.ID())
	suite.Equal(suite.phone, stored.Phone())
	suite.Equal("Asha", stored.Name())
	suite.False(stored.PhoneVerified())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestUpsert_SamePhoneUpdatesInPlace() {
	first := suite.upsert("Asha", "MG Road 1", true)
	second := suite.upsert("Asha K", "", false)

	suite.Equal(first.ID(), second.ID())
	suite.Equal("Asha K", second.Name())
	suite.Equal("MG Road 1", second.Address(), "An empty address keeps the stored one")
	suite.True(second.PhoneVerified(), "Verification is never revoked by an upsert")

	var count int64
	suite.Require().NoError(suite.pg.DB.Model(&customerrepo.CustomerDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGet() {
	stored := suite.upsert("Asha", "MG Road 1", false)

	byID, err := suite.repo.Get(context.Background(), stored.ID())
	suite.Require().NoError(err)
	suite.Equal(stored.Phone(), byID.Phone())

	byPhone, err := suite.repo.GetByPhone(context.Background(), suite.phone)
	suite.Require().NoError(err)
	suite.Equal(stored.ID(), byPhone.ID())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repo.Get(context.Background(), 999)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repo.GetByPhone(context.Background(), suite.phone)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestCustomerRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerRepositoryIntegrationTestSuite))
}
