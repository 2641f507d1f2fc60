package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"sejahtera/internal/models"

	pgx "github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type OrderRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    OrderRepository
	context context.Context
}

func (suite *OrderRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewOrderRepo(mock)
	suite.context = context.Background()
}

func (suite *OrderRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestOrderRepoTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepoTestSuite))
}

func (suite *OrderRepoTestSuite) TestEnsureSchema() {
	suite.mock.ExpectExec(`CREATE TABLE IF NOT EXISTS orders`).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	err := suite.repo.EnsureSchema(suite.context)
	assert.NoError(suite.T(), err)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *OrderRepoTestSuite) TestCreate_AssignsIDAndTimestamp() {
	total := 1000000.0
	order := &models.Order{
		SchoolName:    "SD Mawar",
		ContactPerson: "Budi",
		Email:         "budi@mawar.sch.id",
		Product:       "Kursi",
		Quantity:      2,
		TotalPrice:    &total,
	}

	createdAt := time.Date(2025, 8, 17, 9, 30, 0, 0, time.UTC)
	suite.mock.ExpectQuery(`INSERT INTO orders`).
		WithArgs(order.SchoolName, order.ContactPerson, order.Email, order.Phone,
			order.Product, order.Quantity, order.TotalPrice, order.PaymentProofURL, order.Notes).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), createdAt))

	err := suite.repo.Create(suite.context, order)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(7), order.ID)
	assert.Equal(suite.T(), createdAt, order.CreatedAt)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *OrderRepoTestSuite) TestGetByID_Success() {
	createdAt := time.Date(2025, 8, 17, 9, 30, 0, 0, time.UTC)
	rows := pgxmock.NewRows([]string{
		"id", "school_name", "contact_person", "email", "phone", "product",
		"quantity", "total_price", "payment_proof_url", "notes", "created_at",
	}).AddRow(int64(7), "SD Mawar", "Budi", "budi@mawar.sch.id", (*string)(nil),
		"Kursi", 2, (*float64)(nil), (*string)(nil), (*string)(nil), createdAt)

	suite.mock.ExpectQuery(`SELECT (.+)\s+FROM orders`).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	order, err := suite.repo.GetByID(suite.context, 7)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(7), order.ID)
	assert.Equal(suite.T(), "SD Mawar", order.SchoolName)
	assert.Nil(suite.T(), order.Phone)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *OrderRepoTestSuite) TestGetByID_NotFound() {
	suite.mock.ExpectQuery(`SELECT (.+)\s+FROM orders`).
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)

	order, err := suite.repo.GetByID(suite.context, 99)
	assert.Nil(suite.T(), order)
	assert.True(suite.T(), errors.Is(err, ErrOrderNotFound))
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *OrderRepoTestSuite) TestListByCreatedDesc() {
	newer := time.Date(2025, 8, 18, 10, 0, 0, 0, time.UTC)
	older := time.Date(2025, 8, 17, 9, 30, 0, 0, time.UTC)
	rows := pgxmock.NewRows([]string{
		"id", "school_name", "contact_person", "email", "phone", "product",
		"quantity", "total_price", "payment_proof_url", "notes", "created_at",
	}).
		AddRow(int64(2), "SMP Melati", "Sari", "sari@melati.sch.id", (*string)(nil),
			"Laptop", 1, (*float64)(nil), (*string)(nil), (*string)(nil), newer).
		AddRow(int64(1), "SD Mawar", "Budi", "budi@mawar.sch.id", (*string)(nil),
			"Kursi", 2, (*float64)(nil), (*string)(nil), (*string)(nil), older)

	suite.mock.ExpectQuery(`FROM orders\s+ORDER BY created_at DESC`).
		WillReturnRows(rows)

	orders, err := suite.repo.ListByCreatedDesc(suite.context)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), orders, 2)
	assert.Equal(suite.T(), int64(2), orders[0].ID)
	assert.Equal(suite.T(), int64(1), orders[1].ID)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}
