//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"vibe-shop/internal/apperr"
	"vibe-shop/internal/domain"
	"vibe-shop/internal/repository"
)

type ShopRepositorySuite struct {
	suite.Suite
	pool     *pgxpool.Pool
	users    *repository.UserRepo
	orders   *repository.OrderRepo
	payments *repository.PaymentRepo
	reviews  *repository.ReviewRepo
}

func (s *ShopRepositorySuite) SetupSuite() {
	s.Require().NotNil(tcPool, "tcPool must be initialized in TestMain")

	s.pool = tcPool
	s.users = repository.NewUserRepo(tcPool)
	s.orders = repository.NewOrderRepo(tcPool)
	s.payments = repository.NewPaymentRepo(tcPool)
	s.reviews = repository.NewReviewRepo(tcPool)
}

func (s *ShopRepositorySuite) SetupTest() {
	s.Require().NoError(truncateAll(context.Background()))
}

func (s *ShopRepositorySuite) TestMigrateIsIdempotent() {
	s.Require().NoError(repository.Migrate(context.Background(), s.pool))
}

func (s *ShopRepositorySuite) TestUsers() {
	ctx := context.Background()

	has, err := s.users.HasAdmin(ctx)
	s.Require().NoError(err)
	s.False(has)

	id, err := s.users.CreateUser(ctx, &domain.User{Username: "alice", PasswordHash: "h", Role: domain.RoleUser})
	s.Require().NoError(err)
	s.Positive(id)

	_, err = s.users.CreateUser(ctx, &domain.User{Username: "alice", PasswordHash: "h2", Role: domain.RoleUser})
	s.ErrorIs(err, apperr.ErrConflict)

	got, err := s.users.GetUserByUsername(ctx, "alice")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(id, got.ID)
	s.Equal(domain.RoleUser, got.Role)

	missing, err := s.users.GetUserByUsername(ctx, "ghost")
	s.Require().NoError(err)
	s.Nil(missing)

	_, err = s.users.CreateUser(ctx, &domain.User{Username: "admin", PasswordHash: "h", Role: domain.RoleAdmin})
	s.Require().NoError(err)
	has, err = s.users.HasAdmin(ctx)
	s.Require().NoError(err)
	s.True(has)
}

func (s *ShopRepositorySuite) TestOrdersLifecycle() {
	ctx := context.Background()
	user := "bob"
	created := time.Date(2025, 3, 30, 12, 0, 0, 0, time.UTC)

	first := &domain.Order{
		OrderID:   "ORD-1-100",
		Address:   "Lenina 1",
		Items:     []domain.OrderItem{{ID: 1, Name: "Tee", Price: 1000, Qty: 2}},
		Amount:    2000,
		CreatedAt: created,
		Geo:       &domain.Coordinates{Latitude: 55.75, Longitude: 37.61},
		Username:  &user,
	}
	second := &domain.Order{OrderID: "ORD-2-200", Items: []domain.OrderItem{}, CreatedAt: created, Username: &user}
	anon := &domain.Order{OrderID: "ORD-3-300", Items: []domain.OrderItem{}, CreatedAt: created}

	s.Require().NoError(s.orders.CreateOrder(ctx, first))
	s.Require().NoError(s.orders.CreateOrder(ctx, second))
	s.Require().NoError(s.orders.CreateOrder(ctx, anon))
	s.ErrorIs(s.orders.CreateOrder(ctx, first), apperr.ErrConflict)

	got, err := s.orders.GetOrder(ctx, "ORD-1-100")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(first.Items, got.Items)
	s.Equal(domain.OrderStatusNew, got.Status)
	s.Require().NotNil(got.Geo)
	s.InDelta(55.75, got.Geo.Latitude, 1e-9)
	s.True(created.Equal(got.CreatedAt))

	none, err := s.orders.GetOrder(ctx, "ORD-404")
	s.Require().NoError(err)
	s.Nil(none)

	all, err := s.orders.ListOrders(ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal("ORD-3-300", all[0].OrderID)

	txn := "TXN-1"
	_, err = s.payments.CreatePayment(ctx, &domain.Payment{
		OrderID: "ORD-1-100", Status: domain.PaymentDeclined, CardLast4: "9995",
		CardBrand: domain.BrandVisaDecline, CreatedAt: created,
	})
	s.Require().NoError(err)
	lastID, err := s.payments.CreatePayment(ctx, &domain.Payment{
		OrderID: "ORD-1-100", Status: domain.PaymentSucceeded, Amount: 2000, CardLast4: "4242",
		CardBrand: domain.BrandVisa, TransactionID: &txn, CreatedAt: created.Add(time.Minute),
	})
	s.Require().NoError(err)

	mine, err := s.orders.ListUserOrders(ctx, "bob")
	s.Require().NoError(err)
	s.Require().Len(mine, 2)
	s.Equal("ORD-2-200", mine[0].OrderID)
	s.Nil(mine[0].LastPayment)
	s.Require().NotNil(mine[1].LastPayment)
	s.Equal(lastID, mine[1].LastPayment.ID)
	s.Equal(domain.PaymentSucceeded, mine[1].LastPayment.Status)
	s.Equal("4242", mine[1].LastPayment.CardLast4)

	payments, err := s.payments.ListPayments(ctx)
	s.Require().NoError(err)
	s.Require().Len(payments, 2)
	s.Equal(lastID, payments[0].ID)
	s.Require().NotNil(payments[0].TransactionID)
	s.Nil(payments[1].TransactionID)

	ok, err := s.orders.MarkPaid(ctx, "ORD-1-100", 8, "07.04.2025")
	s.Require().NoError(err)
	s.True(ok)
	got, err = s.orders.GetOrder(ctx, "ORD-1-100")
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusPaid, got.Status)
	s.Require().NotNil(got.EtaDays)
	s.Equal(8, *got.EtaDays)
	s.Equal("07.04.2025", *got.EtaDate)

	// a late decline never downgrades a paid order
	ok, err = s.orders.SetStatus(ctx, "ORD-1-100", domain.OrderStatusPaymentDeclined)
	s.Require().NoError(err)
	s.True(ok)
	got, err = s.orders.GetOrder(ctx, "ORD-1-100")
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusPaid, got.Status)

	ok, err = s.orders.SetStatus(ctx, "ORD-2-200", domain.OrderStatusPaymentDeclined)
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.orders.SetStatus(ctx, "ORD-404", domain.OrderStatusPaymentDeclined)
	s.Require().NoError(err)
	s.False(ok)

	ok, err = s.orders.MarkPaid(ctx, "ORD-404", 1, "x")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *ShopRepositorySuite) TestReviews() {
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := s.reviews.CreateReview(ctx, &domain.Review{ProductID: "7", Rating: 5, Text: "a", Author: "Гость", CreatedAt: now})
	s.Require().NoError(err)
	id2, err := s.reviews.CreateReview(ctx, &domain.Review{ProductID: "7", Rating: 3, Text: "b", Author: "Ivan", CreatedAt: now})
	s.Require().NoError(err)
	_, err = s.reviews.CreateReview(ctx, &domain.Review{ProductID: "8", Rating: 1, Text: "c", CreatedAt: now})
	s.Require().NoError(err)

	list, err := s.reviews.ListReviews(ctx, "7")
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(id2, list[0].ID)
	s.Equal("Ivan", list[0].Author)

	empty, err := s.reviews.ListReviews(ctx, "9")
	s.Require().NoError(err)
	s.Empty(empty)
}

func TestShopRepositorySuite(t *testing.T) {
	suite.Run(t, new(ShopRepositorySuite))
}
