package services

import (
	"context"
	"fmt"
	"io"

	"sejahtera/internal/common"
	"sejahtera/internal/models"
	"sejahtera/internal/repositories"

	"github.com/rs/zerolog"
)

// OrderSubmission carries the coerced order form. Proof is nil when the
// customer attached no payment proof.
type OrderSubmission struct {
	SchoolName    string
	ContactPerson string
	Email         string
	Phone         string
	Product       string
	Quantity      int
	Price         float64
	Notes         string
	Proof         *ProofFile
}

// ProofFile is an uploaded payment-proof stream.
type ProofFile struct {
	Reader      io.Reader
	Size        int64
	Filename    string
	ContentType string
}

// OrderServiceInterface defines the interface for the order service
type OrderServiceInterface interface {
	Submit(ctx context.Context, sub *OrderSubmission) (*models.Order, error)
	GetByID(ctx context.Context, id int64) (*models.Order, error)
	List(ctx context.Context) ([]*models.Order, error)
	Receipt(ctx context.Context, id int64) ([]byte, error)
}

type orderService struct {
	orders   repositories.OrderRepository
	receipts ReceiptService
	storage  ProofStorage
	mailer   Mailer
	logger   zerolog.Logger
}

func NewOrderService(orders repositories.OrderRepository, receipts ReceiptService, storage ProofStorage, mailer Mailer, logger zerolog.Logger) OrderServiceInterface {
	return &orderService{
		orders:   orders,
		receipts: receipts,
		storage:  storage,
		mailer:   mailer,
		logger:   logger,
	}
}

// Submit runs the intake sequence: upload the proof if one was attached,
// persist the order, then render the receipt and notify the admin. A failed
// proof upload rejects the whole submission before anything is persisted; a
// failed notification is logged and swallowed because the order already
// exists and the customer must still see the success page.
func (s *orderService) Submit(ctx context.Context, sub *OrderSubmission) (*models.Order, error) {
	total := sub.Price * float64(sub.Quantity)

	order := &models.Order{
		SchoolName:    sub.SchoolName,
		ContactPerson: sub.ContactPerson,
		Email:         sub.Email,
		Phone:         common.StringOrNil(sub.Phone),
		Product:       sub.Product,
		Quantity:      sub.Quantity,
		TotalPrice:    &total,
		Notes:         common.StringOrNil(sub.Notes),
	}

	if sub.Proof != nil {
		url, err := s.storage.UploadProof(ctx, sub.Proof.Reader, sub.Proof.Size, sub.Proof.Filename, sub.Proof.ContentType)
		if err != nil {
			return nil, fmt.Errorf("upload payment proof: %w", err)
		}
		order.PaymentProofURL = &url
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}

	receipt, err := s.receipts.Render(order)
	if err != nil {
		return nil, err
	}

	if err := s.mailer.SendOrderNotification(order, receipt); err != nil {
		s.logger.Error().Err(err).Int64("order_id", order.ID).Msg("failed to send order notification")
	}

	return order, nil
}

func (s *orderService) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	return s.orders.GetByID(ctx, id)
}

// List returns all orders, most recent first, for the admin dashboard.
func (s *orderService) List(ctx context.Context) ([]*models.Order, error) {
	return s.orders.ListByCreatedDesc(ctx)
}

// Receipt re-renders the receipt for an existing order. Receipts are never
// cached; every download renders fresh from the stored record.
func (s *orderService) Receipt(ctx context.Context, id int64) ([]byte, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.receipts.Render(order)
}
