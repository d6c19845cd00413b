package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/dentora-store/internal/constants"
	"github.com/dentora-store/internal/logger"
	"github.com/dentora-store/internal/models"
	"github.com/dentora-store/internal/queue"
	"github.com/dentora-store/internal/repository"

	"github.com/shopspring/decimal"
)

// CheckoutInput carries the order metadata collected at checkout.
type CheckoutInput struct {
	SessionID             string
	UserID                string
	PreferredDeliveryDate *time.Time
	Notes                 string
}

// OrderService creates orders from carts and serves order queries.
type OrderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	bundleRepo  repository.BundleRepository
	cartService *CartService
	queueClient *queue.Client
}

// NewOrderService creates an order service.
func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, bundleRepo repository.BundleRepository, cartService *CartService, queueClient *queue.Client) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		bundleRepo:  bundleRepo,
		cartService: cartService,
		queueClient: queueClient,
	}
}

// Checkout turns the session cart into a durable order. Line items are
// snapshotted from the catalog at this moment; later catalog edits do
// not touch existing orders. The cart is cleared once the order exists.
func (s *OrderService) Checkout(ctx context.Context, input CheckoutInput) (*models.Order, error) {
	if strings.TrimSpace(input.UserID) == "" {
		return nil, ErrNotAuthorized
	}
	cart, err := s.cartService.Get(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if cart.ItemCount == 0 {
		return nil, ErrCartEmpty
	}

	items, itemTotal, err := s.snapshotProducts(cart.Products)
	if err != nil {
		return nil, err
	}
	bundles, bundleTotal, err := s.snapshotBundles(cart.Bundles)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		OrderNo:               generateOrderNo(),
		UserID:                input.UserID,
		TotalAmount:           models.NewMoneyFromDecimal(itemTotal.Add(bundleTotal)),
		AmountPaid:            models.NewMoneyFromInt(0),
		PaymentStatus:         constants.PaymentStatusPending,
		Status:                constants.OrderStatusPending,
		PreferredDeliveryDate: input.PreferredDeliveryDate,
		Notes:                 strings.TrimSpace(input.Notes),
	}
	if err := s.orderRepo.Create(order, items, bundles); err != nil {
		return nil, err
	}

	if err := s.cartService.Clear(ctx, input.SessionID, input.UserID); err != nil {
		// The order exists; an unreachable cart store only leaves
		// stale lines behind.
		logger.Warnw("checkout_cart_clear_failed", "session_id", input.SessionID, "error", err)
	}

	created, err := s.orderRepo.GetByID(order.ID)
	if err != nil || created == nil {
		return order, nil
	}
	publishOrderEvent(s.queueClient, created, constants.OrderEventCreated, input.UserID)
	return created, nil
}

func (s *OrderService) snapshotProducts(lines []models.CartProductLine) ([]models.OrderItem, decimal.Decimal, error) {
	items := make([]models.OrderItem, 0, len(lines))
	total := decimal.Zero
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, decimal.Zero, ErrCartLineInvalid
		}
		name := line.Name
		price := line.UnitPrice
		product, err := s.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, decimal.Zero, err
		}
		if product != nil {
			if !product.IsActive {
				return nil, decimal.Zero, ErrProductNotAvailable
			}
			name = product.Name
			price = product.Price
		}
		items = append(items, models.OrderItem{
			ProductName:  name,
			ProductPrice: price,
			Quantity:     line.Quantity,
		})
		total = total.Add(price.Decimal.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return items, total, nil
}

func (s *OrderService) snapshotBundles(lines []models.CartBundleLine) ([]models.OrderBundle, decimal.Decimal, error) {
	bundles := make([]models.OrderBundle, 0, len(lines))
	total := decimal.Zero
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, decimal.Zero, ErrCartLineInvalid
		}
		name := line.Name
		displayPrice := line.Price
		bundle, err := s.bundleRepo.GetByID(line.BundleID)
		if err != nil {
			return nil, decimal.Zero, err
		}
		if bundle != nil {
			if !bundle.IsActive {
				return nil, decimal.Zero, ErrBundleNotAvailable
			}
			name = bundle.Name
			displayPrice = bundle.Price
		}
		price, err := models.ParseDisplayPrice(displayPrice)
		if err != nil {
			return nil, decimal.Zero, ErrBundlePriceInvalid
		}
		bundles = append(bundles, models.OrderBundle{
			BundleName:  name,
			BundlePrice: displayPrice,
			Quantity:    line.Quantity,
		})
		total = total.Add(price.Decimal.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return bundles, total, nil
}

// GetForUser fetches a customer's own order.
func (s *OrderService) GetForUser(orderID uint, userID string) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// GetByOrderNoForUser fetches a customer's own order by order number.
func (s *OrderService) GetByOrderNoForUser(orderNo string, userID string) (*models.Order, error) {
	order, err := s.orderRepo.GetByOrderNoAndUser(orderNo, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// GetAdmin fetches any order for the back office.
func (s *OrderService) GetAdmin(orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListByUser lists a customer's own orders.
func (s *OrderService) ListByUser(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.ListByUser(filter)
}

// ListAdmin lists orders for the back office.
func (s *OrderService) ListAdmin(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.ListAdmin(filter)
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	return fmt.Sprintf("DT%s%s", now, randNumeric(6))
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}
