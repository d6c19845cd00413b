package service

import (
	"context"

	"github.com/dentora-store/internal/constants"
	"github.com/dentora-store/internal/logger"
	"github.com/dentora-store/internal/models"
	"github.com/dentora-store/internal/repository"

	"github.com/shopspring/decimal"
)

// CartView is the rendered cart with derived totals.
type CartView struct {
	Products    []models.CartProductLine `json:"products"`
	Bundles     []models.CartBundleLine  `json:"bundles"`
	ItemCount   int                      `json:"item_count"`
	TotalAmount models.Money             `json:"total_amount"`
	Currency    string                   `json:"currency"`
}

// CartService owns the session cart. The cart store is authoritative;
// the database mirror is written best effort for authenticated users.
type CartService struct {
	store       repository.CartStore
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	bundleRepo  repository.BundleRepository
	currency    string
}

// NewCartService creates a cart service.
func NewCartService(store repository.CartStore, cartRepo repository.CartRepository, productRepo repository.ProductRepository, bundleRepo repository.BundleRepository, currency string) *CartService {
	return &CartService{
		store:       store,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		bundleRepo:  bundleRepo,
		currency:    currency,
	}
}

// Get loads both cart sections and computes the derived totals.
func (s *CartService) Get(ctx context.Context, sessionID string) (*CartView, error) {
	products, err := s.store.GetProducts(ctx, sessionID)
	if err != nil {
		return nil, ErrCartStoreFailed
	}
	bundles, err := s.store.GetBundles(ctx, sessionID)
	if err != nil {
		return nil, ErrCartStoreFailed
	}
	return s.buildView(products, bundles), nil
}

func (s *CartService) buildView(products []models.CartProductLine, bundles []models.CartBundleLine) *CartView {
	count := 0
	total := decimal.Zero
	for _, line := range products {
		count += line.Quantity
		total = total.Add(line.UnitPrice.Decimal.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	for _, line := range bundles {
		count += line.Quantity
		price, err := models.ParseDisplayPrice(line.Price)
		if err != nil {
			// A line rehydrated with an unreadable price contributes
			// nothing to the total instead of poisoning the cart.
			logger.Warnw("cart_bundle_price_unreadable", "price", line.Price, "bundle_id", line.BundleID)
			continue
		}
		total = total.Add(price.Decimal.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	if products == nil {
		products = []models.CartProductLine{}
	}
	if bundles == nil {
		bundles = []models.CartBundleLine{}
	}
	return &CartView{
		Products:    products,
		Bundles:     bundles,
		ItemCount:   count,
		TotalAmount: models.NewMoneyFromDecimal(total),
		Currency:    s.currency,
	}
}

// AddProduct appends a product line, or bumps its quantity by one when
// the line already exists.
func (s *CartService) AddProduct(ctx context.Context, sessionID, userID string, productID uint) (*CartView, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if !product.IsActive {
		return nil, ErrProductNotAvailable
	}

	lines, err := s.store.GetProducts(ctx, sessionID)
	if err != nil {
		return nil, ErrCartStoreFailed
	}
	found := false
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity++
			lines[i].UnitPrice = product.Price
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, models.CartProductLine{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  1,
		})
	}
	if err := s.store.SaveProducts(ctx, sessionID, lines); err != nil {
		return nil, ErrCartStoreFailed
	}
	s.mirrorLine(userID, constants.CartLineKindProduct, productID, quantityOf(lines, productID))
	return s.viewAfterProducts(ctx, sessionID, lines)
}

// AddBundle appends a bundle line, or bumps its quantity by one when
// the line already exists. The display price must be readable up front
// so totals never surprise later.
func (s *CartService) AddBundle(ctx context.Context, sessionID, userID string, bundleID uint) (*CartView, error) {
	bundle, err := s.bundleRepo.GetByID(bundleID)
	if err != nil {
		return nil, err
	}
	if bundle == nil {
		return nil, ErrBundleNotFound
	}
	if !bundle.IsActive {
		return nil, ErrBundleNotAvailable
	}
	if _, err := models.ParseDisplayPrice(bundle.Price); err != nil {
		return nil, ErrBundlePriceInvalid
	}

	lines, err := s.store.GetBundles(ctx, sessionID)
	if err != nil {
		return nil, ErrCartStoreFailed
	}
	found := false
	for i := range lines {
		if lines[i].BundleID == bundleID {
			lines[i].Quantity++
			lines[i].Price = bundle.Price
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, models.CartBundleLine{
			BundleID: bundle.ID,
			Name:     bundle.Name,
			Price:    bundle.Price,
			Quantity: 1,
		})
	}
	if err := s.store.SaveBundles(ctx, sessionID, lines); err != nil {
		return nil, ErrCartStoreFailed
	}
	s.mirrorLine(userID, constants.CartLineKindBundle, bundleID, bundleQuantityOf(lines, bundleID))
	return s.viewAfterBundles(ctx, sessionID, lines)
}

// UpdateProductQuantity sets a product line's quantity; zero or less
// removes the line.
func (s *CartService) UpdateProductQuantity(ctx context.Context, sessionID, userID string, productID uint, quantity int) (*CartView, error) {
	lines, err := s.store.GetProducts(ctx, sessionID)
	if err != nil {
		return nil, ErrCartStoreFailed
	}
	next := lines[:0]
	for _, line := range lines {
		if line.ProductID == productID {
			if quantity <= 0 {
				continue
			}
			line.Quantity = quantity
		}
		next = append(next, line)
	}
	if err := s.store.SaveProducts(ctx, sessionID, next); err != nil {
		return nil, ErrCartStoreFailed
	}
	s.mirrorLine(userID, constants.CartLineKindProduct, productID, quantityOf(next, productID))
	return s.viewAfterProducts(ctx, sessionID, next)
}

// UpdateBundleQuantity sets a bundle line's quantity; zero or less
// removes the line.
func (s *CartService) UpdateBundleQuantity(ctx context.Context, sessionID, userID string, bundleID uint, quantity int) (*CartView, error) {
	lines, err := s.store.GetBundles(ctx, sessionID)
	if err != nil {
		return nil, ErrCartStoreFailed
	}
	next := lines[:0]
	for _, line := range lines {
		if line.BundleID == bundleID {
			if quantity <= 0 {
				continue
			}
			line.Quantity = quantity
		}
		next = append(next, line)
	}
	if err := s.store.SaveBundles(ctx, sessionID, next); err != nil {
		return nil, ErrCartStoreFailed
	}
	s.mirrorLine(userID, constants.CartLineKindBundle, bundleID, bundleQuantityOf(next, bundleID))
	return s.viewAfterBundles(ctx, sessionID, next)
}

// RemoveProduct drops a product line; removing an absent line is not
// an error.
func (s *CartService) RemoveProduct(ctx context.Context, sessionID, userID string, productID uint) (*CartView, error) {
	return s.UpdateProductQuantity(ctx, sessionID, userID, productID, 0)
}

// RemoveBundle drops a bundle line; removing an absent line is not an
// error.
func (s *CartService) RemoveBundle(ctx context.Context, sessionID, userID string, bundleID uint) (*CartView, error) {
	return s.UpdateBundleQuantity(ctx, sessionID, userID, bundleID, 0)
}

// Clear empties both cart sections.
func (s *CartService) Clear(ctx context.Context, sessionID, userID string) error {
	if err := s.store.Clear(ctx, sessionID); err != nil {
		return ErrCartStoreFailed
	}
	if userID != "" && s.cartRepo != nil {
		if err := s.cartRepo.ClearByUser(userID); err != nil {
			logger.Warnw("cart_mirror_clear_failed", "user_id", userID, "error", err)
		}
	}
	return nil
}

func (s *CartService) viewAfterProducts(ctx context.Context, sessionID string, products []models.CartProductLine) (*CartView, error) {
	bundles, err := s.store.GetBundles(ctx, sessionID)
	if err != nil {
		return nil, ErrCartStoreFailed
	}
	return s.buildView(products, bundles), nil
}

func (s *CartService) viewAfterBundles(ctx context.Context, sessionID string, bundles []models.CartBundleLine) (*CartView, error) {
	products, err := s.store.GetProducts(ctx, sessionID)
	if err != nil {
		return nil, ErrCartStoreFailed
	}
	return s.buildView(products, bundles), nil
}

// mirrorLine keeps the database copy of an authenticated cart close to
// the authoritative store. Failures are logged, never surfaced.
func (s *CartService) mirrorLine(userID, kind string, refID uint, quantity int) {
	if userID == "" || s.cartRepo == nil {
		return
	}
	var err error
	if quantity <= 0 {
		err = s.cartRepo.DeleteByUserAndLine(userID, kind, refID)
	} else {
		err = s.cartRepo.Upsert(&models.CartItem{
			UserID:   userID,
			Kind:     kind,
			RefID:    refID,
			Quantity: quantity,
		})
	}
	if err != nil {
		logger.Warnw("cart_mirror_write_failed", "user_id", userID, "kind", kind, "ref_id", refID, "error", err)
	}
}

func quantityOf(lines []models.CartProductLine, productID uint) int {
	for _, line := range lines {
		if line.ProductID == productID {
			return line.Quantity
		}
	}
	return 0
}

func bundleQuantityOf(lines []models.CartBundleLine, bundleID uint) int {
	for _, line := range lines {
		if line.BundleID == bundleID {
			return line.Quantity
		}
	}
	return 0
}
