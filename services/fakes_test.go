package services

import (
	"context"
	"sort"

	"github.com/HITENDRAS940/E-commerce1/models"
	"github.com/HITENDRAS940/E-commerce1/pkg/apperrors"
	"github.com/HITENDRAS940/E-commerce1/repository"
)

// fakeStore is an in-memory stand-in for the transactional store. All rows
// are kept as values so a snapshot is a plain map copy, which lets the fake
// transaction manager roll back exactly like the real one.
type fakeStore struct {
	products   map[uint]models.Product
	categories map[uint]models.Category
	carts      map[uint]models.Cart
	items      map[uint]models.CartItem
	orders     map[uint]models.Order
	orderItems map[uint]models.OrderItem
	payments   map[uint]models.Payment
	addresses  map[uint]models.Address
	nextID     uint

	// cartLockReads counts cart reads taken with a row lock, so tests can
	// assert every cart mutation path acquires one.
	cartLockReads int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products:   make(map[uint]models.Product),
		categories: make(map[uint]models.Category),
		carts:      make(map[uint]models.Cart),
		items:      make(map[uint]models.CartItem),
		orders:     make(map[uint]models.Order),
		orderItems: make(map[uint]models.OrderItem),
		payments:   make(map[uint]models.Payment),
		addresses:  make(map[uint]models.Address),
		nextID:     1000,
	}
}

func (s *fakeStore) id() uint {
	s.nextID++
	return s.nextID
}

func copyMap[K comparable, V any](src map[K]V) map[K]V {
	dst := make(map[K]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func (s *fakeStore) snapshot() *fakeStore {
	return &fakeStore{
		products:   copyMap(s.products),
		categories: copyMap(s.categories),
		carts:      copyMap(s.carts),
		items:      copyMap(s.items),
		orders:     copyMap(s.orders),
		orderItems: copyMap(s.orderItems),
		payments:   copyMap(s.payments),
		addresses:  copyMap(s.addresses),
		nextID:     s.nextID,

		cartLockReads: s.cartLockReads,
	}
}

func (s *fakeStore) restore(snap *fakeStore) {
	*s = *snap
}

func (s *fakeStore) repos() *repository.Repositories {
	return &repository.Repositories{
		Products:  &fakeProductRepo{s},
		Carts:     &fakeCartRepo{s},
		Orders:    &fakeOrderRepo{s},
		Addresses: &fakeAddressRepo{s},
	}
}

// addProduct seeds a product, deriving its special price the way the real
// save hook does.
func (s *fakeStore) addProduct(p models.Product) models.Product {
	if p.ID == 0 {
		p.ID = s.id()
	}
	p.SpecialPrice = p.Price - (p.Price*p.Discount)/100
	s.products[p.ID] = p
	return p
}

func (s *fakeStore) cartItems(cartID uint) []models.CartItem {
	var out []models.CartItem
	for _, item := range s.items {
		if item.CartID == cartID {
			item.Product = s.products[item.ProductID]
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// fakeTxManager applies fn against the shared store and restores the
// pre-transaction snapshot when fn fails.
type fakeTxManager struct {
	store *fakeStore
}

func (m *fakeTxManager) Do(_ context.Context, fn func(r *repository.Repositories) error) error {
	snap := m.store.snapshot()
	if err := fn(m.store.repos()); err != nil {
		m.store.restore(snap)
		return err
	}
	return nil
}

// ---- product repository ----

type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) FindByID(_ context.Context, id uint) (*models.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, apperrors.NotFound("Product", "productId", id)
	}
	return &p, nil
}

func (r *fakeProductRepo) FindByIDForUpdate(ctx context.Context, id uint) (*models.Product, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeProductRepo) FindAll(_ context.Context, page, limit int) ([]models.Product, int64, error) {
	var out []models.Product
	for _, p := range r.s.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, int64(len(out)), nil
}

func (r *fakeProductRepo) FindByCategory(_ context.Context, categoryID uint, page, limit int) ([]models.Product, int64, error) {
	var out []models.Product
	for _, p := range r.s.products {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, int64(len(out)), nil
}

func (r *fakeProductRepo) Create(_ context.Context, product *models.Product) error {
	if product.ID == 0 {
		product.ID = r.s.id()
	}
	product.SpecialPrice = product.Price - (product.Price*product.Discount)/100
	r.s.products[product.ID] = *product
	return nil
}

func (r *fakeProductRepo) Save(_ context.Context, product *models.Product) error {
	product.SpecialPrice = product.Price - (product.Price*product.Discount)/100
	r.s.products[product.ID] = *product
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.s.products[id]; !ok {
		return apperrors.NotFound("Product", "productId", id)
	}
	delete(r.s.products, id)
	return nil
}

// ---- cart repository ----

type fakeCartRepo struct{ s *fakeStore }

func (r *fakeCartRepo) findCart(match func(models.Cart) bool, notFound error) (*models.Cart, error) {
	for _, cart := range r.s.carts {
		if match(cart) {
			cart.Items = r.s.cartItems(cart.ID)
			return &cart, nil
		}
	}
	return nil, notFound
}

func (r *fakeCartRepo) FindByUserID(_ context.Context, userID uint) (*models.Cart, error) {
	return r.findCart(
		func(c models.Cart) bool { return c.UserID == userID },
		apperrors.NotFound("Cart", "userId", userID),
	)
}

func (r *fakeCartRepo) FindByUserIDForUpdate(ctx context.Context, userID uint) (*models.Cart, error) {
	r.s.cartLockReads++
	return r.FindByUserID(ctx, userID)
}

func (r *fakeCartRepo) FindByID(_ context.Context, id uint) (*models.Cart, error) {
	return r.findCart(
		func(c models.Cart) bool { return c.ID == id },
		apperrors.NotFound("Cart", "cartId", id),
	)
}

func (r *fakeCartRepo) FindByIDForUpdate(ctx context.Context, id uint) (*models.Cart, error) {
	r.s.cartLockReads++
	return r.FindByID(ctx, id)
}

func (r *fakeCartRepo) FindAll(_ context.Context) ([]models.Cart, error) {
	var out []models.Cart
	for _, cart := range r.s.carts {
		cart.Items = r.s.cartItems(cart.ID)
		out = append(out, cart)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeCartRepo) Create(_ context.Context, cart *models.Cart) error {
	if cart.ID == 0 {
		cart.ID = r.s.id()
	}
	stored := *cart
	stored.Items = nil
	r.s.carts[cart.ID] = stored
	return nil
}

func (r *fakeCartRepo) UpdateTotalPrice(_ context.Context, cartID uint, total float64) error {
	cart, ok := r.s.carts[cartID]
	if !ok {
		return apperrors.NotFound("Cart", "cartId", cartID)
	}
	cart.TotalPrice = total
	r.s.carts[cartID] = cart
	return nil
}

func (r *fakeCartRepo) FindItem(_ context.Context, cartID, productID uint) (*models.CartItem, error) {
	for _, item := range r.s.items {
		if item.CartID == cartID && item.ProductID == productID {
			return &item, nil
		}
	}
	return nil, nil
}

func (r *fakeCartRepo) FindCartIDsByProduct(_ context.Context, productID uint) ([]uint, error) {
	var out []uint
	for _, item := range r.s.items {
		if item.ProductID == productID {
			out = append(out, item.CartID)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

func (r *fakeCartRepo) CreateItem(_ context.Context, item *models.CartItem) error {
	if item.ID == 0 {
		item.ID = r.s.id()
	}
	stored := *item
	stored.Product = models.Product{}
	r.s.items[item.ID] = stored
	return nil
}

func (r *fakeCartRepo) SaveItem(_ context.Context, item *models.CartItem) error {
	stored := *item
	stored.Product = models.Product{}
	r.s.items[item.ID] = stored
	return nil
}

func (r *fakeCartRepo) DeleteItem(_ context.Context, cartID, productID uint) error {
	for id, item := range r.s.items {
		if item.CartID == cartID && item.ProductID == productID {
			delete(r.s.items, id)
			return nil
		}
	}
	return apperrors.NotFound("CartItem", "productId", productID)
}

func (r *fakeCartRepo) DeleteAllItems(_ context.Context, cartID uint) error {
	for id, item := range r.s.items {
		if item.CartID == cartID {
			delete(r.s.items, id)
		}
	}
	return nil
}

// ---- order repository ----

type fakeOrderRepo struct{ s *fakeStore }

func (r *fakeOrderRepo) Create(_ context.Context, order *models.Order) error {
	if order.ID == 0 {
		order.ID = r.s.id()
	}
	stored := *order
	stored.Items = nil
	stored.Payment = models.Payment{}
	r.s.orders[order.ID] = stored
	return nil
}

func (r *fakeOrderRepo) CreatePayment(_ context.Context, payment *models.Payment) error {
	if payment.ID == 0 {
		payment.ID = r.s.id()
	}
	r.s.payments[payment.ID] = *payment
	return nil
}

func (r *fakeOrderRepo) CreateItems(_ context.Context, items []models.OrderItem) error {
	for i := range items {
		if items[i].ID == 0 {
			items[i].ID = r.s.id()
		}
		r.s.orderItems[items[i].ID] = items[i]
	}
	return nil
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id uint) (*models.Order, error) {
	order, ok := r.s.orders[id]
	if !ok {
		return nil, apperrors.NotFound("Order", "orderId", id)
	}
	order.Payment = r.s.payments[order.PaymentID]
	for _, item := range r.s.orderItems {
		if item.OrderID == id {
			order.Items = append(order.Items, item)
		}
	}
	sort.Slice(order.Items, func(i, j int) bool { return order.Items[i].ID < order.Items[j].ID })
	return &order, nil
}

func (r *fakeOrderRepo) FindByEmail(_ context.Context, email string, page, limit int) ([]models.Order, int64, error) {
	var out []models.Order
	for id, order := range r.s.orders {
		if order.Email == email {
			full, _ := r.FindByID(context.Background(), id)
			out = append(out, *full)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, int64(len(out)), nil
}

// ---- category repository ----

type fakeCategoryRepo struct{ s *fakeStore }

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uint) (*models.Category, error) {
	c, ok := r.s.categories[id]
	if !ok {
		return nil, apperrors.NotFound("Category", "categoryId", id)
	}
	return &c, nil
}

func (r *fakeCategoryRepo) FindAll(_ context.Context) ([]models.Category, error) {
	var out []models.Category
	for _, c := range r.s.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *models.Category) error {
	if category.ID == 0 {
		category.ID = r.s.id()
	}
	r.s.categories[category.ID] = *category
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.s.categories[id]; !ok {
		return apperrors.NotFound("Category", "categoryId", id)
	}
	delete(r.s.categories, id)
	return nil
}

// ---- address repository ----

type fakeAddressRepo struct{ s *fakeStore }

func (r *fakeAddressRepo) FindByID(_ context.Context, id uint) (*models.Address, error) {
	a, ok := r.s.addresses[id]
	if !ok {
		return nil, apperrors.NotFound("Address", "addressId", id)
	}
	return &a, nil
}

func (r *fakeAddressRepo) FindByUserID(_ context.Context, userID uint) ([]models.Address, error) {
	var out []models.Address
	for _, a := range r.s.addresses {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeAddressRepo) Create(_ context.Context, address *models.Address) error {
	if address.ID == 0 {
		address.ID = r.s.id()
	}
	r.s.addresses[address.ID] = *address
	return nil
}

func (r *fakeAddressRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.s.addresses[id]; !ok {
		return apperrors.NotFound("Address", "addressId", id)
	}
	delete(r.s.addresses, id)
	return nil
}
