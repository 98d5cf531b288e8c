// Package memory provides in-process implementations of the storage ports.
// They honour the same status-conditioned semantics as the PostgreSQL
// repositories and back unit tests and local runs without a database.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/xenking/classics-showroom/internal/domain/cart"
	"github.com/xenking/classics-showroom/internal/domain/catalog"
	"github.com/xenking/classics-showroom/internal/domain/order"
)

var (
	_ order.Repository   = (*Orders)(nil)
	_ catalog.Repository = (*Cars)(nil)
	_ cart.Store         = (*Carts)(nil)
)

// Orders is an in-memory order.Repository.
type Orders struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*order.Order
	cars   *Cars
}

// NewOrders returns an empty store. When cars is non-nil, MarkPaid flags the
// order's cars sold in it.
func NewOrders(cars *Cars) *Orders {
	return &Orders{byID: make(map[int64]*order.Order), cars: cars}
}

// Create implements order.Repository.
func (s *Orders) Create(_ context.Context, o *order.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	now := time.Now().UTC()
	o.ID = s.nextID
	o.CreatedAt = now
	o.UpdatedAt = now
	if o.Number == uuid.Nil {
		o.Number = uuid.New()
	}
	for i := range o.Items {
		o.Items[i].ID = o.ID*1000 + int64(i+1)
	}
	s.byID[o.ID] = clone(o)
	return nil
}

// FindByID implements order.Repository.
func (s *Orders) FindByID(_ context.Context, id int64) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.byID[id]
	if !ok {
		return nil, order.ErrNotFound
	}
	return clone(o), nil
}

// FindByNumber implements order.Repository.
func (s *Orders) FindByNumber(_ context.Context, number uuid.UUID) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.byID {
		if o.Number == number {
			return clone(o), nil
		}
	}
	return nil, order.ErrNotFound
}

// ListByUser implements order.Repository.
func (s *Orders) ListByUser(_ context.Context, userID int64, limit, offset int) ([]order.Order, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var owned []order.Order
	for _, o := range s.byID {
		if o.OwnedBy(userID) {
			owned = append(owned, *clone(o))
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		if owned[i].CreatedAt.Equal(owned[j].CreatedAt) {
			return owned[i].ID > owned[j].ID
		}
		return owned[i].CreatedAt.After(owned[j].CreatedAt)
	})

	total := len(owned)
	if offset >= total {
		return nil, total, nil
	}
	end := min(offset+limit, total)
	return owned[offset:end], total, nil
}

// UpdatePayment implements order.Repository.
func (s *Orders) UpdatePayment(_ context.Context, id int64, t order.Totals, intentID string) error {
	return s.updatePending(id, func(o *order.Order) error {
		setTotals(o, t)
		o.PaymentIntentID = intentID
		return nil
	})
}

// UpdateDelivery implements order.Repository.
func (s *Orders) UpdateDelivery(_ context.Context, id int64, distanceMiles int, t order.Totals) error {
	return s.updatePending(id, func(o *order.Order) error {
		o.DeliveryDistance = &distanceMiles
		setTotals(o, t)
		return nil
	})
}

// UpdateShipping implements order.Repository. Shipping details may be
// recorded after payment, so it is not status-conditioned.
func (s *Orders) UpdateShipping(_ context.Context, id int64, sh order.Shipping) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.byID[id]
	if !ok {
		return order.ErrNotFound
	}
	o.Shipping = sh
	o.UpdatedAt = time.Now().UTC()
	return nil
}

// MarkPaid implements order.Repository.
func (s *Orders) MarkPaid(_ context.Context, id int64, c order.Capture) error {
	var carIDs []int64
	err := s.settle(id, c.IntentID, func(o *order.Order) {
		o.Status = order.StatusPaid
		o.PaidAmount.Decimal = c.Amount
		o.PaidAmount.Valid = true
		o.Currency = c.Currency
		at := c.At
		o.PaidAt = &at
		for _, li := range o.Items {
			carIDs = append(carIDs, li.CarID)
		}
	})
	if err != nil {
		return err
	}
	if s.cars != nil {
		s.cars.MarkSold(carIDs...)
	}
	return nil
}

// MarkFailed implements order.Repository.
func (s *Orders) MarkFailed(_ context.Context, id int64, intentID string) error {
	return s.settle(id, intentID, func(o *order.Order) {
		o.Status = order.StatusFailed
	})
}

// settle applies a terminal transition when the order is pending and has no
// intent or the given one.
func (s *Orders) settle(id int64, intentID string, apply func(o *order.Order)) error {
	return s.updatePending(id, func(o *order.Order) error {
		if o.PaymentIntentID != "" && o.PaymentIntentID != intentID {
			return order.ErrTransitionConflict
		}
		if o.PaymentIntentID == "" {
			o.PaymentIntentID = intentID
		}
		apply(o)
		return nil
	})
}

func (s *Orders) updatePending(id int64, apply func(o *order.Order) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.byID[id]
	if !ok || o.Status != order.StatusPending {
		return order.ErrTransitionConflict
	}
	if err := apply(o); err != nil {
		return err
	}
	o.UpdatedAt = time.Now().UTC()
	return nil
}

func setTotals(o *order.Order, t order.Totals) {
	o.Subtotal = t.Subtotal
	o.DeliveryFee = t.DeliveryFee
	o.GrandTotal = t.GrandTotal
}

func clone(o *order.Order) *order.Order {
	c := *o
	c.Items = append([]order.LineItem(nil), o.Items...)
	c.CartSnapshot = append([]order.SnapshotItem(nil), o.CartSnapshot...)
	if o.UserID != nil {
		uid := *o.UserID
		c.UserID = &uid
	}
	if o.DeliveryDistance != nil {
		d := *o.DeliveryDistance
		c.DeliveryDistance = &d
	}
	if o.PaidAt != nil {
		at := *o.PaidAt
		c.PaidAt = &at
	}
	return &c
}

// Cars is an in-memory catalog.Repository.
type Cars struct {
	mu   sync.Mutex
	byID map[int64]catalog.Car
}

// NewCars returns a catalog holding cars.
func NewCars(cars ...catalog.Car) *Cars {
	s := &Cars{byID: make(map[int64]catalog.Car, len(cars))}
	for _, c := range cars {
		s.byID[c.ID] = c
	}
	return s
}

// GetByIDs implements catalog.Repository.
func (s *Cars) GetByIDs(_ context.Context, ids []int64) ([]catalog.Car, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]catalog.Car, 0, len(ids))
	for _, id := range ids {
		if c, ok := s.byID[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

// MarkSold flags the given cars sold.
func (s *Cars) MarkSold(ids ...int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		if c, ok := s.byID[id]; ok {
			c.Sold = true
			s.byID[id] = c
		}
	}
}

// Get returns a single car.
func (s *Cars) Get(id int64) (catalog.Car, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.byID[id]
	return c, ok
}

// Carts is an in-memory cart.Store.
type Carts struct {
	mu      sync.Mutex
	byUser  map[int64]map[int64]int
	cleared map[int64]int
}

// NewCarts returns an empty cart store.
func NewCarts() *Carts {
	return &Carts{byUser: make(map[int64]map[int64]int), cleared: make(map[int64]int)}
}

// Add increments the quantity of carID in the user's cart.
func (s *Carts) Add(userID, carID int64, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, ok := s.byUser[userID]
	if !ok {
		items = make(map[int64]int)
		s.byUser[userID] = items
	}
	items[carID] += quantity
}

// Get implements cart.Store.
func (s *Carts) Get(_ context.Context, userID int64) (*cart.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := &cart.Cart{UserID: userID}
	for carID, qty := range s.byUser[userID] {
		c.Items = append(c.Items, cart.Item{CarID: carID, Quantity: qty})
	}
	sort.Slice(c.Items, func(i, j int) bool { return c.Items[i].CarID < c.Items[j].CarID })
	return c, nil
}

// Clear implements cart.Store.
func (s *Carts) Clear(_ context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.byUser, userID)
	s.cleared[userID]++
	return nil
}

// Cleared returns how many times the user's cart was cleared.
func (s *Carts) Cleared(userID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cleared[userID]
}
