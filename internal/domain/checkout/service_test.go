package checkout_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/classics-showroom/internal/domain/catalog"
	"github.com/xenking/classics-showroom/internal/domain/checkout"
	"github.com/xenking/classics-showroom/internal/domain/delivery"
	"github.com/xenking/classics-showroom/internal/domain/order"
	"github.com/xenking/classics-showroom/internal/domain/payment"
	"github.com/xenking/classics-showroom/internal/storage/memory"
)

// --- Mock implementations ---

type mockIntents struct {
	mu        sync.Mutex
	created   []payment.IntentRequest
	byID      map[string]*payment.Intent
	status    payment.IntentStatus
	createErr error
	getErr    error
	cancelErr error
	cancelled []string
}

func newMockIntents() *mockIntents {
	return &mockIntents{byID: make(map[string]*payment.Intent), status: payment.IntentRequiresPaymentMethod}
}

func (m *mockIntents) CreateIntent(_ context.Context, req payment.IntentRequest) (*payment.Intent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.created = append(m.created, req)
	id := fmt.Sprintf("pi_%d", len(m.created))
	in := &payment.Intent{
		ID:           id,
		ClientSecret: id + "_secret_abc",
		Amount:       req.Amount,
		Currency:     req.Currency,
		Status:       m.status,
		Metadata:     req.Metadata,
	}
	m.byID[id] = in
	return in, nil
}

func (m *mockIntents) GetIntent(_ context.Context, id string) (*payment.Intent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	in, ok := m.byID[id]
	if !ok {
		return nil, errors.New("no such intent")
	}
	c := *in
	return &c, nil
}

func (m *mockIntents) CancelIntent(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cancelErr != nil {
		return m.cancelErr
	}
	in, ok := m.byID[id]
	if !ok {
		return errors.New("no such intent")
	}
	in.Status = payment.IntentCanceled
	m.cancelled = append(m.cancelled, id)
	return nil
}

func (m *mockIntents) setStatus(id string, s payment.IntentStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[id].Status = s
}

// --- Helpers ---

const (
	alice int64 = 1
	bob   int64 = 2
)

type fixture struct {
	orders  *memory.Orders
	cars    *memory.Cars
	carts   *memory.Carts
	intents *mockIntents
	svc     *checkout.Service
}

func newFixture(policy delivery.Policy) *fixture {
	cars := memory.NewCars(
		catalog.Car{ID: 1, Make: "Jaguar", Model: "E-Type", Year: 1961, Price: decimal.RequireFromString("100.00")},
		catalog.Car{ID: 2, Make: "Aston Martin", Model: "DB5", Year: 1964, Price: decimal.RequireFromString("20.00")},
		catalog.Car{ID: 3, Make: "Porsche", Model: "356", Year: 1958, Price: decimal.RequireFromString("75.00"), Sold: true},
	)
	f := &fixture{
		orders:  memory.NewOrders(cars),
		cars:    cars,
		carts:   memory.NewCarts(),
		intents: newMockIntents(),
	}
	f.svc = checkout.NewService(checkout.Config{Currency: "gbp", PageSize: 2}, f.orders, f.cars, f.carts, f.intents, policy)
	return f
}

func flatFive() delivery.Policy {
	return delivery.Flat{Amount: decimal.RequireFromString("5.00")}
}

func validForm() checkout.ShippingForm {
	return checkout.ShippingForm{
		FullName:       "Ada Lovelace",
		Email:          "ada@example.com",
		PhoneNumber:    "01234 567890",
		StreetAddress1: "1 Mews Lane",
		TownOrCity:     "London",
		Postcode:       "N1 1AA",
		Country:        "GB",
	}
}

// --- Tests ---

func TestCreateOrder_SnapshotsCatalogPrices(t *testing.T) {
	f := newFixture(flatFive())
	f.carts.Add(alice, 1, 2)

	o, err := f.svc.CreateOrder(context.Background(), alice, " alice@example.com ")
	require.NoError(t, err)

	assert.NotZero(t, o.ID)
	assert.Equal(t, "alice@example.com", o.AccountEmail)
	assert.NotEqual(t, uuid.Nil, o.Number)
	assert.Equal(t, order.StatusPending, o.Status)
	require.Len(t, o.Items, 1)
	assert.Equal(t, "1961 Jaguar E-Type", o.Items[0].CarName)
	assert.True(t, decimal.RequireFromString("200.00").Equal(o.Items[0].Total()))
	assert.True(t, decimal.RequireFromString("200.00").Equal(o.Subtotal))
	assert.True(t, decimal.RequireFromString("205.00").Equal(o.GrandTotal))
	require.Len(t, o.CartSnapshot, 1)
	assert.True(t, decimal.RequireFromString("200.00").Equal(o.CartSnapshot[0].LineTotal))
	assert.Empty(t, o.Shipping.Email)

	// Cart is kept until payment succeeds.
	c, err := f.carts.Get(context.Background(), alice)
	require.NoError(t, err)
	assert.False(t, c.Empty())
}

func TestCreateOrder_EmptyCart(t *testing.T) {
	f := newFixture(flatFive())

	_, err := f.svc.CreateOrder(context.Background(), alice, "")
	require.ErrorIs(t, err, checkout.ErrEmptyCart)
}

func TestCreateOrder_CarUnavailable(t *testing.T) {
	tests := []struct {
		name  string
		carID int64
	}{
		{name: "sold", carID: 3},
		{name: "missing", carID: 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(flatFive())
			f.carts.Add(alice, 1, 1)
			f.carts.Add(alice, tt.carID, 1)

			_, err := f.svc.CreateOrder(context.Background(), alice, "")
			require.ErrorIs(t, err, checkout.ErrCarUnavailable)

			var cuErr *checkout.CarUnavailableError
			require.ErrorAs(t, err, &cuErr)
			assert.Equal(t, tt.carID, cuErr.CarID)
		})
	}
}

func TestCreateOrder_DistancePolicyWithoutDistance(t *testing.T) {
	f := newFixture(delivery.Distance{FreeMiles: 25, BaseMiles: 100, BaseFee: decimal.NewFromInt(50), BlockMiles: 50, BlockFee: decimal.NewFromInt(10)})
	f.carts.Add(alice, 2, 1)

	o, err := f.svc.CreateOrder(context.Background(), alice, "")
	require.NoError(t, err)
	assert.True(t, o.DeliveryFee.IsZero())
	assert.True(t, o.GrandTotal.Equal(o.Subtotal))

	_, err = f.svc.BeginPayment(context.Background(), alice, o.Number)
	require.ErrorIs(t, err, delivery.ErrDistanceRequired)
	assert.Empty(t, f.intents.created)

	o, err = f.svc.SetDeliveryDistance(context.Background(), alice, o.Number, 150)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("80.00").Equal(o.GrandTotal))

	p, err := f.svc.BeginPayment(context.Background(), alice, o.Number)
	require.NoError(t, err)
	assert.Equal(t, int64(8000), p.Amount)
}

func TestSetDeliveryDistance_Negative(t *testing.T) {
	f := newFixture(flatFive())

	_, err := f.svc.SetDeliveryDistance(context.Background(), alice, uuid.New(), -1)
	var vErr *checkout.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "delivery_distance")
}

func TestBeginPayment_CreatesIntentInMinorUnits(t *testing.T) {
	f := newFixture(flatFive())
	f.carts.Add(alice, 1, 2)
	o, err := f.svc.CreateOrder(context.Background(), alice, "")
	require.NoError(t, err)

	p, err := f.svc.BeginPayment(context.Background(), alice, o.Number)
	require.NoError(t, err)

	assert.Equal(t, int64(20500), p.Amount)
	assert.Equal(t, "gbp", p.Currency)
	assert.Equal(t, "pi_1_secret_abc", p.ClientSecret)
	require.Len(t, f.intents.created, 1)
	req := f.intents.created[0]
	assert.Equal(t, int64(20500), req.Amount)
	assert.Equal(t, fmt.Sprint(o.ID), req.Metadata[payment.MetaOrderID])
	assert.Equal(t, o.Number.String(), req.Metadata[payment.MetaOrderNumber])
	assert.Equal(t, "1", req.Metadata[payment.MetaUserID])

	stored, err := f.orders.FindByID(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, "pi_1", stored.PaymentIntentID)
	assert.True(t, decimal.RequireFromString("205.00").Equal(stored.GrandTotal))
}

func TestBeginPayment_ReusesPendingIntent(t *testing.T) {
	f := newFixture(flatFive())
	f.carts.Add(alice, 1, 1)
	o, err := f.svc.CreateOrder(context.Background(), alice, "")
	require.NoError(t, err)

	first, err := f.svc.BeginPayment(context.Background(), alice, o.Number)
	require.NoError(t, err)
	second, err := f.svc.BeginPayment(context.Background(), alice, o.Number)
	require.NoError(t, err)

	assert.Equal(t, first.IntentID, second.IntentID)
	assert.Len(t, f.intents.created, 1)
}

func TestBeginPayment_ReplacesStaleIntent(t *testing.T) {
	f := newFixture(flatFive())
	f.carts.Add(alice, 1, 1)
	o, err := f.svc.CreateOrder(context.Background(), alice, "")
	require.NoError(t, err)

	first, err := f.svc.BeginPayment(context.Background(), alice, o.Number)
	require.NoError(t, err)
	f.intents.setStatus(first.IntentID, payment.IntentCanceled)

	second, err := f.svc.BeginPayment(context.Background(), alice, o.Number)
	require.NoError(t, err)
	assert.NotEqual(t, first.IntentID, second.IntentID)
	assert.Len(t, f.intents.created, 2)

	stored, err := f.orders.FindByID(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, second.IntentID, stored.PaymentIntentID)
}

func TestBeginPayment_CancelsIntentWhenTotalChanges(t *testing.T) {
	f := newFixture(delivery.Distance{FreeMiles: 25, BaseMiles: 100, BaseFee: decimal.NewFromInt(50), BlockMiles: 50, BlockFee: decimal.NewFromInt(10)})
	f.carts.Add(alice, 1, 2)
	o, err := f.svc.CreateOrder(context.Background(), alice, "")
	require.NoError(t, err)

	_, err = f.svc.SetDeliveryDistance(context.Background(), alice, o.Number, 50)
	require.NoError(t, err)
	first, err := f.svc.BeginPayment(context.Background(), alice, o.Number)
	require.NoError(t, err)
	assert.Equal(t, int64(25000), first.Amount)

	_, err = f.svc.SetDeliveryDistance(context.Background(), alice, o.Number, 150)
	require.NoError(t, err)
	second, err := f.svc.BeginPayment(context.Background(), alice, o.Number)
	require.NoError(t, err)
	assert.Equal(t, int64(26000), second.Amount)

	assert.NotEqual(t, first.IntentID, second.IntentID)
	assert.Equal(t, []string{first.IntentID}, f.intents.cancelled)

	stored, err := f.orders.FindByID(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, second.IntentID, stored.PaymentIntentID)
	assert.True(t, decimal.RequireFromString("260.00").Equal(stored.GrandTotal))
}

func TestBeginPayment_CancelFailureKeepsStoredIntent(t *testing.T) {
	f := newFixture(delivery.Distance{FreeMiles: 25, BaseMiles: 100, BaseFee: decimal.NewFromInt(50), BlockMiles: 50, BlockFee: decimal.NewFromInt(10)})
	f.carts.Add(alice, 1, 1)
	o, err := f.svc.CreateOrder(context.Background(), alice, "")
	require.NoError(t, err)
	_, err = f.svc.SetDeliveryDistance(context.Background(), alice, o.Number, 10)
	require.NoError(t, err)
	first, err := f.svc.BeginPayment(context.Background(), alice, o.Number)
	require.NoError(t, err)

	_, err = f.svc.SetDeliveryDistance(context.Background(), alice, o.Number, 150)
	require.NoError(t, err)
	f.intents.cancelErr = errors.New("dial tcp: i/o timeout")

	_, err = f.svc.BeginPayment(context.Background(), alice, o.Number)
	var pErr *checkout.ProviderError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, "cancel intent", pErr.Op)
	assert.Len(t, f.intents.created, 1)

	stored, err := f.orders.FindByID(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, first.IntentID, stored.PaymentIntentID)
}

func TestBeginPayment_RefusesWhileSettling(t *testing.T) {
	for _, status := range []payment.IntentStatus{payment.IntentProcessing, payment.IntentSucceeded} {
		t.Run(string(status), func(t *testing.T) {
			f := newFixture(flatFive())
			f.carts.Add(alice, 1, 1)
			o, err := f.svc.CreateOrder(context.Background(), alice, "")
			require.NoError(t, err)

			first, err := f.svc.BeginPayment(context.Background(), alice, o.Number)
			require.NoError(t, err)
			f.intents.setStatus(first.IntentID, status)

			_, err = f.svc.BeginPayment(context.Background(), alice, o.Number)
			require.ErrorIs(t, err, checkout.ErrPaymentInProgress)
			assert.Len(t, f.intents.created, 1)
			assert.Empty(t, f.intents.cancelled)
		})
	}
}

func TestBeginPayment_NotPending(t *testing.T) {
	f := newFixture(flatFive())
	f.carts.Add(alice, 1, 1)
	o, err := f.svc.CreateOrder(context.Background(), alice, "")
	require.NoError(t, err)
	require.NoError(t, f.orders.MarkPaid(context.Background(), o.ID, order.Capture{IntentID: "pi_x", Amount: o.GrandTotal, Currency: "GBP"}))

	_, err = f.svc.BeginPayment(context.Background(), alice, o.Number)
	require.ErrorIs(t, err, checkout.ErrOrderNotPending)
	assert.Empty(t, f.intents.created)
}

func TestBeginPayment_ProviderFailure(t *testing.T) {
	f := newFixture(flatFive())
	f.carts.Add(alice, 1, 1)
	o, err := f.svc.CreateOrder(context.Background(), alice, "")
	require.NoError(t, err)
	f.intents.createErr = errors.New("dial tcp: i/o timeout")

	_, err = f.svc.BeginPayment(context.Background(), alice, o.Number)
	var pErr *checkout.ProviderError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, "create intent", pErr.Op)

	stored, err := f.orders.FindByID(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusPending, stored.Status)
	assert.Empty(t, stored.PaymentIntentID)
}

func TestOwnershipIsIndistinguishableFromMissing(t *testing.T) {
	f := newFixture(flatFive())
	f.carts.Add(alice, 1, 1)
	o, err := f.svc.CreateOrder(context.Background(), alice, "")
	require.NoError(t, err)

	calls := map[string]func(userID int64, number uuid.UUID) error{
		"get": func(userID int64, number uuid.UUID) error {
			_, err := f.svc.GetOrder(context.Background(), userID, number)
			return err
		},
		"begin payment": func(userID int64, number uuid.UUID) error {
			_, err := f.svc.BeginPayment(context.Background(), userID, number)
			return err
		},
		"shipping": func(userID int64, number uuid.UUID) error {
			_, err := f.svc.RecordShippingDetails(context.Background(), userID, number, validForm())
			return err
		},
		"distance": func(userID int64, number uuid.UUID) error {
			_, err := f.svc.SetDeliveryDistance(context.Background(), userID, number, 10)
			return err
		},
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			foreign := call(bob, o.Number)
			missing := call(bob, uuid.New())
			require.ErrorIs(t, foreign, checkout.ErrNotFound)
			require.ErrorIs(t, missing, checkout.ErrNotFound)
			assert.Equal(t, missing.Error(), foreign.Error())
		})
	}
}

func TestRecordShippingDetails(t *testing.T) {
	f := newFixture(flatFive())
	f.carts.Add(alice, 1, 1)
	o, err := f.svc.CreateOrder(context.Background(), alice, "")
	require.NoError(t, err)
	p, err := f.svc.BeginPayment(context.Background(), alice, o.Number)
	require.NoError(t, err)

	form := validForm()
	form.FullName = "  Ada Lovelace  "
	form.ClientSecret = p.ClientSecret

	got, err := f.svc.RecordShippingDetails(context.Background(), alice, o.Number, form)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", got.Shipping.FullName)
	assert.Equal(t, order.StatusPending, got.Status)

	stored, err := f.orders.FindByID(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", stored.Shipping.Email)
	assert.Equal(t, order.StatusPending, stored.Status)
}

func TestRecordShippingDetails_Validation(t *testing.T) {
	f := newFixture(flatFive())
	f.carts.Add(alice, 1, 1)
	o, err := f.svc.CreateOrder(context.Background(), alice, "")
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(*checkout.ShippingForm)
		field  string
		msg    string
	}{
		{name: "missing name", mutate: func(f *checkout.ShippingForm) { f.FullName = "   " }, field: "full_name", msg: "This field is required."},
		{name: "bad email", mutate: func(f *checkout.ShippingForm) { f.Email = "not-an-email" }, field: "email", msg: "Enter a valid email address."},
		{name: "long phone", mutate: func(f *checkout.ShippingForm) { f.PhoneNumber = "012345678901234567890" }, field: "phone_number", msg: "Ensure this value has at most 20 characters."},
		{name: "foreign secret", mutate: func(f *checkout.ShippingForm) { f.ClientSecret = "pi_other_secret_x" }, field: "client_secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			_, err := f.svc.RecordShippingDetails(context.Background(), alice, o.Number, form)
			var vErr *checkout.ValidationError
			require.ErrorAs(t, err, &vErr)
			require.Contains(t, vErr.Fields, tt.field)
			if tt.msg != "" {
				assert.Equal(t, tt.msg, vErr.Fields[tt.field])
			}
		})
	}

	stored, err := f.orders.FindByID(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Shipping.FullName)
}

func TestListOrders_Paginates(t *testing.T) {
	f := newFixture(flatFive())
	var numbers []uuid.UUID
	for range 3 {
		f.carts.Add(alice, 2, 1)
		o, err := f.svc.CreateOrder(context.Background(), alice, "")
		require.NoError(t, err)
		numbers = append(numbers, o.Number)
		require.NoError(t, f.carts.Clear(context.Background(), alice))
	}
	f.carts.Add(bob, 2, 1)
	_, err := f.svc.CreateOrder(context.Background(), bob, "")
	require.NoError(t, err)

	page, err := f.svc.ListOrders(context.Background(), alice, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 3, page.Total)
	require.Len(t, page.Orders, 2)
	assert.Equal(t, numbers[2], page.Orders[0].Number)

	page, err = f.svc.ListOrders(context.Background(), alice, 9)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	require.Len(t, page.Orders, 1)
	assert.Equal(t, numbers[0], page.Orders[0].Number)

	page, err = f.svc.ListOrders(context.Background(), 99, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Empty(t, page.Orders)
}
