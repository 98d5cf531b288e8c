// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"io"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

type BearerAuth struct {
	Token string
	Roles []string
}

// GetToken returns the value of Token.
func (s *BearerAuth) GetToken() string {
	return s.Token
}

// GetRoles returns the value of Roles.
func (s *BearerAuth) GetRoles() []string {
	return s.Roles
}

// SetToken sets the value of Token.
func (s *BearerAuth) SetToken(val string) {
	s.Token = val
}

// SetRoles sets the value of Roles.
func (s *BearerAuth) SetRoles(val []string) {
	s.Roles = val
}

type BeginPaymentConflict Error

func (*BeginPaymentConflict) beginPaymentRes() {}

type BeginPaymentNotFound Error

func (*BeginPaymentNotFound) beginPaymentRes() {}

// BeginPaymentSeeOther is response for BeginPayment operation.
type BeginPaymentSeeOther struct {
	Location  string
	SetCookie string
}

// GetLocation returns the value of Location.
func (s *BeginPaymentSeeOther) GetLocation() string {
	return s.Location
}

// GetSetCookie returns the value of SetCookie.
func (s *BeginPaymentSeeOther) GetSetCookie() string {
	return s.SetCookie
}

// SetLocation sets the value of Location.
func (s *BeginPaymentSeeOther) SetLocation(val string) {
	s.Location = val
}

// SetSetCookie sets the value of SetCookie.
func (s *BeginPaymentSeeOther) SetSetCookie(val string) {
	s.SetCookie = val
}

func (*BeginPaymentSeeOther) beginPaymentRes() {}

// CreateOrderSeeOther is response for CreateOrder operation.
type CreateOrderSeeOther struct {
	Location  string
	SetCookie string
}

// GetLocation returns the value of Location.
func (s *CreateOrderSeeOther) GetLocation() string {
	return s.Location
}

// GetSetCookie returns the value of SetCookie.
func (s *CreateOrderSeeOther) GetSetCookie() string {
	return s.SetCookie
}

// SetLocation sets the value of Location.
func (s *CreateOrderSeeOther) SetLocation(val string) {
	s.Location = val
}

// SetSetCookie sets the value of SetCookie.
func (s *CreateOrderSeeOther) SetSetCookie(val string) {
	s.SetCookie = val
}

func (*CreateOrderSeeOther) createOrderRes() {}

// Ref: #/components/schemas/DeliveryQuote
type DeliveryQuote struct {
	OrderNumber      uuid.UUID `json:"order_number"`
	DeliveryDistance int       `json:"delivery_distance"`
	Subtotal         string    `json:"subtotal"`
	DeliveryFee      string    `json:"delivery_fee"`
	GrandTotal       string    `json:"grand_total"`
}

// GetOrderNumber returns the value of OrderNumber.
func (s *DeliveryQuote) GetOrderNumber() uuid.UUID {
	return s.OrderNumber
}

// GetDeliveryDistance returns the value of DeliveryDistance.
func (s *DeliveryQuote) GetDeliveryDistance() int {
	return s.DeliveryDistance
}

// GetSubtotal returns the value of Subtotal.
func (s *DeliveryQuote) GetSubtotal() string {
	return s.Subtotal
}

// GetDeliveryFee returns the value of DeliveryFee.
func (s *DeliveryQuote) GetDeliveryFee() string {
	return s.DeliveryFee
}

// GetGrandTotal returns the value of GrandTotal.
func (s *DeliveryQuote) GetGrandTotal() string {
	return s.GrandTotal
}

// SetOrderNumber sets the value of OrderNumber.
func (s *DeliveryQuote) SetOrderNumber(val uuid.UUID) {
	s.OrderNumber = val
}

// SetDeliveryDistance sets the value of DeliveryDistance.
func (s *DeliveryQuote) SetDeliveryDistance(val int) {
	s.DeliveryDistance = val
}

// SetSubtotal sets the value of Subtotal.
func (s *DeliveryQuote) SetSubtotal(val string) {
	s.Subtotal = val
}

// SetDeliveryFee sets the value of DeliveryFee.
func (s *DeliveryQuote) SetDeliveryFee(val string) {
	s.DeliveryFee = val
}

// SetGrandTotal sets the value of GrandTotal.
func (s *DeliveryQuote) SetGrandTotal(val string) {
	s.GrandTotal = val
}

func (*DeliveryQuote) setDeliveryDistanceRes() {}

// Ref: #/components/schemas/DistanceForm
type DistanceForm struct {
	DeliveryDistance OptString `json:"delivery_distance"`
}

// GetDeliveryDistance returns the value of DeliveryDistance.
func (s *DistanceForm) GetDeliveryDistance() OptString {
	return s.DeliveryDistance
}

// SetDeliveryDistance sets the value of DeliveryDistance.
func (s *DistanceForm) SetDeliveryDistance(val OptString) {
	s.DeliveryDistance = val
}

// Ref: #/components/schemas/Error
type Error struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

// GetCode returns the value of Code.
func (s *Error) GetCode() int32 {
	return s.Code
}

// GetMessage returns the value of Message.
func (s *Error) GetMessage() string {
	return s.Message
}

// SetCode sets the value of Code.
func (s *Error) SetCode(val int32) {
	s.Code = val
}

// SetMessage sets the value of Message.
func (s *Error) SetMessage(val string) {
	s.Message = val
}

func (*Error) createOrderRes()    {}
func (*Error) getOrderRes()       {}
func (*Error) recordShippingRes() {}

// Ref: #/components/schemas/LineItem
type LineItem struct {
	CarID     int64  `json:"car_id"`
	CarName   string `json:"car_name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
}

// GetCarID returns the value of CarID.
func (s *LineItem) GetCarID() int64 {
	return s.CarID
}

// GetCarName returns the value of CarName.
func (s *LineItem) GetCarName() string {
	return s.CarName
}

// GetQuantity returns the value of Quantity.
func (s *LineItem) GetQuantity() int {
	return s.Quantity
}

// GetUnitPrice returns the value of UnitPrice.
func (s *LineItem) GetUnitPrice() string {
	return s.UnitPrice
}

// GetLineTotal returns the value of LineTotal.
func (s *LineItem) GetLineTotal() string {
	return s.LineTotal
}

// SetCarID sets the value of CarID.
func (s *LineItem) SetCarID(val int64) {
	s.CarID = val
}

// SetCarName sets the value of CarName.
func (s *LineItem) SetCarName(val string) {
	s.CarName = val
}

// SetQuantity sets the value of Quantity.
func (s *LineItem) SetQuantity(val int) {
	s.Quantity = val
}

// SetUnitPrice sets the value of UnitPrice.
func (s *LineItem) SetUnitPrice(val string) {
	s.UnitPrice = val
}

// SetLineTotal sets the value of LineTotal.
func (s *LineItem) SetLineTotal(val string) {
	s.LineTotal = val
}

// NewOptDateTime returns new OptDateTime with value set to v.
func NewOptDateTime(v time.Time) OptDateTime {
	return OptDateTime{
		Value: v,
		Set:   true,
	}
}

// OptDateTime is optional time.Time.
type OptDateTime struct {
	Value time.Time
	Set   bool
}

// IsSet returns true if OptDateTime was set.
func (o OptDateTime) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptDateTime) Reset() {
	var v time.Time
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptDateTime) SetTo(v time.Time) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptDateTime) Get() (v time.Time, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptDateTime) Or(d time.Time) time.Time {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptInt returns new OptInt with value set to v.
func NewOptInt(v int) OptInt {
	return OptInt{
		Value: v,
		Set:   true,
	}
}

// OptInt is optional int.
type OptInt struct {
	Value int
	Set   bool
}

// IsSet returns true if OptInt was set.
func (o OptInt) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptInt) Reset() {
	var v int
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptInt) SetTo(v int) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptInt) Get() (v int, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptInt) Or(d int) int {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptString returns new OptString with value set to v.
func NewOptString(v string) OptString {
	return OptString{
		Value: v,
		Set:   true,
	}
}

// OptString is optional string.
type OptString struct {
	Value string
	Set   bool
}

// IsSet returns true if OptString was set.
func (o OptString) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptString) Reset() {
	var v string
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptString) SetTo(v string) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptString) Get() (v string, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptString) Or(d string) string {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// Ref: #/components/schemas/Order
type Order struct {
	OrderNumber      uuid.UUID   `json:"order_number"`
	Status           OrderStatus `json:"status"`
	LineItems        []LineItem  `json:"line_items"`
	Subtotal         string      `json:"subtotal"`
	DeliveryFee      string      `json:"delivery_fee"`
	GrandTotal       string      `json:"grand_total"`
	DeliveryDistance OptInt      `json:"delivery_distance"`
	Currency         OptString   `json:"currency"`
	PaymentIntentID  OptString   `json:"payment_intent_id"`
	PaidAmount       OptString   `json:"paid_amount"`
	Shipping         Shipping    `json:"shipping"`
	CreatedAt        time.Time   `json:"created_at"`
	PaidAt           OptDateTime `json:"paid_at"`
}

// GetOrderNumber returns the value of OrderNumber.
func (s *Order) GetOrderNumber() uuid.UUID {
	return s.OrderNumber
}

// GetStatus returns the value of Status.
func (s *Order) GetStatus() OrderStatus {
	return s.Status
}

// GetLineItems returns the value of LineItems.
func (s *Order) GetLineItems() []LineItem {
	return s.LineItems
}

// GetSubtotal returns the value of Subtotal.
func (s *Order) GetSubtotal() string {
	return s.Subtotal
}

// GetDeliveryFee returns the value of DeliveryFee.
func (s *Order) GetDeliveryFee() string {
	return s.DeliveryFee
}

// GetGrandTotal returns the value of GrandTotal.
func (s *Order) GetGrandTotal() string {
	return s.GrandTotal
}

// GetDeliveryDistance returns the value of DeliveryDistance.
func (s *Order) GetDeliveryDistance() OptInt {
	return s.DeliveryDistance
}

// GetCurrency returns the value of Currency.
func (s *Order) GetCurrency() OptString {
	return s.Currency
}

// GetPaymentIntentID returns the value of PaymentIntentID.
func (s *Order) GetPaymentIntentID() OptString {
	return s.PaymentIntentID
}

// GetPaidAmount returns the value of PaidAmount.
func (s *Order) GetPaidAmount() OptString {
	return s.PaidAmount
}

// GetShipping returns the value of Shipping.
func (s *Order) GetShipping() Shipping {
	return s.Shipping
}

// GetCreatedAt returns the value of CreatedAt.
func (s *Order) GetCreatedAt() time.Time {
	return s.CreatedAt
}

// GetPaidAt returns the value of PaidAt.
func (s *Order) GetPaidAt() OptDateTime {
	return s.PaidAt
}

// SetOrderNumber sets the value of OrderNumber.
func (s *Order) SetOrderNumber(val uuid.UUID) {
	s.OrderNumber = val
}

// SetStatus sets the value of Status.
func (s *Order) SetStatus(val OrderStatus) {
	s.Status = val
}

// SetLineItems sets the value of LineItems.
func (s *Order) SetLineItems(val []LineItem) {
	s.LineItems = val
}

// SetSubtotal sets the value of Subtotal.
func (s *Order) SetSubtotal(val string) {
	s.Subtotal = val
}

// SetDeliveryFee sets the value of DeliveryFee.
func (s *Order) SetDeliveryFee(val string) {
	s.DeliveryFee = val
}

// SetGrandTotal sets the value of GrandTotal.
func (s *Order) SetGrandTotal(val string) {
	s.GrandTotal = val
}

// SetDeliveryDistance sets the value of DeliveryDistance.
func (s *Order) SetDeliveryDistance(val OptInt) {
	s.DeliveryDistance = val
}

// SetCurrency sets the value of Currency.
func (s *Order) SetCurrency(val OptString) {
	s.Currency = val
}

// SetPaymentIntentID sets the value of PaymentIntentID.
func (s *Order) SetPaymentIntentID(val OptString) {
	s.PaymentIntentID = val
}

// SetPaidAmount sets the value of PaidAmount.
func (s *Order) SetPaidAmount(val OptString) {
	s.PaidAmount = val
}

// SetShipping sets the value of Shipping.
func (s *Order) SetShipping(val Shipping) {
	s.Shipping = val
}

// SetCreatedAt sets the value of CreatedAt.
func (s *Order) SetCreatedAt(val time.Time) {
	s.CreatedAt = val
}

// SetPaidAt sets the value of PaidAt.
func (s *Order) SetPaidAt(val OptDateTime) {
	s.PaidAt = val
}

func (*Order) createOrderRes() {}
func (*Order) getOrderRes()    {}

// Ref: #/components/schemas/OrderPage
type OrderPage struct {
	Orders     []Order `json:"orders"`
	Page       int     `json:"page"`
	TotalPages int     `json:"total_pages"`
	Total      int     `json:"total"`
}

// GetOrders returns the value of Orders.
func (s *OrderPage) GetOrders() []Order {
	return s.Orders
}

// GetPage returns the value of Page.
func (s *OrderPage) GetPage() int {
	return s.Page
}

// GetTotalPages returns the value of TotalPages.
func (s *OrderPage) GetTotalPages() int {
	return s.TotalPages
}

// GetTotal returns the value of Total.
func (s *OrderPage) GetTotal() int {
	return s.Total
}

// SetOrders sets the value of Orders.
func (s *OrderPage) SetOrders(val []Order) {
	s.Orders = val
}

// SetPage sets the value of Page.
func (s *OrderPage) SetPage(val int) {
	s.Page = val
}

// SetTotalPages sets the value of TotalPages.
func (s *OrderPage) SetTotalPages(val int) {
	s.TotalPages = val
}

// SetTotal sets the value of Total.
func (s *OrderPage) SetTotal(val int) {
	s.Total = val
}

// Ref: #/components/schemas/OrderStatus
type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusPaid    OrderStatus = "paid"
	OrderStatusFailed  OrderStatus = "failed"
)

// AllValues returns all OrderStatus values.
func (OrderStatus) AllValues() []OrderStatus {
	return []OrderStatus{
		OrderStatusPending,
		OrderStatusPaid,
		OrderStatusFailed,
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s OrderStatus) MarshalText() ([]byte, error) {
	switch s {
	case OrderStatusPending:
		return []byte(s), nil
	case OrderStatusPaid:
		return []byte(s), nil
	case OrderStatusFailed:
		return []byte(s), nil
	default:
		return nil, errors.Errorf("invalid value: %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *OrderStatus) UnmarshalText(data []byte) error {
	switch OrderStatus(data) {
	case OrderStatusPending:
		*s = OrderStatusPending
		return nil
	case OrderStatusPaid:
		*s = OrderStatusPaid
		return nil
	case OrderStatusFailed:
		*s = OrderStatusFailed
		return nil
	default:
		return errors.Errorf("invalid value: %q", data)
	}
}

// Ref: #/components/schemas/PaymentSession
type PaymentSession struct {
	OrderNumber    uuid.UUID `json:"order_number"`
	ClientSecret   string    `json:"client_secret"`
	PublishableKey string    `json:"publishable_key"`
	Amount         int64     `json:"amount"`
	Currency       string    `json:"currency"`
	Subtotal       string    `json:"subtotal"`
	DeliveryFee    string    `json:"delivery_fee"`
	GrandTotal     string    `json:"grand_total"`
}

// GetOrderNumber returns the value of OrderNumber.
func (s *PaymentSession) GetOrderNumber() uuid.UUID {
	return s.OrderNumber
}

// GetClientSecret returns the value of ClientSecret.
func (s *PaymentSession) GetClientSecret() string {
	return s.ClientSecret
}

// GetPublishableKey returns the value of PublishableKey.
func (s *PaymentSession) GetPublishableKey() string {
	return s.PublishableKey
}

// GetAmount returns the value of Amount.
func (s *PaymentSession) GetAmount() int64 {
	return s.Amount
}

// GetCurrency returns the value of Currency.
func (s *PaymentSession) GetCurrency() string {
	return s.Currency
}

// GetSubtotal returns the value of Subtotal.
func (s *PaymentSession) GetSubtotal() string {
	return s.Subtotal
}

// GetDeliveryFee returns the value of DeliveryFee.
func (s *PaymentSession) GetDeliveryFee() string {
	return s.DeliveryFee
}

// GetGrandTotal returns the value of GrandTotal.
func (s *PaymentSession) GetGrandTotal() string {
	return s.GrandTotal
}

// SetOrderNumber sets the value of OrderNumber.
func (s *PaymentSession) SetOrderNumber(val uuid.UUID) {
	s.OrderNumber = val
}

// SetClientSecret sets the value of ClientSecret.
func (s *PaymentSession) SetClientSecret(val string) {
	s.ClientSecret = val
}

// SetPublishableKey sets the value of PublishableKey.
func (s *PaymentSession) SetPublishableKey(val string) {
	s.PublishableKey = val
}

// SetAmount sets the value of Amount.
func (s *PaymentSession) SetAmount(val int64) {
	s.Amount = val
}

// SetCurrency sets the value of Currency.
func (s *PaymentSession) SetCurrency(val string) {
	s.Currency = val
}

// SetSubtotal sets the value of Subtotal.
func (s *PaymentSession) SetSubtotal(val string) {
	s.Subtotal = val
}

// SetDeliveryFee sets the value of DeliveryFee.
func (s *PaymentSession) SetDeliveryFee(val string) {
	s.DeliveryFee = val
}

// SetGrandTotal sets the value of GrandTotal.
func (s *PaymentSession) SetGrandTotal(val string) {
	s.GrandTotal = val
}

func (*PaymentSession) beginPaymentRes() {}

// RecordShippingSeeOther is response for RecordShipping operation.
type RecordShippingSeeOther struct {
	Location string
}

// GetLocation returns the value of Location.
func (s *RecordShippingSeeOther) GetLocation() string {
	return s.Location
}

// SetLocation sets the value of Location.
func (s *RecordShippingSeeOther) SetLocation(val string) {
	s.Location = val
}

func (*RecordShippingSeeOther) recordShippingRes() {}

type SetDeliveryDistanceConflict Error

func (*SetDeliveryDistanceConflict) setDeliveryDistanceRes() {}

type SetDeliveryDistanceNotFound Error

func (*SetDeliveryDistanceNotFound) setDeliveryDistanceRes() {}

// Ref: #/components/schemas/Shipping
type Shipping struct {
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phone_number"`
	StreetAddress1 string `json:"street_address1"`
	StreetAddress2 string `json:"street_address2"`
	TownOrCity     string `json:"town_or_city"`
	County         string `json:"county"`
	Postcode       string `json:"postcode"`
	Country        string `json:"country"`
}

// GetFullName returns the value of FullName.
func (s *Shipping) GetFullName() string {
	return s.FullName
}

// GetEmail returns the value of Email.
func (s *Shipping) GetEmail() string {
	return s.Email
}

// GetPhoneNumber returns the value of PhoneNumber.
func (s *Shipping) GetPhoneNumber() string {
	return s.PhoneNumber
}

// GetStreetAddress1 returns the value of StreetAddress1.
func (s *Shipping) GetStreetAddress1() string {
	return s.StreetAddress1
}

// GetStreetAddress2 returns the value of StreetAddress2.
func (s *Shipping) GetStreetAddress2() string {
	return s.StreetAddress2
}

// GetTownOrCity returns the value of TownOrCity.
func (s *Shipping) GetTownOrCity() string {
	return s.TownOrCity
}

// GetCounty returns the value of County.
func (s *Shipping) GetCounty() string {
	return s.County
}

// GetPostcode returns the value of Postcode.
func (s *Shipping) GetPostcode() string {
	return s.Postcode
}

// GetCountry returns the value of Country.
func (s *Shipping) GetCountry() string {
	return s.Country
}

// SetFullName sets the value of FullName.
func (s *Shipping) SetFullName(val string) {
	s.FullName = val
}

// SetEmail sets the value of Email.
func (s *Shipping) SetEmail(val string) {
	s.Email = val
}

// SetPhoneNumber sets the value of PhoneNumber.
func (s *Shipping) SetPhoneNumber(val string) {
	s.PhoneNumber = val
}

// SetStreetAddress1 sets the value of StreetAddress1.
func (s *Shipping) SetStreetAddress1(val string) {
	s.StreetAddress1 = val
}

// SetStreetAddress2 sets the value of StreetAddress2.
func (s *Shipping) SetStreetAddress2(val string) {
	s.StreetAddress2 = val
}

// SetTownOrCity sets the value of TownOrCity.
func (s *Shipping) SetTownOrCity(val string) {
	s.TownOrCity = val
}

// SetCounty sets the value of County.
func (s *Shipping) SetCounty(val string) {
	s.County = val
}

// SetPostcode sets the value of Postcode.
func (s *Shipping) SetPostcode(val string) {
	s.Postcode = val
}

// SetCountry sets the value of Country.
func (s *Shipping) SetCountry(val string) {
	s.Country = val
}

// Ref: #/components/schemas/ShippingForm
type ShippingForm struct {
	FullName       OptString `json:"full_name"`
	Email          OptString `json:"email"`
	PhoneNumber    OptString `json:"phone_number"`
	StreetAddress1 OptString `json:"street_address1"`
	StreetAddress2 OptString `json:"street_address2"`
	TownOrCity     OptString `json:"town_or_city"`
	County         OptString `json:"county"`
	Postcode       OptString `json:"postcode"`
	Country        OptString `json:"country"`
	ClientSecret   OptString `json:"client_secret"`
}

// GetFullName returns the value of FullName.
func (s *ShippingForm) GetFullName() OptString {
	return s.FullName
}

// GetEmail returns the value of Email.
func (s *ShippingForm) GetEmail() OptString {
	return s.Email
}

// GetPhoneNumber returns the value of PhoneNumber.
func (s *ShippingForm) GetPhoneNumber() OptString {
	return s.PhoneNumber
}

// GetStreetAddress1 returns the value of StreetAddress1.
func (s *ShippingForm) GetStreetAddress1() OptString {
	return s.StreetAddress1
}

// GetStreetAddress2 returns the value of StreetAddress2.
func (s *ShippingForm) GetStreetAddress2() OptString {
	return s.StreetAddress2
}

// GetTownOrCity returns the value of TownOrCity.
func (s *ShippingForm) GetTownOrCity() OptString {
	return s.TownOrCity
}

// GetCounty returns the value of County.
func (s *ShippingForm) GetCounty() OptString {
	return s.County
}

// GetPostcode returns the value of Postcode.
func (s *ShippingForm) GetPostcode() OptString {
	return s.Postcode
}

// GetCountry returns the value of Country.
func (s *ShippingForm) GetCountry() OptString {
	return s.Country
}

// GetClientSecret returns the value of ClientSecret.
func (s *ShippingForm) GetClientSecret() OptString {
	return s.ClientSecret
}

// SetFullName sets the value of FullName.
func (s *ShippingForm) SetFullName(val OptString) {
	s.FullName = val
}

// SetEmail sets the value of Email.
func (s *ShippingForm) SetEmail(val OptString) {
	s.Email = val
}

// SetPhoneNumber sets the value of PhoneNumber.
func (s *ShippingForm) SetPhoneNumber(val OptString) {
	s.PhoneNumber = val
}

// SetStreetAddress1 sets the value of StreetAddress1.
func (s *ShippingForm) SetStreetAddress1(val OptString) {
	s.StreetAddress1 = val
}

// SetStreetAddress2 sets the value of StreetAddress2.
func (s *ShippingForm) SetStreetAddress2(val OptString) {
	s.StreetAddress2 = val
}

// SetTownOrCity sets the value of TownOrCity.
func (s *ShippingForm) SetTownOrCity(val OptString) {
	s.TownOrCity = val
}

// SetCounty sets the value of County.
func (s *ShippingForm) SetCounty(val OptString) {
	s.County = val
}

// SetPostcode sets the value of Postcode.
func (s *ShippingForm) SetPostcode(val OptString) {
	s.Postcode = val
}

// SetCountry sets the value of Country.
func (s *ShippingForm) SetCountry(val OptString) {
	s.Country = val
}

// SetClientSecret sets the value of ClientSecret.
func (s *ShippingForm) SetClientSecret(val OptString) {
	s.ClientSecret = val
}

type StripeWebhookBadRequest Error

func (*StripeWebhookBadRequest) stripeWebhookRes() {}

type StripeWebhookInternalServerError Error

func (*StripeWebhookInternalServerError) stripeWebhookRes() {}

// StripeWebhookOK is response for StripeWebhook operation.
type StripeWebhookOK struct{}

func (*StripeWebhookOK) stripeWebhookRes() {}

type StripeWebhookReq struct {
	Data io.Reader
}

// Read reads data from the Data reader.
//
// Kept to satisfy the io.Reader interface.
func (s StripeWebhookReq) Read(p []byte) (n int, err error) {
	if s.Data == nil {
		return 0, io.EOF
	}
	return s.Data.Read(p)
}

type StripeWebhookRequestEntityTooLarge Error

func (*StripeWebhookRequestEntityTooLarge) stripeWebhookRes() {}

// Ref: #/components/schemas/ValidationError
type ValidationError struct {
	Code    int32                 `json:"code"`
	Message string                `json:"message"`
	Errors  ValidationErrorErrors `json:"errors"`
}

// GetCode returns the value of Code.
func (s *ValidationError) GetCode() int32 {
	return s.Code
}

// GetMessage returns the value of Message.
func (s *ValidationError) GetMessage() string {
	return s.Message
}

// GetErrors returns the value of Errors.
func (s *ValidationError) GetErrors() ValidationErrorErrors {
	return s.Errors
}

// SetCode sets the value of Code.
func (s *ValidationError) SetCode(val int32) {
	s.Code = val
}

// SetMessage sets the value of Message.
func (s *ValidationError) SetMessage(val string) {
	s.Message = val
}

// SetErrors sets the value of Errors.
func (s *ValidationError) SetErrors(val ValidationErrorErrors) {
	s.Errors = val
}

func (*ValidationError) beginPaymentRes()        {}
func (*ValidationError) recordShippingRes()      {}
func (*ValidationError) setDeliveryDistanceRes() {}

type ValidationErrorErrors map[string]string

func (s *ValidationErrorErrors) init() ValidationErrorErrors {
	m := *s
	if m == nil {
		m = map[string]string{}
		*s = m
	}
	return m
}
