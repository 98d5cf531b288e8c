// Code generated by ogen, DO NOT EDIT.

package oas

// OperationName is the ogen operation name
type OperationName = string

const (
	BeginPaymentOperation        OperationName = "BeginPayment"
	CreateOrderOperation         OperationName = "CreateOrder"
	GetOrderOperation            OperationName = "GetOrder"
	ListOrdersOperation          OperationName = "ListOrders"
	RecordShippingOperation      OperationName = "RecordShipping"
	SetDeliveryDistanceOperation OperationName = "SetDeliveryDistance"
	StripeWebhookOperation       OperationName = "StripeWebhook"
)
