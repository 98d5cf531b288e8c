// Code generated by ogen, DO NOT EDIT.
package oas

type BeginPaymentRes interface {
	beginPaymentRes()
}

type CreateOrderRes interface {
	createOrderRes()
}

type GetOrderRes interface {
	getOrderRes()
}

type RecordShippingRes interface {
	recordShippingRes()
}

type SetDeliveryDistanceRes interface {
	setDeliveryDistanceRes()
}

type StripeWebhookRes interface {
	stripeWebhookRes()
}
