package model

// CheckoutRequest is the payload for placing an order. AttemptID is a
// client-generated id unique per checkout attempt; replays within the
// idempotency window are rejected rather than producing duplicate
// orders.
type CheckoutRequest struct {
	AttemptID       string          `json:"attemptId"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
}

// CheckoutResponse reports the orders produced by one checkout, one
// per distinct seller in the cart.
type CheckoutResponse struct {
	Orders []Order `json:"orders"`
}
