package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod is the buyer-selected way to pay. No gateway call is
// made at checkout; the payment row is a stub settled later.
type PaymentMethod string

const (
	PaymentMobileMoneyMTN    PaymentMethod = "mobile_money_mtn"
	PaymentMobileMoneyAirtel PaymentMethod = "mobile_money_airtel"
	PaymentMobileMoneyZamtel PaymentMethod = "mobile_money_zamtel"
	PaymentCard              PaymentMethod = "card"
	PaymentCashOnDelivery    PaymentMethod = "cash_on_delivery"
)

// Valid reports whether the method is one of the supported payment methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMobileMoneyMTN, PaymentMobileMoneyAirtel, PaymentMobileMoneyZamtel,
		PaymentCard, PaymentCashOnDelivery:
		return true
	}
	return false
}

// PaymentStatus is the settlement state of a payment.
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusCompleted  PaymentStatus = "completed"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusRefunded   PaymentStatus = "refunded"
)

// Payment is the single payment record attached to an order. Checkout
// creates it in pending status regardless of method.
type Payment struct {
	ID            uuid.UUID     `json:"id" db:"id"`
	OrderID       uuid.UUID     `json:"orderId" db:"order_id"`
	PaymentMethod PaymentMethod `json:"paymentMethod" db:"payment_method"`
	Status        PaymentStatus `json:"status" db:"status"`
	Amount        float64       `json:"amount" db:"amount"`
	Currency      string        `json:"currency" db:"currency"`
	CreatedAt     time.Time     `json:"createdAt" db:"created_at"`
}
