package models

import "time"

type PaymentMethod string

const (
	PaymentCreditCard   PaymentMethod = "Credit Card"
	PaymentCash         PaymentMethod = "Cash"
	PaymentBankTransfer PaymentMethod = "Bank Transfer"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCreditCard, PaymentCash, PaymentBankTransfer:
		return true
	}
	return false
}

// Payment is created once per booking at reservation time and is immutable
// afterwards.
type Payment struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	BookingID   uint          `gorm:"index;column:booking_id" json:"booking_id"`
	Amount      float64       `json:"amount"`
	PaymentDate time.Time     `gorm:"column:payment_date" json:"payment_date"`
	Method      PaymentMethod `gorm:"size:50" json:"method"`
}
