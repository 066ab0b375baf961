package payment

import "time"

type PaymentType string

const (
	TypeMembership PaymentType = "membership"
	TypeRenewal    PaymentType = "renewal"
	TypeLateFee    PaymentType = "late_fee"
	TypeOther      PaymentType = "other"
)

type Payment struct {
	ID          int         `db:"id" json:"id"`
	MemberID    int         `db:"member_id" json:"member_id"`
	Amount      float64     `db:"amount" json:"amount"`
	PaymentDate time.Time   `db:"payment_date" json:"payment_date"`
	PaymentType PaymentType `db:"payment_type" json:"payment_type"`
	NextDueDate time.Time   `db:"next_due_date" json:"next_due_date"`
	Notes       *string     `db:"notes" json:"notes,omitempty"`
}

type PaymentWithMember struct {
	Payment
	MemberName string `db:"member_name" json:"member_name"`
}

type RecordPaymentRequest struct {
	MemberID    int     `json:"member_id" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	PaymentDate string  `json:"payment_date"`
	PaymentType string  `json:"payment_type" binding:"omitempty,oneof=membership renewal late_fee other"`
	NextDueDate string  `json:"next_due_date"`
	Notes       string  `json:"notes"`
}
