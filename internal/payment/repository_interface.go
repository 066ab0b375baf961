package payment

import "context"

type Repository interface {
	ListPayments(ctx context.Context) ([]PaymentWithMember, error)
	ListPaymentsByMember(ctx context.Context, memberID int) ([]PaymentWithMember, error)
	CreatePayment(ctx context.Context, p Payment) (*Payment, error)
	MemberExists(ctx context.Context, memberID int) (bool, error)
}
