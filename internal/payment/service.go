package payment

import (
	"context"
	"errors"
	"time"

	"membertrack/internal/metrics"
)

var (
	ErrMemberNotFound = errors.New("member not found")
	ErrInvalidDate    = errors.New("invalid date")
)

type Service interface {
	GetPayments(ctx context.Context, memberID *int) ([]PaymentWithMember, error)
	RecordPayment(ctx context.Context, req RecordPaymentRequest) (*Payment, error)
}

type service struct {
	repo Repository

	// requireMember turns on the member existence check before insert.
	requireMember bool
}

func NewService(repo Repository, requireMember bool) Service {
	return &service{
		repo:          repo,
		requireMember: requireMember,
	}
}

func (s *service) GetPayments(ctx context.Context, memberID *int) ([]PaymentWithMember, error) {
	if memberID != nil {
		return s.repo.ListPaymentsByMember(ctx, *memberID)
	}
	return s.repo.ListPayments(ctx)
}

func (s *service) RecordPayment(ctx context.Context, req RecordPaymentRequest) (*Payment, error) {
	if s.requireMember {
		exists, err := s.repo.MemberExists(ctx, req.MemberID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrMemberNotFound
		}
	}

	paymentDate := time.Now()
	if req.PaymentDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.PaymentDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		paymentDate = parsed
	}

	nextDueDate := nextDueDateFor(paymentDate)
	if req.NextDueDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.NextDueDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		nextDueDate = parsed
	}

	paymentType := TypeMembership
	if req.PaymentType != "" {
		paymentType = PaymentType(req.PaymentType)
	}

	p := Payment{
		MemberID:    req.MemberID,
		Amount:      req.Amount,
		PaymentDate: paymentDate,
		PaymentType: paymentType,
		NextDueDate: nextDueDate,
		Notes:       nullable(req.Notes),
	}

	created, err := s.repo.CreatePayment(ctx, p)
	if err != nil {
		return nil, err
	}

	metrics.RecordPayment(string(created.PaymentType))
	return created, nil
}

// nextDueDateFor returns the due date one calendar year after the payment.
// A Feb 29 payment rolls to Mar 1 in non-leap years.
func nextDueDateFor(paymentDate time.Time) time.Time {
	return paymentDate.AddDate(1, 0, 0)
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
