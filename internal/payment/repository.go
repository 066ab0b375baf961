package payment

import (
	"context"

	"membertrack/internal/db"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &repository{db: database}
}

func (r *repository) ListPayments(ctx context.Context) ([]PaymentWithMember, error) {
	query := `
		SELECT p.id, p.member_id, p.amount, p.payment_date, p.payment_type, p.next_due_date, p.notes,
		       m.name AS member_name
		FROM payments p
		JOIN members m ON p.member_id = m.id
		ORDER BY p.payment_date DESC
	`

	payments := []PaymentWithMember{}
	err := r.db.SelectContext(ctx, &payments, query)
	if err != nil {
		return nil, err
	}

	return payments, nil
}

func (r *repository) ListPaymentsByMember(ctx context.Context, memberID int) ([]PaymentWithMember, error) {
	query := `
		SELECT p.id, p.member_id, p.amount, p.payment_date, p.payment_type, p.next_due_date, p.notes,
		       m.name AS member_name
		FROM payments p
		JOIN members m ON p.member_id = m.id
		WHERE p.member_id = ?
	`

	payments := []PaymentWithMember{}
	err := r.db.SelectContext(ctx, &payments, query, memberID)
	if err != nil {
		return nil, err
	}

	return payments, nil
}

func (r *repository) CreatePayment(ctx context.Context, p Payment) (*Payment, error) {
	query := `
		INSERT INTO payments (member_id, amount, payment_date, payment_type, next_due_date, notes)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		p.MemberID, p.Amount, p.PaymentDate, p.PaymentType, p.NextDueDate, p.Notes)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return r.getPaymentByID(ctx, int(id))
}

func (r *repository) getPaymentByID(ctx context.Context, id int) (*Payment, error) {
	query := `
		SELECT id, member_id, amount, payment_date, payment_type, next_due_date, notes
		FROM payments
		WHERE id = ?
	`

	var p Payment
	err := r.db.GetContext(ctx, &p, query, id)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) MemberExists(ctx context.Context, memberID int) (bool, error) {
	return db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM members WHERE id = ?)`, memberID)
}
