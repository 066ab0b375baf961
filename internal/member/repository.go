package member

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// memberWithStatsRow is the raw scan target for ListMembers. The MAX()
// aggregate has no declared column type, so SQLite hands it back as text
// rather than a timestamp.
type memberWithStatsRow struct {
	Member
	LastDueDate  sql.NullString `db:"last_due_date"`
	PaymentCount int            `db:"payment_count"`
}

var dueDateLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
	"2006-01-02",
}

func parseDueDate(raw string) (*time.Time, error) {
	for _, layout := range dueDateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return &parsed, nil
		}
	}
	return nil, fmt.Errorf("unrecognized due date %q", raw)
}

func (r *repository) ListMembers(ctx context.Context) ([]MemberWithStats, error) {
	query := `
		SELECT m.id, m.name, m.email, m.phone, m.address, m.membership_type, m.status, m.join_date, m.notes,
		       (SELECT MAX(next_due_date) FROM payments WHERE member_id = m.id) AS last_due_date,
		       (SELECT COUNT(*) FROM payments WHERE member_id = m.id) AS payment_count
		FROM members m
		ORDER BY m.name
	`

	rows := []memberWithStatsRow{}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	members := make([]MemberWithStats, 0, len(rows))
	for _, row := range rows {
		m := MemberWithStats{
			Member:       row.Member,
			PaymentCount: row.PaymentCount,
		}
		if row.LastDueDate.Valid {
			due, err := parseDueDate(row.LastDueDate.String)
			if err != nil {
				return nil, err
			}
			m.LastDueDate = due
		}
		members = append(members, m)
	}

	return members, nil
}

func (r *repository) CreateMember(ctx context.Context, m Member) (*Member, error) {
	query := `
		INSERT INTO members (name, email, phone, address, membership_type, status, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		m.Name, m.Email, m.Phone, m.Address, m.MembershipType, m.Status, m.Notes)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	// Re-read so the caller gets the stored defaults (join_date) as well.
	return r.GetMemberByID(ctx, int(id))
}

func (r *repository) GetMemberByID(ctx context.Context, id int) (*Member, error) {
	query := `
		SELECT id, name, email, phone, address, membership_type, status, join_date, notes
		FROM members
		WHERE id = ?
	`

	var m Member
	err := r.db.GetContext(ctx, &m, query, id)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *repository) UpdateMember(ctx context.Context, id int, m Member) (bool, error) {
	query := `
		UPDATE members
		SET name = ?, email = ?, phone = ?, address = ?,
		    membership_type = ?, status = ?, notes = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		m.Name, m.Email, m.Phone, m.Address, m.MembershipType, m.Status, m.Notes, id)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

func (r *repository) DeleteMember(ctx context.Context, id int) (bool, error) {
	// Payments reference members with ON DELETE CASCADE, so this removes the
	// member's payment history in the same statement.
	result, err := r.db.ExecContext(ctx, `DELETE FROM members WHERE id = ?`, id)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
