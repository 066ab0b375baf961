package dashboard

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// upcomingWindow is how far ahead a due date still counts as "upcoming".
const upcomingWindow = 30 * 24 * time.Hour

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	if err := r.db.GetContext(ctx, &stats.TotalMembers,
		`SELECT COUNT(*) FROM members`); err != nil {
		return nil, err
	}

	if err := r.db.GetContext(ctx, &stats.ActiveMembers,
		`SELECT COUNT(*) FROM members WHERE status = ?`, "active"); err != nil {
		return nil, err
	}

	if err := r.db.GetContext(ctx, &stats.InactiveMembers,
		`SELECT COUNT(*) FROM members WHERE status = ?`, "inactive"); err != nil {
		return nil, err
	}

	now := time.Now()
	windowEnd := now.Add(upcomingWindow)

	if err := r.db.GetContext(ctx, &stats.UpcomingPayments,
		`SELECT COUNT(*) FROM payments WHERE next_due_date >= ? AND next_due_date <= ?`,
		now, windowEnd); err != nil {
		return nil, err
	}

	if err := r.db.GetContext(ctx, &stats.OverduePayments,
		`SELECT COUNT(*) FROM payments WHERE next_due_date < ?`, now); err != nil {
		return nil, err
	}

	return stats, nil
}
