package dashboard

import "context"

type Repository interface {
	GetStats(ctx context.Context) (*Stats, error)
}
