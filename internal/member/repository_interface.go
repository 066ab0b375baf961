package member

import "context"

type Repository interface {
	ListMembers(ctx context.Context) ([]MemberWithStats, error)
	CreateMember(ctx context.Context, m Member) (*Member, error)
	GetMemberByID(ctx context.Context, id int) (*Member, error)
	UpdateMember(ctx context.Context, id int, m Member) (bool, error)
	DeleteMember(ctx context.Context, id int) (bool, error)
}
