package member

import (
	"context"
	"errors"

	"membertrack/internal/metrics"
)

var ErrMemberNotFound = errors.New("member not found")

type Service interface {
	GetMembers(ctx context.Context) ([]MemberWithStats, error)
	AddMember(ctx context.Context, req CreateMemberRequest) (*Member, error)
	UpdateMember(ctx context.Context, id int, req UpdateMemberRequest) error
	DeleteMember(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) GetMembers(ctx context.Context) ([]MemberWithStats, error) {
	return s.repo.ListMembers(ctx)
}

func (s *service) AddMember(ctx context.Context, req CreateMemberRequest) (*Member, error) {
	m := memberFromRequest(req.Name, req.Email, req.Phone, req.Address, req.MembershipType, req.Status, req.Notes)

	created, err := s.repo.CreateMember(ctx, m)
	if err != nil {
		return nil, err
	}

	metrics.RecordMemberCreated(string(created.MembershipType))
	return created, nil
}

func (s *service) UpdateMember(ctx context.Context, id int, req UpdateMemberRequest) error {
	m := memberFromRequest(req.Name, req.Email, req.Phone, req.Address, req.MembershipType, req.Status, req.Notes)

	affected, err := s.repo.UpdateMember(ctx, id, m)
	if err != nil {
		return err
	}
	if !affected {
		return ErrMemberNotFound
	}

	return nil
}

func (s *service) DeleteMember(ctx context.Context, id int) error {
	affected, err := s.repo.DeleteMember(ctx, id)
	if err != nil {
		return err
	}
	if !affected {
		return ErrMemberNotFound
	}

	metrics.RecordMemberDeleted()
	return nil
}

func memberFromRequest(name, email, phone, address, membershipType, status, notes string) Member {
	m := Member{
		Name:           name,
		Email:          nullable(email),
		Phone:          nullable(phone),
		Address:        nullable(address),
		MembershipType: TypeStandard,
		Status:         StatusActive,
		Notes:          nullable(notes),
	}

	if membershipType != "" {
		m.MembershipType = MembershipType(membershipType)
	}
	if status != "" {
		m.Status = MemberStatus(status)
	}

	return m
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
