package member

import "time"

type MembershipType string
type MemberStatus string

const (
	TypeStandard MembershipType = "standard"
	TypePremium  MembershipType = "premium"
	TypeVIP      MembershipType = "vip"

	StatusActive    MemberStatus = "active"
	StatusInactive  MemberStatus = "inactive"
	StatusSuspended MemberStatus = "suspended"
)

type Member struct {
	ID             int            `db:"id" json:"id"`
	Name           string         `db:"name" json:"name"`
	Email          *string        `db:"email" json:"email,omitempty"`
	Phone          *string        `db:"phone" json:"phone,omitempty"`
	Address        *string        `db:"address" json:"address,omitempty"`
	MembershipType MembershipType `db:"membership_type" json:"membership_type"`
	Status         MemberStatus   `db:"status" json:"status"`
	JoinDate       time.Time      `db:"join_date" json:"join_date"`
	Notes          *string        `db:"notes" json:"notes,omitempty"`
}

// MemberWithStats is a member row augmented with the aggregates derived from
// its payments. Both fields are computed at read time, never stored.
type MemberWithStats struct {
	Member
	LastDueDate  *time.Time `db:"last_due_date" json:"last_due_date,omitempty"`
	PaymentCount int        `db:"payment_count" json:"payment_count"`
}

type CreateMemberRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	MembershipType string `json:"membership_type" binding:"omitempty,oneof=standard premium vip"`
	Status         string `json:"status" binding:"omitempty,oneof=active inactive suspended"`
	Notes          string `json:"notes"`
}

type UpdateMemberRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	MembershipType string `json:"membership_type" binding:"omitempty,oneof=standard premium vip"`
	Status         string `json:"status" binding:"omitempty,oneof=active inactive suspended"`
	Notes          string `json:"notes"`
}
