package dashboard

// Stats holds the aggregate counts shown on the dashboard. Each count is a
// point-in-time snapshot from its own query; they are not taken in a single
// transaction.
type Stats struct {
	TotalMembers     int `json:"totalMembers"`
	ActiveMembers    int `json:"activeMembers"`
	InactiveMembers  int `json:"inactiveMembers"`
	UpcomingPayments int `json:"upcomingPayments"`
	OverduePayments  int `json:"overduePayments"`
}
