// Package dto defines the JSON bodies of the statistics endpoints.
package dto

import "ecourts_backend/internal/feature/admin/usecase"

// DashboardStats holds the case counts shown to every user.
type DashboardStats struct {
	TotalCases    int64 `json:"total_cases"`
	TodayCases    int64 `json:"today_cases"`
	TomorrowCases int64 `json:"tomorrow_cases"`
	UpcomingCases int64 `json:"upcoming_cases"`
}

// DashboardEnvelope is the GET /api/dashboard response.
type DashboardEnvelope struct {
	Success bool           `json:"success"`
	Stats   DashboardStats `json:"stats"`
}

// UserStats counts users by role.
type UserStats struct {
	Total   int64 `json:"total"`
	Admins  int64 `json:"admins"`
	Regular int64 `json:"regular"`
}

// CaseStats counts stored cases by hearing date.
type CaseStats struct {
	Total    int64 `json:"total"`
	Today    int64 `json:"today"`
	Tomorrow int64 `json:"tomorrow"`
	Upcoming int64 `json:"upcoming"`
}

// SystemStats describes the database.
type SystemStats struct {
	DatabaseSize int64  `json:"database_size"`
	LastUpdated  string `json:"last_updated"`
}

// AdminStats groups the admin statistics.
type AdminStats struct {
	Users  UserStats   `json:"users"`
	Cases  CaseStats   `json:"cases"`
	System SystemStats `json:"system"`
}

// AdminStatsEnvelope is the GET /api/admin/stats response.
type AdminStatsEnvelope struct {
	Success bool       `json:"success"`
	Stats   AdminStats `json:"stats"`
}

// NewDashboardEnvelope converts case counts to the dashboard response.
func NewDashboardEnvelope(s usecase.CaseStats) DashboardEnvelope {
	return DashboardEnvelope{
		Success: true,
		Stats: DashboardStats{
			TotalCases:    s.Total,
			TodayCases:    s.Today,
			TomorrowCases: s.Tomorrow,
			UpcomingCases: s.Upcoming,
		},
	}
}

// NewAdminStatsEnvelope converts s to the admin stats response.
func NewAdminStatsEnvelope(s *usecase.Stats) AdminStatsEnvelope {
	return AdminStatsEnvelope{
		Success: true,
		Stats: AdminStats{
			Users: UserStats{Total: s.Users.Total, Admins: s.Users.Admins, Regular: s.Users.Regular},
			Cases: CaseStats{Total: s.Cases.Total, Today: s.Cases.Today, Tomorrow: s.Cases.Tomorrow, Upcoming: s.Cases.Upcoming},
			System: SystemStats{
				DatabaseSize: s.DatabaseSize,
				LastUpdated:  s.LastUpdated.Format("2006-01-02 15:04:05"),
			},
		},
	}
}
