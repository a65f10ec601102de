package models

import "github.com/taskfleet/taskfleet/ent"

// DashboardStats aggregates service-wide counters for the dashboard
// endpoint, plus the tail of the audit log
type DashboardStats struct {
	Projects struct {
		Total    int            `json:"total"`
		ByStatus map[string]int `json:"by_status"`
	} `json:"projects"`
	Tasks struct {
		Total    int            `json:"total"`
		ByStatus map[string]int `json:"by_status"`
	} `json:"tasks"`
	Agents struct {
		Total    int            `json:"total"`
		ByStatus map[string]int `json:"by_status"`
	} `json:"agents"`
	RecentActivity []*ent.TaskLog `json:"recent_activity"`
}
