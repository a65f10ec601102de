// Package metrics defines the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TasksClaimed counts successful atomic claims
	TasksClaimed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "taskfleet_tasks_claimed_total",
		Help: "Successful task claims.",
	})

	// ClaimConflicts counts claims that found no eligible row
	ClaimConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "taskfleet_claim_conflicts_total",
		Help: "Claims rejected because the task was unavailable or the agent was at cap.",
	})

	// TasksReclaimed counts stuck tasks returned to the pool by the sweep
	TasksReclaimed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "taskfleet_tasks_reclaimed_total",
		Help: "Running tasks reclaimed after exceeding their effective timeout.",
	})

	// TasksTimedOut counts stuck tasks failed terminally by the sweep
	TasksTimedOut = promauto.NewCounter(prometheus.CounterOpts{
		Name: "taskfleet_tasks_timed_out_total",
		Help: "Running tasks failed terminally after exhausting their retry budget.",
	})

	// AgentsMarkedOffline counts heartbeat-sweep offline transitions
	AgentsMarkedOffline = promauto.NewCounter(prometheus.CounterOpts{
		Name: "taskfleet_agents_marked_offline_total",
		Help: "Agents transitioned to offline by the heartbeat sweep.",
	})

	// IdempotentReplays counts mutations answered from a recorded response
	IdempotentReplays = promauto.NewCounter(prometheus.CounterOpts{
		Name: "taskfleet_idempotent_replays_total",
		Help: "Mutations answered from a recorded idempotency response.",
	})

	// RateLimited counts requests rejected by the fixed-window limiter
	RateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "taskfleet_rate_limited_total",
		Help: "Requests rejected by the rate limiter.",
	})

	// HTTPRequests counts requests by method, route, and status class
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "taskfleet_http_requests_total",
		Help: "HTTP requests served.",
	}, []string{"method", "path", "status"})

	// RowsPurged counts rows hard-deleted by the retention sweep
	RowsPurged = promauto.NewCounter(prometheus.CounterOpts{
		Name: "taskfleet_rows_purged_total",
		Help: "Rows hard-deleted by the retention sweep.",
	})
)
