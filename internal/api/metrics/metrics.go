// Package metrics defines the custom Prometheus metrics of the storefront API.
// Metrics are registered with the default registry on package init (promauto);
// HTTP request metrics come from the echoprometheus middleware in the router.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/radheonline/storefront/internal/core/domain"
	"github.com/radheonline/storefront/internal/core/session"
)

const namespace = "storefront"

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionLoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "superseded" or "error"
var SessionLoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_logins_total",
		Help:      "Total number of admin login attempts, by result.",
	},
	[]string{"result"},
)

// SessionHydrationsTotal counts session restores from storage.
// Label:
//   - outcome: "restored", "absent" or "corrupt"
var SessionHydrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_hydrations_total",
		Help:      "Total number of session hydrations, by outcome.",
	},
	[]string{"outcome"},
)

// SessionLogoutsTotal counts logouts.
var SessionLogoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_logouts_total",
		Help:      "Total number of admin logouts.",
	},
)

// ── Content metrics ───────────────────────────────────────────────────────────

// EnquiriesSubmittedTotal counts enquiries stored from the public contact form.
// Label:
//   - service: the requested storefront service
var EnquiriesSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "enquiries_submitted_total",
		Help:      "Total number of enquiries submitted, by service.",
	},
	[]string{"service"},
)

// EnquiriesDedupTotal counts duplicate-submission checks.
// Label:
//   - result: "hit" (duplicate, not stored) or "miss"
var EnquiriesDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "enquiries_dedup_total",
		Help:      "Total number of enquiry deduplication checks, by result.",
	},
	[]string{"result"},
)

// UpdatesSavedTotal counts post writes from the admin area.
// Label:
//   - op: "create", "edit", "publish", "slider" or "delete"
var UpdatesSavedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "updates_saved_total",
		Help:      "Total number of post writes, by operation.",
	},
	[]string{"op"},
)

// SessionObserver feeds session lifecycle events into the session metrics.
type SessionObserver struct{}

func (SessionObserver) Hydrated(outcome session.HydrateOutcome) {
	SessionHydrationsTotal.WithLabelValues(string(outcome)).Inc()
}

func (SessionObserver) LoginFinished(err error) {
	SessionLoginsTotal.WithLabelValues(LoginResult(err)).Inc()
}

func (SessionObserver) LoggedOut() {
	SessionLogoutsTotal.Inc()
}

// LoginResult maps a login error to its metric label.
func LoginResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, session.ErrMissingCredentials):
		return "invalid_credentials"
	case errors.Is(err, session.ErrLoginSuperseded):
		return "superseded"
	default:
		return "error"
	}
}
