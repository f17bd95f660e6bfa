// Package metrics defines and registers all custom Prometheus metrics for
// the accounts API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time; the
// echoprometheus handler on /metrics exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "accounts"

// VerificationEmailsSentTotal counts verification emails handed to the SMTP
// collaborator successfully.
var VerificationEmailsSentTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "verification_emails_sent_total",
		Help:      "Total number of verification emails dispatched.",
	},
)

// VerificationsConfirmedTotal counts successful email confirmations.
var VerificationsConfirmedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "verifications_confirmed_total",
		Help:      "Total number of email addresses verified.",
	},
)

// VerificationsRejectedTotal counts rejected verification links. The reason
// label is deliberately coarse; per-cause detail never reaches the client.
// Label:
//   - reason: "invalid_link" or "already_verified"
var VerificationsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "verifications_rejected_total",
		Help:      "Total number of rejected verification attempts, by reason.",
	},
	[]string{"reason"},
)

// ProfileUpdatesTotal counts profile update outcomes.
// Label:
//   - result: "ok" or "rejected"
var ProfileUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profile_updates_total",
		Help:      "Total number of profile update transactions, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered.",
	},
)
