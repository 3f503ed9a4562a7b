// Package metrics defines the custom Prometheus metrics exposed by the
// shortener. It is the single source of truth for metric names, labels, and
// help strings; everything registers with the default registry at import time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "linkshrink"

// LinksCreatedTotal counts successfully created short links.
var LinksCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "links_created_total",
		Help:      "Total number of short links created.",
	},
)

// LinksDeletedTotal counts links deleted by their owners.
var LinksDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "links_deleted_total",
		Help:      "Total number of short links deleted.",
	},
)

// RedirectsTotal counts public redirect lookups.
// Label:
//   - result: "hit" (redirected) or "miss" (unknown short code)
var RedirectsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "redirects_total",
		Help:      "Total number of redirect lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)
