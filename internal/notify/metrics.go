package notify

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var notificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "venuebook",
	Subsystem: "notify",
	Name:      "emails_total",
	Help:      "Booking notification emails by booking status and delivery result.",
}, []string{"status", "result"})
