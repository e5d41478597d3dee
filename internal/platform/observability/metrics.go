package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Command status label values.
const (
	StatusOK    = "ok"
	StatusEmpty = "empty"
	StatusError = "error"
)

var (
	CommandsHandled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_bot_commands_total",
		Help: "The total number of bot commands handled",
	}, []string{"command", "status"})

	CommandDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "catalog_bot_command_duration_seconds",
		Help:    "Time spent answering a bot command, including delivery",
		Buckets: prometheus.DefBuckets,
	}, []string{"command"})

	MessagesSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_bot_messages_sent_total",
		Help: "The total number of message parts sent to Telegram",
	}, []string{"status"})

	CatalogEntries = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_entries",
		Help: "Number of entries in the active catalog snapshot",
	})

	CatalogSkippedLines = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_skipped_lines",
		Help: "Malformed lines skipped while loading the active catalog snapshot",
	})

	CatalogReloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_reloads_total",
		Help: "The total number of catalog reload attempts",
	}, []string{"status"})
)
