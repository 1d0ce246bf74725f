package jobs

import "github.com/prometheus/client_golang/prometheus"

var (
	jobRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "naplata_job_runs_total",
			Help: "Total background job runs",
		},
		[]string{"job"},
	)

	jobErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "naplata_job_errors_total",
			Help: "Total background job errors",
		},
		[]string{"job"},
	)

	jobDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "naplata_job_duration_seconds",
			Help:    "Background job duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"job"},
	)

	remindersSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "naplata_reminders_sent_total",
			Help: "Total reminder notifications sent",
		},
		[]string{"kind"},
	)

	remindersFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "naplata_reminders_failed_total",
			Help: "Total reminder notifications that failed to send",
		},
		[]string{"kind"},
	)
)

func init() {
	prometheus.MustRegister(jobRuns, jobErrors, jobDuration, remindersSent, remindersFailed)
}
