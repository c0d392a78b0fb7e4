package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RecommendationsTotal tracks recommendation requests by kind
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Total number of recommendation requests served",
		},
		[]string{"kind"},
	)

	// NotificationsSentTotal tracks fired notifications by kind
	NotificationsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_sent_total",
			Help: "Total number of notifications fired",
		},
		[]string{"kind"},
	)

	// NotificationsSkippedTotal tracks skipped notification attempts
	NotificationsSkippedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_skipped_total",
			Help: "Notification attempts skipped (already sent, disabled, or permission denied)",
		},
		[]string{"kind", "reason"},
	)

	// WeatherFetchesTotal tracks weather lookups by source
	WeatherFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_fetches_total",
			Help: "Weather lookups by source (cache, provider, fallback)",
		},
		[]string{"source"},
	)

	// ActivityBroadcastsTotal tracks activity record broadcasts
	ActivityBroadcastsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "activity_broadcasts_total",
			Help: "Total number of activity record broadcasts to subscribers",
		},
	)

	// ActivityRolloversTotal tracks day rollovers of the activity record
	ActivityRolloversTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "activity_rollovers_total",
			Help: "Total number of daily activity record rollovers",
		},
	)

	// DBQueriesTotal tracks the total number of database queries
	DBQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_queries_total",
			Help: "Total number of database queries executed",
		},
		[]string{"query_type", "table", "status"},
	)

	// DBQueryDuration tracks the duration of database queries
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Duration of database queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"query_type", "table"},
	)

	// AppInfo provides static information about the application
	AppInfo = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "vitality_app_info",
			Help: "Application information (always 1)",
		},
	)

	// AppStartTime records when the application started
	AppStartTime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "vitality_app_start_time_seconds",
			Help: "Unix timestamp of when the application started",
		},
	)
)

func init() {
	// Set app info to 1 (always visible)
	AppInfo.Set(1)
	// Record app start time
	AppStartTime.SetToCurrentTime()
}

// RecordRecommendation records one served recommendation
func RecordRecommendation(kind string) {
	RecommendationsTotal.WithLabelValues(kind).Inc()
}

// RecordNotificationSent records one fired notification
func RecordNotificationSent(kind string) {
	NotificationsSentTotal.WithLabelValues(kind).Inc()
}

// RecordNotificationSkipped records a skipped notification attempt
func RecordNotificationSkipped(kind, reason string) {
	NotificationsSkippedTotal.WithLabelValues(kind, reason).Inc()
}

// RecordWeatherFetch records a weather lookup by source
func RecordWeatherFetch(source string) {
	WeatherFetchesTotal.WithLabelValues(source).Inc()
}

// RecordDBQuery records a database query execution
func RecordDBQuery(queryType, table string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	DBQueriesTotal.WithLabelValues(queryType, table, status).Inc()
	DBQueryDuration.WithLabelValues(queryType, table).Observe(duration.Seconds())
}
