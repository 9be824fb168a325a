// Package metrics defines all custom Prometheus metrics for the publishing
// API. It is the single source of truth for metric names, labels, and help
// strings; metrics register with the default registry at package init via
// promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "publishing"

// UsersRegisteredTotal counts successful registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of user accounts created.",
	},
)

// PostsCreatedTotal counts successfully created posts.
var PostsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Total number of posts created.",
	},
)

// CommentsCreatedTotal counts successfully created comments.
var CommentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comments_created_total",
		Help:      "Total number of comments created.",
	},
)

// CascadeDeletedCommentsTotal counts comments removed by post-delete cascades.
var CascadeDeletedCommentsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cascade_deleted_comments_total",
		Help:      "Total number of comments removed because their parent post was deleted.",
	},
)

// CascadePartialFailuresTotal counts cascades that removed comments but then
// failed to remove the parent post. Non-zero values need operator attention.
var CascadePartialFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cascade_partial_failures_total",
		Help:      "Total number of post deletions that left the post in place after its comments were removed.",
	},
)

// PostCacheTotal counts single-post cache lookups by result.
// Label:
//   - result: "hit", "miss", or "error"
var PostCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "post_cache_total",
		Help:      "Total number of post cache lookups, labelled by result (hit/miss/error).",
	},
	[]string{"result"},
)

// ActivityQueueDepth tracks events waiting in each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", ...)
var ActivityQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of activity events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ChatRequestDuration measures latency of calls to the external answering
// service.
// Label:
//   - outcome: "ok" or "error"
var ChatRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "chat_request_duration_seconds",
		Help:      "Duration of requests to the external chat service.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"outcome"},
)
