package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EntriesTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "travelgallery_entries",
		Help: "Number of entries currently in the gallery.",
	})

	EntriesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "travelgallery_entries_created_total",
		Help: "Entries created through the new entry form.",
	})

	EntriesDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "travelgallery_entries_deleted_total",
		Help: "Entries deleted from the admin panel.",
	})

	LikeTogglesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "travelgallery_like_toggles_total",
		Help: "Like toggles by resulting state.",
	}, []string{"state"})

	SearchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "travelgallery_searches_total",
		Help: "Feed requests carrying a non-empty search query.",
	})

	AdminLoginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "travelgallery_admin_logins_total",
		Help: "Admin login attempts by result.",
	}, []string{"result"})

	MediaPendingReleasedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "travelgallery_media_pending_released_total",
		Help: "Pending media uploads released before an entry claimed them.",
	})
)
