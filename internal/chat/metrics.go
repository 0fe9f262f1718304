// internal/chat/metrics.go

package chat

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	messagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_messages_total",
			Help: "Total number of chat messages by direction",
		},
		[]string{"direction"},
	)

	windowsOpenedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_response_windows_opened_total",
			Help: "Total number of response windows opened",
		},
	)

	windowsExpiredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_response_windows_expired_total",
			Help: "Total number of response windows that expired unrated",
		},
	)
)

func recordMessage(direction string) {
	messagesTotal.WithLabelValues(direction).Inc()
}

func recordWindowOpened() {
	windowsOpenedTotal.Inc()
}

func recordWindowExpired() {
	windowsExpiredTotal.Inc()
}
