package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsBuilder struct {
	durationVec *prometheus.SummaryVec
	totalVec    *prometheus.CounterVec
}

func NewMetricsBuilder() *MetricsBuilder {
	return &MetricsBuilder{
		durationVec: promauto.NewSummaryVec(
			prometheus.SummaryOpts{
				Name: "s7_http_request_duration_seconds",
				Help: "HTTP request duration in seconds",
				Objectives: map[float64]float64{
					0.5:  0.05,
					0.9:  0.01,
					0.99: 0.001,
				},
			},
			[]string{"method", "path", "status_code"},
		),
		totalVec: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "s7_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
	}
}

func (m *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		path := ctx.FullPath()
		if path == "" {
			path = ctx.Request.URL.Path
		}
		labels := []string{ctx.Request.Method, path, strconv.Itoa(ctx.Writer.Status())}
		m.durationVec.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		m.totalVec.WithLabelValues(labels...).Inc()
	}
}
