package service

import "edupiyasa_backend/pkg/monitoring"

func awardPoints(source string, points int) {
	monitoring.PointsAwarded.WithLabelValues(source).Add(float64(points))
}

func recordAttempt(kind string) {
	monitoring.AttemptCounter.WithLabelValues(kind).Inc()
}
