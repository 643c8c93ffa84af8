package metrics

import "time"

// UpdateAuthorsTotal sets the author count gauge.
// Updated after writes and on the periodic refresh.
func UpdateAuthorsTotal(count int64) {
	AuthorsTotal.Set(float64(count))
}

// UpdateMagazinesTotal sets the magazine count gauge.
func UpdateMagazinesTotal(count int64) {
	MagazinesTotal.Set(float64(count))
}

// UpdateArticlesTotal sets the article count gauge.
func UpdateArticlesTotal(count int64) {
	ArticlesTotal.Set(float64(count))
}

// RecordArticleCreated counts one article created through the API.
func RecordArticleCreated() {
	ArticlesCreatedTotal.Inc()
}

// RecordDBQuery records the duration of a database query.
// Operation names the query, e.g. "select_articles" or "insert_author".
func RecordDBQuery(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// UpdateDBConnectionStats updates the connection pool gauges.
func UpdateDBConnectionStats(active, idle int) {
	DBConnectionsActive.Set(float64(active))
	DBConnectionsIdle.Set(float64(idle))
}
