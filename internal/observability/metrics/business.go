package metrics

// RecordCreated records a created entity.
func RecordCreated(kind string) {
	EntitiesCreatedTotal.WithLabelValues(kind).Inc()
}

// RecordCascadeDeleted records n entities of kind removed by a delete operation.
func RecordCascadeDeleted(kind string, n int) {
	if n <= 0 {
		return
	}
	CascadeDeletedTotal.WithLabelValues(kind).Add(float64(n))
}

// RecordCascadeFailure records a delete operation aborted at stage.
func RecordCascadeFailure(stage string) {
	CascadeFailuresTotal.WithLabelValues(stage).Inc()
}

// RecordMembershipRejection records a child reached through the wrong parent.
func RecordMembershipRejection(kind string) {
	MembershipRejectionsTotal.WithLabelValues(kind).Inc()
}

// UpdateEntityTotals sets the stored entity gauges.
func UpdateEntityTotals(questions, answers, comments int64) {
	EntitiesTotal.WithLabelValues(KindQuestion).Set(float64(questions))
	EntitiesTotal.WithLabelValues(KindAnswer).Set(float64(answers))
	EntitiesTotal.WithLabelValues(KindComment).Set(float64(comments))
}

// UpdateDBConnectionStats sets the database pool gauges.
func UpdateDBConnectionStats(inUse, idle int) {
	DBConnectionsInUse.Set(float64(inUse))
	DBConnectionsIdle.Set(float64(idle))
}
