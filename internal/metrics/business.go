package metrics

// RecordLogin counts a successful QR authentication
func (m *Metrics) RecordLogin(role string) {
	m.safeExecute("RecordLogin", func() {
		m.LoginsTotal.WithLabelValues(role).Inc()
	})
}

// IncrementCheckInCreated counts a check-in by method (QR or MANUAL)
func (m *Metrics) IncrementCheckInCreated(method string) {
	m.safeExecute("IncrementCheckInCreated", func() {
		m.CheckInCreatedTotal.WithLabelValues(method).Inc()
	})
}

func (m *Metrics) IncrementRecordCreated() {
	m.safeExecute("IncrementRecordCreated", func() {
		m.RecordCreatedTotal.Inc()
	})
}

// RecordResonanceToggle counts a toggle; on reports whether the resonance now exists
func (m *Metrics) RecordResonanceToggle(resonanceType string, on bool) {
	m.safeExecute("RecordResonanceToggle", func() {
		action := "removed"
		if on {
			action = "added"
		}
		m.ResonanceToggledTotal.WithLabelValues(resonanceType, action).Inc()
	})
}

// SetTotals updates the entity gauges refreshed by the collector
func (m *Metrics) SetTotals(activeBooths, participants, checkIns, records int64) {
	m.safeExecute("SetTotals", func() {
		m.BoothsActive.Set(float64(activeBooths))
		m.ParticipantsTotal.Set(float64(participants))
		m.CheckInsTotal.Set(float64(checkIns))
		m.LearningRecordsTotal.Set(float64(records))
	})
}
