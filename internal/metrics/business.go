package metrics

// IncrementBoardCreated increments board creation counter
func (m *Metrics) IncrementBoardCreated() {
	m.safeExecute("IncrementBoardCreated", func() {
		m.BoardCreatedTotal.Inc()
	})
}

// IncrementTaskCreated increments task creation counter
func (m *Metrics) IncrementTaskCreated() {
	m.safeExecute("IncrementTaskCreated", func() {
		m.TaskCreatedTotal.Inc()
	})
}

// IncrementChatMessage increments chat message counter
func (m *Metrics) IncrementChatMessage() {
	m.safeExecute("IncrementChatMessage", func() {
		m.ChatMessageSentTotal.Inc()
	})
}

// IncrementSaveConflict increments optimistic save conflict counter
func (m *Metrics) IncrementSaveConflict() {
	m.safeExecute("IncrementSaveConflict", func() {
		m.SaveConflictsTotal.Inc()
	})
}

// IncrementWSConnections increments the active websocket connection gauge
func (m *Metrics) IncrementWSConnections() {
	m.safeExecute("IncrementWSConnections", func() {
		m.WSConnectionsActive.Inc()
	})
}

// DecrementWSConnections decrements the active websocket connection gauge
func (m *Metrics) DecrementWSConnections() {
	m.safeExecute("DecrementWSConnections", func() {
		m.WSConnectionsActive.Dec()
	})
}

// SetBoardsTotal sets total boards gauge
func (m *Metrics) SetBoardsTotal(count int64) {
	m.safeExecute("SetBoardsTotal", func() {
		m.BoardsTotal.Set(float64(count))
	})
}

// SetChatMessagesTotal sets total stored chat messages gauge
func (m *Metrics) SetChatMessagesTotal(count int64) {
	m.safeExecute("SetChatMessagesTotal", func() {
		m.ChatMessagesTotal.Set(float64(count))
	})
}
