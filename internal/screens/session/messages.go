package session

// timerTickMsg takes one second off the clock of the session with epoch.
type timerTickMsg struct {
	epoch uint64
}

// replenishMsg asks for a background top-up of the question queue.
type replenishMsg struct {
	epoch uint64
}

// feedbackDoneMsg ends the feedback display for the answer numbered
// answered in the session with epoch.
type feedbackDoneMsg struct {
	epoch    uint64
	answered int
}
