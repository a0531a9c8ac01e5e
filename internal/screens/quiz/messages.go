package quiz

// roundStartedMsg reports the outcome of starting the round.
type roundStartedMsg struct {
	Err error
}

// toastExpiredMsg clears the milestone toast with the matching id.
type toastExpiredMsg struct {
	ID int
}
