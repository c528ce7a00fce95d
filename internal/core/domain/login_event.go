package domain

import "time"

const (
	loginDateLayout = "2006-01-02"
	loginTimeLayout = "15:04:05.000000"
)

// LoginEvent is an append-only audit record written on every successful login.
type LoginEvent struct {
	Username string
	At       time.Time
}

// NewLoginEvent stamps an event with the server's local wall clock.
func NewLoginEvent(username string, now time.Time) LoginEvent {
	return LoginEvent{Username: username, At: now.Local()}
}

// Date returns the calendar date part of the event.
func (e LoginEvent) Date() string {
	return e.At.Format(loginDateLayout)
}

// Time returns the time-of-day part of the event.
func (e LoginEvent) Time() string {
	return e.At.Format(loginTimeLayout)
}
