package scoreboard

import "time"

// Update is one line of the live score ticker.
type Update struct {
	ID        string
	Message   string
	CreatedAt time.Time
}
