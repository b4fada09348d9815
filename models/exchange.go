package models

// ExchangeTurn is one side of a prompt/response pair
type ExchangeTurn struct {
	ID   string `json:"id"`
	From string `json:"from"`
	Text string `json:"text"`
	TS   int64  `json:"ts"`
}

// Exchange pairs a user turn with the assistant turn it produced. The
// assistant timestamp is always strictly greater than the user timestamp so
// ordering stays stable when the clock collides at millisecond resolution.
type Exchange struct {
	User      ExchangeTurn `json:"user"`
	Assistant ExchangeTurn `json:"assistant"`
}
