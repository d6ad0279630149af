package domain

import "time"

// Channel is the closed set of notification delivery channels.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
	ChannelPush  Channel = "push"
	ChannelNone  Channel = "none"
)

// ValidChannels returns the set of valid notification channels.
func ValidChannels() []Channel {
	return []Channel{ChannelEmail, ChannelSMS, ChannelPush, ChannelNone}
}

// IsValidChannel checks whether the given string is a valid channel.
func IsValidChannel(c string) bool {
	switch Channel(c) {
	case ChannelEmail, ChannelSMS, ChannelPush, ChannelNone:
		return true
	}
	return false
}

// Preferences holds a user's notification channel per event category.
type Preferences struct {
	OrderUpdates    Channel `json:"order_updates"`
	Promotions      Channel `json:"promotions"`
	ShippingUpdates Channel `json:"shipping_updates"`
	Marketing       Channel `json:"marketing"`
}

// DefaultPreferences returns the channel defaults applied when a category is
// absent from the request.
func DefaultPreferences() Preferences {
	return Preferences{
		OrderUpdates:    ChannelEmail,
		Promotions:      ChannelEmail,
		ShippingUpdates: ChannelSMS,
		Marketing:       ChannelNone,
	}
}

// PreferencesAck is the response echoed back by the preference update
// endpoint. Nothing is persisted.
type PreferencesAck struct {
	UserID      int         `json:"user_id"`
	Preferences Preferences `json:"preferences"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
