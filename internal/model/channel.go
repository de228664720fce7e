package model

// Channel identifies a delivery transport.
type Channel string

const (
	ChannelSystem  Channel = "system"  // in-app inbox
	ChannelEmail   Channel = "email"   // SMTP
	ChannelSMS     Channel = "sms"     // gateway, urgent-only
	ChannelWecom   Channel = "wecom"   // enterprise chat
	ChannelWebhook Channel = "webhook" // generic JSON POST
)

// AllChannels lists every known channel in a stable order.
func AllChannels() []Channel {
	return []Channel{ChannelSystem, ChannelEmail, ChannelSMS, ChannelWecom, ChannelWebhook}
}

// Valid reports whether c names a known channel.
func (c Channel) Valid() bool {
	switch c {
	case ChannelSystem, ChannelEmail, ChannelSMS, ChannelWecom, ChannelWebhook:
		return true
	}
	return false
}

func (c Channel) String() string {
	return string(c)
}
