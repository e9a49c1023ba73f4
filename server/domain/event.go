package domain

// Channel and event names shared by the server and every subscribed client.
const (
	ChannelName     = "mural-channel"
	EventNewMessage = "new-recadinho"
)

// Event is the envelope fanned out to live subscribers. Data carries the
// full created Message so clients never need a follow-up fetch.
type Event struct {
	Name string  `json:"event"`
	Data Message `json:"data"`
}

func NewMessageEvent(message Message) Event {
	return Event{
		Name: EventNewMessage,
		Data: message,
	}
}
