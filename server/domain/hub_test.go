package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_Hub_Fanout_To_All_Sessions(t *testing.T) {
	req := require.New(t)
	hub := NewHub()
	defer hub.Close()

	first := hub.Subscribe("session-1")
	second := hub.Subscribe("session-2")
	req.Equal(2, hub.SessionCount())

	message := NewMessage("01ARZ3NDEKTSV4RRFFQ69G5FAV", "Ana", "Oi!", time.Now().UTC())
	req.NoError(hub.Publish(NewMessageEvent(message)))

	for _, events := range []<-chan Event{first, second} {
		select {
		case event := <-events:
			req.Equal(EventNewMessage, event.Name)
			req.Equal(message, event.Data)
		case <-time.After(time.Second):
			t.Fatal("expected event was not delivered")
		}
	}
}

func Test_Hub_Drops_Events_For_Slow_Session(t *testing.T) {
	req := require.New(t)
	hub := NewHub()
	defer hub.Close()

	hub.Subscribe("slow")
	message := NewMessage("01ARZ3NDEKTSV4RRFFQ69G5FAV", "Ana", "Oi!", time.Now().UTC())

	// Fill the session buffer, then one more.
	var err error
	for i := 0; i <= sessionBufferSize; i++ {
		err = hub.Publish(NewMessageEvent(message))
	}
	req.ErrorIs(err, ErrBroadcastFull)

	stats := hub.Stats()
	req.Equal(sessionBufferSize+1, stats.TotalEvents)
	req.Equal(1, stats.DroppedEvents)
}

func Test_Hub_Unsubscribe_Closes_Channel(t *testing.T) {
	req := require.New(t)
	hub := NewHub()

	events := hub.Subscribe("session-1")
	hub.Unsubscribe("session-1")
	req.Equal(0, hub.SessionCount())

	_, open := <-events
	req.False(open)

	// Unsubscribing twice is a no-op.
	hub.Unsubscribe("session-1")

	// Publishing to an empty hub succeeds.
	message := NewMessage("01ARZ3NDEKTSV4RRFFQ69G5FAV", "Ana", "Oi!", time.Now().UTC())
	req.NoError(hub.Publish(NewMessageEvent(message)))
}
