package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"nhooyr.io/websocket"
)

const websocketWriteTimeout = 5 * time.Second

// createWebsocketHandler sends the current list, then one Event per change
func createWebsocketHandler(sim *Simulator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			log.Err(err).Msg("Websocket upgrade failed")
			return
		}
		defer c.Close(websocket.StatusInternalError, "unexpected close")

		// Subscribe before the snapshot so no change slips between them
		unsub, ch := sim.Subscribe()
		defer unsub()

		ctx := c.CloseRead(r.Context())

		if err := writeEvent(ctx, c, Event{Action: ActionSnapshot, State: sim.Snapshot()}); err != nil {
			log.Err(err).Msg("Failed to send websocket snapshot")
			return
		}

		for {
			select {
			case <-ctx.Done():
				c.Close(websocket.StatusNormalClosure, "")
				return
			case ev, ok := <-ch:
				if !ok {
					c.Close(websocket.StatusGoingAway, "feed closed")
					return
				}
				if err := writeEvent(ctx, c, ev); err != nil {
					if !errors.Is(err, context.Canceled) {
						log.Err(err).Msg("Failed to write websocket event")
					}
					return
				}
			}
		}
	}
}

func writeEvent(ctx context.Context, c *websocket.Conn, ev Event) error {
	js, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return writeTimeout(ctx, websocketWriteTimeout, c, js)
}

func writeTimeout(ctx context.Context, timeout time.Duration, c *websocket.Conn, msg []byte) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return c.Write(ctx, websocket.MessageText, msg)
}
