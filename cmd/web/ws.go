package main

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/gceelixir/symposium/internal/httputil"
	"github.com/gceelixir/symposium/internal/notify"
	"github.com/gceelixir/symposium/internal/scanner"
	"github.com/gceelixir/symposium/internal/service"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// The API and the site share an origin in production.
		return true
	},
}

// serveVerifySocket streams a registrant's own record changes to the
// verify screen, so an admin's confirmation shows up without a refresh.
func serveVerifySocket(w http.ResponseWriter, r *http.Request, hub *notify.Hub) {
	email := r.URL.Query().Get("email")
	if email == "" {
		httputil.BadRequest(w, "Email is required", nil)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("Failed to upgrade verify socket", "error", err)
		return
	}
	defer conn.Close()

	sub := hub.SubscribeEmail(email)
	defer sub.Close()

	streamChanges(conn, sub, true)
}

// serveAdminSocket streams every registration change to the console table.
func serveAdminSocket(w http.ResponseWriter, r *http.Request, hub *notify.Hub) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("Failed to upgrade admin socket", "error", err)
		return
	}
	defer conn.Close()

	sub := hub.Subscribe()
	defer sub.Close()

	streamChanges(conn, sub, false)
}

type changeOutbound struct {
	notify.Change
	// Vibrate cues the registrant's device on the verify screen; the
	// admin table gets no haptics.
	Vibrate bool `json:"vibrate,omitempty"`
}

// streamChanges writes hub changes until either side goes away. A reader
// goroutine drains the connection so close frames are noticed.
func streamChanges(conn *websocket.Conn, sub *notify.Subscription, vibrate bool) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case change, ok := <-sub.C():
			if !ok {
				return
			}
			if err := conn.WriteJSON(changeOutbound{Change: change, Vibrate: vibrate}); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

type scannerInbound struct {
	Type  string `json:"type"`
	Frame string `json:"frame,omitempty"`
}

type scannerOutbound struct {
	Type   string          `json:"type"`
	Phase  scanner.Phase   `json:"phase,omitempty"`
	Result *scanner.Result `json:"result,omitempty"`
	Recent any             `json:"recent,omitempty"`
}

// serveScannerSocket runs one check-in scanning session per connection.
// The client decodes camera frames and sends the raw text; accepted scans
// come back with the participant and feedback cues. The session is
// released on every exit path.
func serveScannerSocket(w http.ResponseWriter, r *http.Request, regService *service.RegistrationService) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("Failed to upgrade scanner socket", "error", err)
		return
	}
	defer conn.Close()

	sess := scanner.NewSession(regService)
	defer sess.Close()

	slog.Info("Scanner session opened", "session_id", sess.ID)

	for {
		var in scannerInbound
		if err := conn.ReadJSON(&in); err != nil {
			slog.Info("Scanner session closed", "session_id", sess.ID)
			return
		}

		switch in.Type {
		case "start":
			if err := sess.Start(); err != nil {
				return
			}
			if err := conn.WriteJSON(scannerOutbound{Type: "phase", Phase: sess.Phase()}); err != nil {
				return
			}
		case "frame":
			res, err := sess.HandleFrame(r.Context(), in.Frame)
			if err != nil {
				slog.Error("Scan lookup failed", "session_id", sess.ID, "error", err)
				if err := conn.WriteJSON(scannerOutbound{Type: "error"}); err != nil {
					return
				}
				continue
			}
			if res == nil {
				// Not an entry payload, or still cooling down.
				continue
			}
			out := scannerOutbound{Type: "result", Result: res, Recent: sess.Recent()}
			if err := conn.WriteJSON(out); err != nil {
				return
			}
		}
	}
}
