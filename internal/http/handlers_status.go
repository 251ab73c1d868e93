package http

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/GoodPie/aihl-media-app/internal/notifier"
)

// StatusHandler reports service health and version.
func (s *Server) StatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received status request")
		respondJSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"version": s.Cfg.Version,
		})
	}
}

// BroadcastPushHandler receives Pub/Sub push deliveries for the
// event-broadcast topic and forwards the decoded payload to the notifier.
func (s *Server) BroadcastPushHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		log.Debug("Received broadcast push message", "body", string(bodyBytes))

		// Pub/Sub push envelope; the payload rides base64-encoded in message.data.
		var pubsubMsg struct {
			Subscription string `json:"subscription"`
			Message      struct {
				Data string `json:"data"`
			} `json:"message"`
		}
		if err := json.Unmarshal(bodyBytes, &pubsubMsg); err != nil {
			log.Error("Failed to unmarshal wrapper JSON", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		rawData, err := base64.StdEncoding.DecodeString(pubsubMsg.Message.Data)
		if err != nil {
			log.Error("Failed to decode base64 data", "error", err)
			http.Error(w, "Invalid base64 data", http.StatusBadRequest)
			return
		}

		isDryRun := isDryRunFromContext(r)
		broadcast := notifier.Broadcast{}
		if err := s.pubsub.ProcessMessage(rawData, &broadcast); err != nil {
			http.Error(w, "Invalid message payload", http.StatusBadRequest)
			return
		}
		if err := s.Notifier.SendEventBroadcast(&broadcast, isDryRun); err != nil {
			log.Error("Failed to send event broadcast", "error", err, "eventID", broadcast.EventID)
			http.Error(w, "Failed to send broadcast", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}
