package handlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/pingponghub/internal/processor"
	"github.com/mauv0809/pingponghub/internal/pubsub"
)

// MatchCompletedHandler is the push endpoint of the match-completed subscription.
// A non-2xx response makes Pub/Sub redeliver the message.
func MatchCompletedHandler(proc *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.FromContext(r.Context())
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			logger.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		logger.Debug("Received match completed message", "body", string(bodyBytes))

		var envelope pubsub.PushEnvelope
		if err := json.Unmarshal(bodyBytes, &envelope); err != nil {
			logger.Error("Failed to unmarshal wrapper JSON", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		rawData, err := base64.StdEncoding.DecodeString(envelope.Message.Data)
		if err != nil {
			logger.Error("Failed to decode base64 data", "error", err)
			http.Error(w, "Invalid base64 data", http.StatusBadRequest)
			return
		}

		if err := proc.HandleMatchCompletedMessage(r.Context(), rawData); err != nil {
			if errors.Is(err, processor.ErrInvalidMessage) {
				// Acknowledged so the message is not redelivered forever.
				logger.Error("Dropping undecodable message", "error", err, "messageId", envelope.Message.ID)
				w.WriteHeader(http.StatusNoContent)
				return
			}
			logger.Error("Failed to process match completed message", "error", err, "messageId", envelope.Message.ID)
			http.Error(w, "Failed to process message", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}
