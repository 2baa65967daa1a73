package handler

import (
	"io"
	"net/http"

	"acertijo/backend"
	"acertijo/puzzle"

	"github.com/google/uuid"
)

// HTTPHandler turns a POSTed date into a riddle by calling the generative API
// with a credential the caller never sees.
type HTTPHandler struct {
	Backend   Generator
	APIKeyEnv string

	// lookupKey reads the credential on every request.
	lookupKey func(name string) (string, error)
}

// NewHTTPHandler creates a new instance of HTTPHandler. apiKeyEnv names the
// environment variable holding the upstream credential.
func NewHTTPHandler(gen Generator, apiKeyEnv string) *HTTPHandler {
	return &HTTPHandler{
		Backend:   gen,
		APIKeyEnv: apiKeyEnv,
		lookupKey: backend.APIKeyFromEnv,
	}
}

// ServeHTTP implements the http.Handler interface for HTTPHandler.
func (h *HTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	entry := requestLogger(r, uuid.NewString())

	if r.Method != http.MethodPost {
		returnMethodNotAllowed(w, entry)
		return
	}

	text, err := h.generate(r)
	if err != nil {
		logAndReturnError(w, entry, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, text)
	logRequest(entry, http.StatusOK)
}

func (h *HTTPHandler) generate(r *http.Request) (string, error) {
	payload, err := decodePayload(r.Body)
	if err != nil {
		return "", err
	}

	apiKey, err := h.lookupKey(h.APIKeyEnv)
	if err != nil {
		return "", err
	}

	userMessage := puzzle.UserMessage(payload.DateText())
	return h.Backend.GenerateContent(r.Context(), apiKey, puzzle.SystemInstruction, userMessage)
}
