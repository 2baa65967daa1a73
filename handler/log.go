package handler

import (
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
)

// errorBody is the only error the caller ever sees; the cause stays in the logs.
const errorBody = `{"error": "No se pudo generar el acertijo."}`

const methodNotAllowedBody = "Method Not Allowed"

func requestLogger(req *http.Request, requestID string) *logrus.Entry {
	return log.WithFields(logrus.Fields{
		"request_id":  requestID,
		"remote_addr": req.RemoteAddr,
		"method":      req.Method,
		"path":        req.URL.Path,
	})
}

func logRequest(entry *logrus.Entry, code int) {
	entry.WithField("status", code).Info("Request served")
}

func logAndReturnError(w http.ResponseWriter, entry *logrus.Entry, err error) {
	entry.WithError(err).Error("Failed to generate puzzle")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	io.WriteString(w, errorBody)
}

func returnMethodNotAllowed(w http.ResponseWriter, entry *logrus.Entry) {
	entry.Debug("Rejected non-POST request")
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusMethodNotAllowed)
	io.WriteString(w, methodNotAllowedBody)
}
