package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

func SendJSON(w http.ResponseWriter, v any) (int, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return 0, err
	}
	w.Header().Add("Content-Type", "application/json")
	return w.Write(payload)
}

func SendJSONOrLog(w http.ResponseWriter, log logrus.FieldLogger, v any) {
	_, err := SendJSON(w, v)
	if err != nil {
		log.WithFields(logrus.Fields{
			"data":  v,
			"error": err,
		}).Error("failed to send data")
	}
}

func SendErrorOrLog(
	w http.ResponseWriter,
	log logrus.FieldLogger,
	statusCode int,
	e error,
) {
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	payload, err := json.Marshal(wrapError(e))
	if err == nil {
		_, err = w.Write(payload)
	}
	if err != nil {
		log.WithFields(logrus.Fields{
			"sent error": e,
			"error":      err,
		}).Error("failed to send error message")
	}
}

func wrapError(err error) map[string]string {
	return map[string]string{
		"error": err.Error(),
	}
}
