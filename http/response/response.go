package response

import (
	"encoding/json"
	"log"
	"net/http"

	"registration-module/errors"
)

// SendJSON encodes and sends a JSON response
func SendJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// Success sends a response with success=true and the given fields merged in.
func Success(w http.ResponseWriter, statusCode int, fields map[string]interface{}) {
	body := map[string]interface{}{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	SendJSON(w, statusCode, body)
}

// Error sends {success:false, message} with the given status code.
func Error(w http.ResponseWriter, statusCode int, message string) {
	SendJSON(w, statusCode, map[string]interface{}{
		"success": false,
		"message": message,
	})
}

// FromError maps an application error onto the wire: its kind picks the
// status code and only the kind's safe message reaches the caller.
func FromError(w http.ResponseWriter, err error) {
	msg := errors.Message(err)
	if msg == "" {
		msg = "Internal Server Error"
	}
	Error(w, errors.HTTPStatus(err), msg)
}
