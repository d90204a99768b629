// Package response writes the storefront JSON envelope.
//
// Every endpoint answers with {"success": bool, ...}: successful calls
// merge their payload fields into the envelope, failures carry a message.
package response

import (
	"encoding/json"
	"net/http"
)

// M is a shorthand for the payload fields merged into a success envelope.
type M map[string]interface{}

func write(w http.ResponseWriter, status int, body map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

// Success sends a success envelope with the given status and payload fields.
//
//	response.Success(w, http.StatusOK, response.M{"token": token})
//	// → 200 {"success":true,"token":"..."}
func Success(w http.ResponseWriter, status int, fields M) {
	body := map[string]interface{}{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	write(w, status, body)
}

// Fail sends {"success":false,"message":message} with the given status.
func Fail(w http.ResponseWriter, status int, message string) {
	write(w, status, map[string]interface{}{
		"success": false,
		"message": message,
	})
}

// FailValidation sends a 400 with field-level validation errors.
func FailValidation(w http.ResponseWriter, errs map[string]string) {
	write(w, http.StatusBadRequest, map[string]interface{}{
		"success": false,
		"message": "Validation failed",
		"errors":  errs,
	})
}
