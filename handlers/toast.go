package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"unicode/utf16"

	"github.com/pocketbase/pocketbase/core"
)

// Toast kinds understood by the page script.
const (
	ToastSuccess = "success"
	ToastError   = "error"
)

// SetToast adds a showToast event to the HX-Trigger response header. Events
// already present in the header are kept. The download script reads the same
// header on fetch responses.
func SetToast(e *core.RequestEvent, toastType string, message string) {
	events := map[string]any{}
	if existing := e.Response.Header().Get("HX-Trigger"); existing != "" {
		if err := json.Unmarshal([]byte(existing), &events); err != nil {
			log.Printf("toast: existing HX-Trigger is not valid JSON, overwriting: %v", err)
			events = map[string]any{}
		}
	}
	events["showToast"] = map[string]string{
		"message": message,
		"type":    toastType,
	}

	data, err := json.Marshal(events)
	if err != nil {
		log.Printf("toast: failed to marshal HX-Trigger JSON: %v", err)
		return
	}
	e.Response.Header().Set("HX-Trigger", asciiJSON(data))
}

// asciiJSON escapes every non-ASCII rune of a JSON document as \uXXXX.
// Browsers decode response headers as Latin-1, so raw UTF-8 would show
// "enregistré" as "enregistrÃ©".
func asciiJSON(data []byte) string {
	var sb strings.Builder
	for _, r := range string(data) {
		if r < 0x80 {
			sb.WriteRune(r)
			continue
		}
		if r > 0xFFFF {
			r1, r2 := utf16.EncodeRune(r)
			fmt.Fprintf(&sb, "\\u%04x\\u%04x", r1, r2)
			continue
		}
		fmt.Fprintf(&sb, "\\u%04x", r)
	}
	return sb.String()
}

// ErrorToast sets an error toast and tells HTMX not to swap the error text
// into the page.
func ErrorToast(e *core.RequestEvent, statusCode int, message string) error {
	SetToast(e, ToastError, message)
	e.Response.Header().Set("HX-Reswap", "none")
	return e.String(statusCode, message)
}
