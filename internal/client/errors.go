package client

import (
	"errors"
	"net/http"
	"strings"
)

// ErrNotReady is returned before any network call when the client has no
// configured transport. It is never queued or retried.
var ErrNotReady = errors.New("backend connection is not ready, please try again")

type Kind int

const (
	KindUnauthorized Kind = iota + 1
	KindNotFound
	KindRemote
)

// Error is the only error shape that crosses the client boundary after a
// remote failure: a category plus a user-safe message. Raw transport and
// server errors never leave this package.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

const (
	msgUnauthorized = "You do not have permission to perform this action. Please log in and try again."
	msgNotFound     = "Record not found. It may have been deleted."
	msgFallback     = "Something went wrong. Please try again."
	msgUnreachable  = "Could not reach the server. Please check your connection and try again."

	maxMessageLen = 160
)

func translate(status int, body string) *Error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &Error{Kind: KindUnauthorized, Message: msgUnauthorized}
	case status == http.StatusNotFound:
		return &Error{Kind: KindNotFound, Message: msgNotFound}
	case strings.Contains(body, "Unauthorized") || strings.Contains(body, "Forbidden"):
		return &Error{Kind: KindUnauthorized, Message: msgUnauthorized}
	case strings.Contains(body, "not found"):
		return &Error{Kind: KindNotFound, Message: msgNotFound}
	}

	msg := cleanMessage(body)
	if msg == "" {
		msg = msgFallback
	}
	return &Error{Kind: KindRemote, Message: msg}
}

// cleanMessage strips known server boilerplate and truncates what remains.
// Messages that carry no information beyond the boilerplate become empty so
// the caller falls back to the generic text.
func cleanMessage(raw string) string {
	msg := strings.TrimSpace(raw)

	for _, prefix := range []string{"Bad request:", "Internal server error:", "Error:", "error:"} {
		if strings.HasPrefix(msg, prefix) {
			msg = strings.TrimSpace(strings.TrimPrefix(msg, prefix))
		}
	}

	switch msg {
	case "Bad request", "Internal server error", "Bad Request", "Internal Server Error":
		return ""
	}

	if len(msg) > maxMessageLen {
		msg = msg[:maxMessageLen] + "..."
	}

	return msg
}
