// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/riegum-client/internal/adapter"
	"github.com/MKhiriev/riegum-client/internal/app"
	"github.com/MKhiriev/riegum-client/internal/session"
	"github.com/MKhiriev/riegum-client/internal/validators"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The server message is kept in the text of the result.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		msg := extractBody(err, adapter.ErrBadRequest)
		if strings.Contains(msg, app.MsgUsernameTaken) {
			return fmt.Errorf("%w: %s", ErrUsernameTaken, msg)
		}
		return fmt.Errorf("%w: %s", ErrInvalidDataProvided, msg)

	case errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %s", ErrForbidden, extractBody(err, adapter.ErrForbidden))

	case errors.Is(err, adapter.ErrNotFound):
		switch msg := extractBody(err, adapter.ErrNotFound); msg {
		case app.MsgNotFound:
			return ErrPlantNotFound
		case app.MsgNoOutdoorLocation:
			return ErrNoOutdoorLocation
		case app.MsgProfileNotFound:
			return ErrCalendarProfileNotFound
		}
	}

	return err
}

// extractBody returns the server message that follows sentinel in the text
// of err, e.g. "list plants request: bad request: <body>" gives "<body>".
func extractBody(err, sentinel error) string {
	msg := err.Error()
	prefix := sentinel.Error() + ": "
	if idx := strings.Index(msg, prefix); idx != -1 {
		return msg[idx+len(prefix):]
	}
	return msg
}

// mapValidationError marks validator failures as invalid input.
func mapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, validators.ErrUnsupportedType) || errors.Is(err, validators.ErrUnknownField) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}

// isSessionFailure reports whether err ended or could not reach the session,
// in which case retrying other work in the same batch is pointless.
func isSessionFailure(err error) bool {
	return errors.Is(err, session.ErrSessionExpired) || errors.Is(err, session.ErrNetworkFailure)
}
