// waypoint/errors.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package waypoint

import "errors"

// Errors used by the waypoint package. All but ErrMalformedCoordinateToken
// abort construction of a generator; malformed tokens are logged and
// skipped.
var (
	ErrNotFound                 = errors.New("Source file not found")
	ErrExtractionFailed         = errors.New("Archive extraction failed")
	ErrDocumentNotFound         = errors.New("Document not found in archive")
	ErrDocumentUnreadable       = errors.New("Document unreadable")
	ErrMalformedCoordinateToken = errors.New("Malformed coordinate token")
	ErrEmptyWaypointList        = errors.New("No waypoints")
)
