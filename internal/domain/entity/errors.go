package entity

import "errors"

var (
	// ErrInvalidKind is returned when a kind falls outside the set an operation accepts.
	ErrInvalidKind = errors.New("invalid remark kind")
	// ErrInvalidActor is returned when an explicit actor does not reference a persisted record.
	ErrInvalidActor = errors.New("invalid remark actor")
	// ErrNoActor is returned when no actor was given and none is authenticated.
	ErrNoActor = errors.New("no remark actor specified")
	// ErrInvalidSubject is returned when a subject does not reference a persisted record.
	ErrInvalidSubject = errors.New("invalid remark subject")
	// ErrRemarkConflict is returned when a concurrent write stored a different kind for the same pair.
	ErrRemarkConflict = errors.New("remark conflict")
	ErrRemarkNotFound = errors.New("remark not found")

	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
	ErrPostNotFound = errors.New("post not found")
)
