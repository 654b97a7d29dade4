package domain

import "errors"

// ErrNodeNotFound is returned when a loader has no node for the requested ID.
var ErrNodeNotFound = errors.New("node not found")

// ErrUnknownFunction is returned when a logic node names a function that was never registered.
var ErrUnknownFunction = errors.New("unknown function")

// ErrReservedNamespace is returned when a node tries to save into the "sys" namespace.
var ErrReservedNamespace = errors.New("reserved namespace")
