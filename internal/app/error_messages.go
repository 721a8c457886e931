// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// order-service HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgResourceNotFound is returned for a missing resource that carries no
	// more specific message.
	MsgResourceNotFound = "Requested resource not found"

	// MsgServiceUnavailable is returned when the user service cannot be
	// reached or keeps failing.
	MsgServiceUnavailable = "External service is temporarily unavailable"

	// MsgIntegrityViolation is returned when the database rejects a write
	// because of a constraint (e.g. an order item references a missing item).
	MsgIntegrityViolation = "Data integrity violation. Please check your input data."

	// MsgInternalServerError prefixes the message of unexpected failures.
	MsgInternalServerError = "Internal server error: "

	// MsgInvalidPathID is returned when an {id} path segment is not a
	// positive integer.
	MsgInvalidPathID = "%s must be a positive integer, got %q"

	// MsgInvalidOrderIDs is returned when the orderIds query parameter
	// contains a value that is not an integer.
	MsgInvalidOrderIDs = "orderIds must be a list of integers, got %q"

	// MsgUnknownStatus is returned for an order status outside
	// PENDING, SUCCESS, FAILED and CANCELLED.
	MsgUnknownStatus = "Unknown order status: %s"
)
