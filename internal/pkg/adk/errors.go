// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

package adk

import "fmt"

// ErrRequestFailed means the agent service could not be reached or rejected
// the request. Sessions known to the server may be gone when this happens.
type ErrRequestFailed struct {
	parent error
}

func (e *ErrRequestFailed) Error() string {
	return fmt.Sprintf("request to agent service failed: %v", e.parent)
}

// Unwrap returns the underlying error.
func (e *ErrRequestFailed) Unwrap() error {
	return e.parent
}

// ErrUnexpectedResponse means the agent service replied with a body that
// could not be parsed.
type ErrUnexpectedResponse struct {
	parent error
}

func (e *ErrUnexpectedResponse) Error() string {
	return fmt.Sprintf("parse agent response: %v", e.parent)
}

// Unwrap returns the underlying error.
func (e *ErrUnexpectedResponse) Unwrap() error {
	return e.parent
}

// ErrNoModelReply means the agent answered without any model-authored text.
type ErrNoModelReply struct{}

func (e *ErrNoModelReply) Error() string {
	return "agent response contains no model reply"
}
