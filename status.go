// SPDX-License-Identifier: EPL-2.0

package soxe

import "fmt"

// Status is the outcome of Start and Stop.
type Status int

const (
	StatusOK Status = iota
	StatusAlreadyStarted
	StatusAlreadyStopped
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusAlreadyStarted:
		return "already_started"
	case StatusAlreadyStopped:
		return "already_stopped"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}
