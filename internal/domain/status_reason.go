package domain

import "slices"

// statusReasons lists, per status, the reasons that may accompany it.
// Statuses not present here must not carry a reason at all.
var statusReasons = map[Status][]string{
	StatusBlocked: {"IRREGULARITY", "LOST"},
}

// ValidStatusReason reports whether the given reason is allowed alongside
// the given status. An empty reason is always allowed.
func ValidStatusReason(status Status, reason string) bool {
	if reason == "" {
		return true
	}
	return slices.Contains(statusReasons[status], reason)
}
