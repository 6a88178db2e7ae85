// Copyright (c) 2025 Old Aged Footballers. All Rights Reserved.
// This is licensed software from Old Aged Footballers, for limitations
// and restrictions contact your company contract manager.

package models

import (
	"errors"
	"fmt"
)

var (
	ValidationErrorTeamSizeRange  = errors.New("max team size should not be less than min team size")
	ValidationErrorNegativeSize   = errors.New("team sizes and suggestion count cannot be negative")
	ValidationErrorNegativeWeight = errors.New("score weights cannot be negative")
)

// ErrInsufficientPlayers is the sentinel for errors.Is checks against
// *InsufficientPlayersError values.
var ErrInsufficientPlayers = errors.New("not enough players available")

// InsufficientPlayersError is returned when the available pool cannot fill
// two minimum-sized teams. It carries the counts the caller needs to resolve
// the precondition.
type InsufficientPlayersError struct {
	Required int
	Actual   int
}

func (e *InsufficientPlayersError) Error() string {
	return fmt.Sprintf("not enough players available. Need at least %d, got %d", e.Required, e.Actual)
}

func (e *InsufficientPlayersError) Is(target error) bool {
	return target == ErrInsufficientPlayers
}

var validationErrorCodeMap = map[error]int{
	ValidationErrorTeamSizeRange:  420101,
	ValidationErrorNegativeSize:   420102,
	ValidationErrorNegativeWeight: 420103,
	ErrInsufficientPlayers:        420110,
}

// ValidationErrorCode returns a code for the error.
// It returns 20002 if the error is not registered in the map.
func ValidationErrorCode(err error) int {
	for registered, code := range validationErrorCodeMap {
		if errors.Is(err, registered) {
			return code
		}
	}
	return 20002
}
