// Copyright (c) 2025 Old Aged Footballers. All Rights Reserved.
// This is licensed software from Old Aged Footballers, for limitations
// and restrictions contact your company contract manager.

package testsetup

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/old-aged-footballers/team-balancer/pkg/envelope"
)

// NewTestScope creates a new scope for test use
func NewTestScope() *envelope.Scope {
	return envelope.NewRootScope(context.Background(), "test", "")
}

// NewTestScopeWithLogger creates a new scope using the given logger for test use
func NewTestScopeWithLogger(logger *logrus.Logger) *envelope.Scope {
	scope := envelope.NewRootScope(context.Background(), "test", "")
	scope.SetLogger(logger)
	return scope
}
