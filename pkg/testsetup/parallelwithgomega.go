// Copyright (c) 2025 Old Aged Footballers. All Rights Reserved.
// This is licensed software from Old Aged Footballers, for limitations
// and restrictions contact your company contract manager.

package testsetup

import (
	"testing"

	"github.com/onsi/gomega"

	"github.com/old-aged-footballers/team-balancer/pkg/envelope"
)

type GomegaWithScope struct {
	TestScope *envelope.Scope
	*gomega.GomegaWithT
}

func ParallelWithGomega(t *testing.T) GomegaWithScope {
	t.Parallel()
	return GomegaWithScope{NewTestScope(), gomega.NewGomegaWithT(t)}
}

func WithGomega(t *testing.T) GomegaWithScope {
	return GomegaWithScope{NewTestScope(), gomega.NewGomegaWithT(t)}
}
