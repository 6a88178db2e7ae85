// Copyright (c) 2025 Old Aged Footballers. All Rights Reserved.
// This is licensed software from Old Aged Footballers, for limitations
// and restrictions contact your company contract manager.

package envelope

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/old-aged-footballers/team-balancer/pkg/common"
)

const (
	traceIdLogField = "traceID"
	tracerName      = "team-balancer"

	PoolSizeTag        = "oaf.balancer.pool_size"
	SuggestionCountTag = "oaf.balancer.suggestion_count"
	TeamMembersTag     = "oaf.balancer.team_members"
)

func NewRootScope(rootCtx context.Context, name string, traceID string) *Scope {
	tracer := otel.Tracer(name)
	ctx, span := tracer.Start(rootCtx, name)

	if traceID == "" || len(traceID) != 32 {
		traceID = common.GenerateUUID()
	}

	return &Scope{
		Ctx:     ctx,
		TraceID: traceID,
		span:    span,
		Log:     logrus.WithField(traceIdLogField, traceID),
	}
}

// Scope used as the envelope to combine and transport request-related information by the chain of function calls
type Scope struct {
	Ctx     context.Context
	TraceID string
	span    oteltrace.Span
	Log     *logrus.Entry
}

// SetLogger allows for setting a different logger than the default std logger. This is mostly useful for testing.
func (s *Scope) SetLogger(logger *logrus.Logger) {
	s.Log = logger.WithField(traceIdLogField, s.TraceID)
}

// Finish finishes current scope
func (s *Scope) Finish() {
	s.span.End()
}

// NewChildScope creates new child Scope.
func (s *Scope) NewChildScope(name string) *Scope {
	tracer := s.span.TracerProvider().Tracer(tracerName)
	ctx, span := tracer.Start(s.Ctx, name)

	return &Scope{
		Ctx:     ctx,
		TraceID: s.TraceID,
		span:    span,
		Log:     s.Log,
	}
}

// SetAttributes adds attributes onto a span based on the value object type
func (s *Scope) SetAttributes(key string, value interface{}) {
	switch v := value.(type) {
	case bool:
		s.span.SetAttributes(attribute.Bool(key, v))
	case string:
		s.span.SetAttributes(attribute.String(key, v))
	case int:
		s.span.SetAttributes(attribute.Int(key, v))
	case float64:
		s.span.SetAttributes(attribute.Float64(key, v))
	case []string:
		s.span.SetAttributes(attribute.StringSlice(key, v))
	case []float64:
		s.span.SetAttributes(attribute.Float64Slice(key, v))
	case time.Duration:
		s.span.SetAttributes(attribute.Int(key, int(v.Seconds())))
	case time.Time:
		s.span.SetAttributes(attribute.String(key, v.Format(time.RFC1123Z)))
	default:
		s.span.SetAttributes(attribute.String(key, fmt.Sprintf("%v", v)))
	}
}
