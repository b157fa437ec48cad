// Package mocks records spans in memory so tests can assert on tracing.
package mocks

import (
	"context"
	"sync"

	"careerday/infras/otel"
)

// Span is what a recorded scope saw.
type Span struct {
	Scope      string
	Name       string
	Attributes map[string]any
	Events     []string
	Errors     []error
	Ended      bool
}

type Otel struct {
	mu    sync.Mutex
	spans []*Span
}

func NewOtel() *Otel {
	return &Otel{}
}

func (o *Otel) NewScope(ctx context.Context, scopeName, spanName string) (context.Context, otel.Scope) {
	span := &Span{Scope: scopeName, Name: spanName, Attributes: map[string]any{}}

	o.mu.Lock()
	o.spans = append(o.spans, span)
	o.mu.Unlock()

	return ctx, &scope{otel: o, span: span}
}

// Spans returns a snapshot of every span opened so far.
func (o *Otel) Spans() []Span {
	o.mu.Lock()
	defer o.mu.Unlock()

	out := make([]Span, len(o.spans))
	for i, span := range o.spans {
		out[i] = *span
	}

	return out
}

// Errors lists every error traced on any span.
func (o *Otel) Errors() []error {
	var errs []error
	for _, span := range o.Spans() {
		errs = append(errs, span.Errors...)
	}

	return errs
}

type scope struct {
	otel *Otel
	span *Span
}

func (s *scope) End() {
	s.otel.mu.Lock()
	s.span.Ended = true
	s.otel.mu.Unlock()
}

func (s *scope) TraceError(err error) {
	if err == nil {
		return
	}

	s.otel.mu.Lock()
	s.span.Errors = append(s.span.Errors, err)
	s.otel.mu.Unlock()
}

func (s *scope) TraceIfError(err error) {
	s.TraceError(err)
}

func (s *scope) AddEvent(name string) {
	s.otel.mu.Lock()
	s.span.Events = append(s.span.Events, name)
	s.otel.mu.Unlock()
}

func (s *scope) SetAttribute(key string, value any) {
	s.otel.mu.Lock()
	s.span.Attributes[key] = value
	s.otel.mu.Unlock()
}

func (s *scope) SetAttributes(attributes map[string]any) {
	for key, value := range attributes {
		s.SetAttribute(key, value)
	}
}
