package utils

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// TokenStream is an ordered feed of text deltas from a streaming completion
// call. Recv returns the next delta (possibly empty) or io.EOF once the
// stream is cleanly finished.
type TokenStream interface {
	Recv() (string, error)
	Close()
}

// AccumulateStream drains a TokenStream into a cumulative buffer, invoking
// onSnapshot with the full text so far once per non-empty delta. It returns
// the final snapshot.
//
// A transport failure mid-stream does not propagate: the failure is folded
// into a single user-facing snapshot embedding the cause, emitted and
// returned as the final value, and the stream is treated as cleanly
// terminated. Callers must not assume that value is itinerary-shaped text.
//
// Each call is independent; abandoning a stream early (by returning from
// onSnapshot's caller) leaves no shared state behind.
func AccumulateStream(stream TokenStream, onSnapshot func(snapshot string)) string {
	defer stream.Close()

	var buf strings.Builder
	for {
		delta, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return buf.String()
		}
		if err != nil {
			msg := fmt.Sprintf("An error occurred: %v", err)
			if onSnapshot != nil {
				onSnapshot(msg)
			}
			return msg
		}
		if delta == "" {
			continue
		}
		buf.WriteString(delta)
		if onSnapshot != nil {
			onSnapshot(buf.String())
		}
	}
}

// errorStream is a TokenStream that fails on the first Recv. It lets callers
// funnel connection-time failures through the same accumulator path as
// mid-stream ones.
type errorStream struct {
	err error
}

func NewErrorStream(err error) TokenStream { return &errorStream{err: err} }

func (s *errorStream) Recv() (string, error) { return "", s.err }
func (s *errorStream) Close()                {}
