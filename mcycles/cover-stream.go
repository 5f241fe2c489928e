package mcycles

import (
	"fmt"
	"io"
	"strings"
)

// CoverStream is a pipeline of finished covers.
type CoverStream struct {
	Outlet chan Cover
}

func NewCoverStream() *CoverStream {
	stream := &CoverStream{
		Outlet: make(chan Cover),
	}
	return stream
}

func (stream *CoverStream) Close() {
	if stream.Outlet != nil {
		close(stream.Outlet)
	}
}

func (stream *CoverStream) PushCover(X Cover) {
	stream.Outlet <- X
}

func (stream *CoverStream) PullCover() Cover {
	X := <-stream.Outlet
	return X
}

func (stream *CoverStream) PullAll() int {
	count := int(0)
	for range stream.Outlet {
		count++
	}
	return count
}

// BuildCoverFn constructs the cover for one period.
type BuildCoverFn func(period Period) (Cover, error)

// StreamCovers builds one cover per period in [lo, hi].
// Each period is an independent build, so they run concurrently;
// covers are delivered in period order. A build fault is a programming
// error and panics, ending the sweep.
func StreamCovers(lo, hi Period, build BuildCoverFn) (*CoverStream, error) {
	if _, err := NewContext(lo); err != nil {
		return nil, err
	}
	if _, err := NewContext(hi); err != nil {
		return nil, err
	}

	next := NewCoverStream()

	pending := make([]chan Cover, 0, hi-lo+1)
	for per := lo; per <= hi; per++ {
		got := make(chan Cover, 1)
		pending = append(pending, got)
		go func(per Period) {
			X, err := build(per)
			if err != nil {
				panic(err)
			}
			got <- X
		}(per)
	}

	go func() {
		for _, got := range pending {
			next.Outlet <- <-got
		}
		next.Close()
	}()

	return next, nil
}

func (stream *CoverStream) Print(
	out io.WriteCloser,
	opts PrintOpts) *CoverStream {

	next := &CoverStream{
		Outlet: make(chan Cover, 1),
	}

	go func() {
		buf := strings.Builder{}
		buf.Grow(256)

		for X := range stream.Outlet {
			if len(opts.Label) > 0 {
				buf.WriteString(opts.Label)
				buf.WriteByte(',')
			}
			fmt.Fprintf(&buf, "%v\n", X.Spec())
			X.WriteAsString(&buf, opts)
			out.Write([]byte(buf.String()))
			buf.Reset()
			next.Outlet <- X
		}
		out.Close()
		next.Close()
	}()

	return next
}

// AddTo feeds each cover's stats into the target catalog and passes
// the cover downstream.
func (stream *CoverStream) AddTo(target StatsAdder) *CoverStream {
	next := &CoverStream{
		Outlet: make(chan Cover, 1),
	}

	go func() {
		for X := range stream.Outlet {
			target.TryAddStats(X.Stats())
			next.Outlet <- X
		}
		next.Close()
	}()

	return next
}
