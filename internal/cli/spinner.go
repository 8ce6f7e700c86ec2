package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// spinner animates msg on w until stopped or until its context ends.
type spinner struct {
	w      io.Writer
	msg    string
	parent context.Context
	ctx    context.Context
	cancel context.CancelFunc
	exited chan struct{}
	once   sync.Once
}

// startSpinner begins animating immediately.
func startSpinner(ctx context.Context, w io.Writer, msg string) *spinner {
	child, cancel := context.WithCancel(ctx)
	s := &spinner{w: w, msg: msg, parent: ctx, ctx: child, cancel: cancel, exited: make(chan struct{})}
	go s.run()
	return s
}

func (s *spinner) run() {
	defer close(s.exited)
	tick := time.NewTicker(spinnerInterval)
	defer tick.Stop()

	for frame := 0; ; frame++ {
		select {
		case <-s.ctx.Done():
			fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", len(s.msg)+4))
			return
		case <-tick.C:
			f := spinnerFrames[frame%len(spinnerFrames)]
			fmt.Fprintf(s.w, "\r%s %s", styleIconSpinner.Render(f), StyleDim.Render(s.msg))
		}
	}
}

// stop clears the line and waits for the animation to exit. Safe to call
// more than once.
func (s *spinner) stop() {
	s.once.Do(func() {
		s.cancel()
		<-s.exited
	})
}

// fail stops the spinner and prints msg as an error.
func (s *spinner) fail(msg string) {
	s.stop()
	printError("%s", msg)
}

// interrupted reports whether the context the spinner was started with has ended.
func (s *spinner) interrupted() bool {
	return s.parent.Err() != nil
}
