// Package notify carries short user-facing notifications from the client
// components to whatever front end displays them.
package notify

import (
	"fmt"
	"io"
	"sync"
)

type Level string

const (
	Success Level = "success"
	Error   Level = "danger"
)

type Notification struct {
	Level   Level
	Title   string
	Message string
}

type Notifier interface {
	Notify(n Notification)
}

// Writer prints each notification as one line.
type Writer struct {
	mu  sync.Mutex
	Out io.Writer
}

func (w *Writer) Notify(n Notification) {
	w.mu.Lock()
	defer w.mu.Unlock()
	marker := "✓"
	if n.Level == Error {
		marker = "✗"
	}
	fmt.Fprintf(w.Out, "%s %s: %s\n", marker, n.Title, n.Message)
}

// Recorder keeps notifications in memory.
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
}

func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.items))
	copy(out, r.items)
	return out
}

// Last returns the most recent notification, if any.
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return Notification{}, false
	}
	return r.items[len(r.items)-1], true
}

// Discard drops everything.
type Discard struct{}

func (Discard) Notify(Notification) {}
