package notify

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := &Writer{Out: &buf}

	w.Notify(Notification{Level: Success, Title: "Saved!", Message: "Brand saved successfully."})
	w.Notify(Notification{Level: Error, Title: "Error", Message: "brand_name is required"})

	assert.Equal(t, "✓ Saved!: Brand saved successfully.\n✗ Error: brand_name is required\n", buf.String())
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	_, ok := r.Last()
	assert.False(t, ok)

	r.Notify(Notification{Title: "a"})
	r.Notify(Notification{Title: "b"})

	last, ok := r.Last()
	assert.True(t, ok)
	assert.Equal(t, "b", last.Title)
	assert.Len(t, r.All(), 2)
}
