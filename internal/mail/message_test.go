package mail

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.Local)

func TestStampBodySuffix(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"regular body", "Hello"},
		{"empty body", ""},
		{"multi line body", "line one\nline two"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stampBody(tt.body, fixedNow)
			assert.True(t, strings.HasPrefix(got, tt.body))
			assert.Equal(t, tt.body+"\n\nSent from Trinity at 2025-03-14 09:26:53", got)
		})
	}
}

func renderMessage(t *testing.T, from string, msg Message) string {
	t.Helper()
	m := build(from, msg, fixedNow)
	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)
	return buf.String()
}

func TestBuildPlainMessage(t *testing.T) {
	out := renderMessage(t, "me@example.com", Message{
		To:      "you@example.com",
		Subject: "Hi",
		Body:    "Hello",
	})

	assert.Contains(t, out, "From: me@example.com")
	assert.Contains(t, out, "To: you@example.com")
	assert.Contains(t, out, "Subject: Hi")
	assert.Contains(t, out, "text/plain")
	assert.Contains(t, out, "Sent from Trinity at 2025-03-14 09:26:53")
	assert.NotContains(t, out, "text/html")
	assert.NotContains(t, out, "Content-Disposition: attachment")
}

func TestBuildAlternativeHTMLPart(t *testing.T) {
	out := renderMessage(t, "me@example.com", Message{
		To:       "you@example.com",
		Subject:  "Report",
		Body:     "plain rendering",
		HTMLBody: "<p>html rendering</p>",
	})

	assert.Contains(t, out, "multipart/alternative")
	assert.Contains(t, out, "text/plain")
	assert.Contains(t, out, "text/html")
	assert.Contains(t, out, "html rendering")
}

func TestBuildAttachesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	require.NoError(t, os.WriteFile(path, []byte("attachment payload"), 0o644))

	out := renderMessage(t, "me@example.com", Message{
		To:         "you@example.com",
		Subject:    "With file",
		Body:       "see attached",
		Attachment: path,
	})

	assert.Contains(t, out, "Content-Disposition: attachment")
	assert.Contains(t, out, "report.txt")
	assert.Contains(t, out, "base64")
}

func TestBuildSkipsMissingAttachment(t *testing.T) {
	out := renderMessage(t, "me@example.com", Message{
		To:         "you@example.com",
		Subject:    "No file",
		Body:       "nothing attached",
		Attachment: filepath.Join(t.TempDir(), "does-not-exist.bin"),
	})

	assert.NotContains(t, out, "Content-Disposition: attachment")
	assert.Contains(t, out, "Sent from Trinity at")
}
