package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedPrompter feeds canned answers to Collect.
type scriptedPrompter struct {
	lines  []string
	secret string
}

func (p *scriptedPrompter) ReadLine() string {
	if len(p.lines) == 0 {
		return ""
	}
	line := p.lines[0]
	p.lines = p.lines[1:]
	return line
}

func (p *scriptedPrompter) ReadSecret() string {
	return p.secret
}

func TestParsePort(t *testing.T) {
	tests := []struct {
		name    string
		answer  string
		want    int
		wantErr bool
	}{
		{"blank defaults", "", 587, false},
		{"whitespace defaults", "   ", 587, false},
		{"integer", "2525", 2525, false},
		{"integer with spaces", " 465 ", 465, false},
		{"letters", "abc", 0, true},
		{"mixed", "58x", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePort(tt.answer)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCollectKnownProviders(t *testing.T) {
	tests := []struct {
		choice string
		server string
	}{
		{"1", "smtp.gmail.com"},
		{"2", "smtp-mail.outlook.com"},
		{"3", "smtp.mail.yahoo.com"},
	}
	for _, tt := range tests {
		t.Run(tt.choice, func(t *testing.T) {
			prompt := &scriptedPrompter{
				lines:  []string{tt.choice, "me@example.com", "you@example.com"},
				secret: "app-pass",
			}
			cfg, err := Collect(prompt)
			require.NoError(t, err)
			assert.Equal(t, tt.server, cfg.Server)
			assert.Equal(t, 587, cfg.Port)
			assert.Equal(t, "me@example.com", cfg.Sender)
			assert.Equal(t, "app-pass", cfg.Password)
			assert.Equal(t, "you@example.com", cfg.Recipient)
		})
	}
}

func TestCollectCustomServer(t *testing.T) {
	prompt := &scriptedPrompter{
		lines:  []string{"4", "mail.example.com", "2525", "me@example.com", ""},
		secret: "pw",
	}
	cfg, err := Collect(prompt)
	require.NoError(t, err)
	assert.Equal(t, "mail.example.com", cfg.Server)
	assert.Equal(t, 2525, cfg.Port)
}

func TestCollectUnrecognizedChoiceIsCustom(t *testing.T) {
	prompt := &scriptedPrompter{
		lines:  []string{"banana", "mail.example.com", "", "me@example.com", ""},
		secret: "pw",
	}
	cfg, err := Collect(prompt)
	require.NoError(t, err)
	assert.Equal(t, "mail.example.com", cfg.Server)
	assert.Equal(t, 587, cfg.Port, "blank port answer falls back to 587")
}

func TestCollectBadPortFails(t *testing.T) {
	prompt := &scriptedPrompter{
		lines:  []string{"4", "mail.example.com", "not-a-port"},
		secret: "pw",
	}
	_, err := Collect(prompt)
	assert.Error(t, err)
}

func TestCollectBlankRecipientDefaultsToSender(t *testing.T) {
	prompt := &scriptedPrompter{
		lines:  []string{"1", "me@example.com", ""},
		secret: "pw",
	}
	cfg, err := Collect(prompt)
	require.NoError(t, err)
	assert.Equal(t, "me@example.com", cfg.Recipient)
}
