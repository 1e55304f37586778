package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "separate value", args: []string{"-model", "x", "-config", "a.json"}, want: []string{"-config", "a.json"}},
		{name: "inline value", args: []string{"--config=b.json", "-theme=dark"}, want: []string{"--config=b.json"}},
		{name: "short", args: []string{"-c", "c.json"}, want: []string{"-c", "c.json"}},
		{name: "flag without value", args: []string{"-config", "-model", "x"}, want: []string{"-config"}},
		{name: "stops at terminator", args: []string{"--", "-config", "d.json"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterArgs(tt.args, "-config", "--config", "-c", "--c")
			assert.Empty(t, cmp.Diff(tt.want, got))
		})
	}
}

func TestConfigPath(t *testing.T) {
	assert.Equal(t, "x.json", configPath([]string{"-log-level", "debug", "-config", "x.json"}))
	assert.Equal(t, "", configPath([]string{"-model", "m"}))
}

func TestParseFlags_OverridesOnlyGivenFlags(t *testing.T) {
	cfg := defaults()
	err := parseFlags(cfg, []string{"-temperature", "0.2", "-reveal", "-1ms", "-timeout", "0s"})
	assert.NoError(t, err)

	want := defaults()
	want.Temperature = 0.2
	want.RevealInterval = -time.Millisecond
	want.RequestTimeout = 0
	assert.Empty(t, cmp.Diff(want, cfg))
}
