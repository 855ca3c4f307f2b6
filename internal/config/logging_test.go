package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/vlist/internal/logging"
)

func TestToLoggingConfig(t *testing.T) {
	tests := []struct {
		name string
		in   LoggingConfig
		want logging.Config
	}{
		{
			name: "stderr",
			in:   LoggingConfig{Level: "debug", Format: "json"},
			want: logging.Config{Level: "debug", Format: "json", Output: logging.OutputStderr, Caller: true},
		},
		{
			name: "file",
			in:   LoggingConfig{Level: "info", Format: "console", File: "/var/log/vlist.log"},
			want: logging.Config{Level: "info", Format: "console", Output: logging.OutputFile, File: "/var/log/vlist.log"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.ToLoggingConfig())
		})
	}
}
