package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:   "valid config",
			config: Config{DataDir: "/tmp/data"}.WithDefaults(),
		},
		{
			name:    "empty data dir rejected",
			config:  Config{}.WithDefaults(),
			wantErr: ErrDataDirEmpty,
		},
		{
			name:    "negative request timeout rejected",
			config:  Config{DataDir: "/tmp/data", RequestTimeout: -time.Second, LoginTimeout: time.Second},
			wantErr: ErrRequestTimeoutInvalid,
		},
		{
			name:    "zero login timeout rejected",
			config:  Config{DataDir: "/tmp/data", RequestTimeout: time.Second},
			wantErr: ErrLoginTimeoutInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigWithDefaults(t *testing.T) {
	c := Config{DataDir: "/tmp/data"}.WithDefaults()
	assert.Equal(t, DefaultRequestTimeout, c.RequestTimeout)
	assert.Equal(t, DefaultLoginTimeout, c.LoginTimeout)

	// Explicit values are kept.
	c = Config{DataDir: "/tmp/data", RequestTimeout: time.Minute}.WithDefaults()
	assert.Equal(t, time.Minute, c.RequestTimeout)
}
