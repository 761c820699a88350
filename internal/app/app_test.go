package app

import (
	"testing"
	"time"

	"github.com/stockops/allocation-service/config"
	"github.com/stretchr/testify/assert"
)

func TestInitializeApp(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Config
		validate func(*testing.T, interface{})
	}{
		{
			name: "creates router with default config",
			cfg: config.Config{
				Server: config.ServerConfig{
					Port:       "8080",
					RateLimit:  100,
					RateWindow: time.Minute,
				},
				Allocator: config.AllocatorConfig{
					ExclusionPattern: "PRD",
				},
			},
			validate: func(t *testing.T, router interface{}) {
				assert.NotNil(t, router)
			},
		},
		{
			name: "creates router with auth enabled",
			cfg: config.Config{
				Server: config.ServerConfig{
					Port: "8080",
				},
				Auth: config.AuthConfig{
					Enabled: true,
					APIKeys: map[string]bool{"test-key": true},
				},
			},
			validate: func(t *testing.T, router interface{}) {
				assert.NotNil(t, router)
			},
		},
		{
			name: "creates router with custom exclusion pattern",
			cfg: config.Config{
				Server: config.ServerConfig{
					Port: "8080",
				},
				Allocator: config.AllocatorConfig{
					ExclusionPattern: "QA",
				},
			},
			validate: func(t *testing.T, router interface{}) {
				assert.NotNil(t, router)
			},
		},
		{
			name: "creates router with upload limit",
			cfg: config.Config{
				Server: config.ServerConfig{
					Port: "8080",
				},
				Upload: config.UploadConfig{
					MaxFileSize: 1 << 20,
				},
			},
			validate: func(t *testing.T, router interface{}) {
				assert.NotNil(t, router)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := InitializeApp(tt.cfg)
			if tt.validate != nil {
				tt.validate(t, router)
			}
		})
	}
}
