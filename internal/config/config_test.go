package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "Valid development config",
			cfg: Config{
				Port:      "8640",
				JWTSecret: "dev-secret",
				Env:       "development",
			},
		},
		{
			name: "Missing port",
			cfg: Config{
				JWTSecret: "dev-secret",
			},
			wantErr: true,
		},
		{
			name: "Missing JWT secret",
			cfg: Config{
				Port: "8640",
			},
			wantErr: true,
		},
		{
			name: "Production with default secret",
			cfg: Config{
				Port:       "8640",
				JWTSecret:  "your-secret-key-change-in-production",
				Env:        "production",
				DBPassword: "strong-password-123",
			},
			wantErr: true,
		},
		{
			name: "Production with short secret",
			cfg: Config{
				Port:       "8640",
				JWTSecret:  "short",
				Env:        "production",
				DBPassword: "strong-password-123",
			},
			wantErr: true,
		},
		{
			name: "Production with weak db password",
			cfg: Config{
				Port:       "8640",
				JWTSecret:  "a-long-enough-production-secret-value",
				Env:        "production",
				DBPassword: "password",
			},
			wantErr: true,
		},
		{
			name: "Valid production config",
			cfg: Config{
				Port:       "8640",
				JWTSecret:  "a-long-enough-production-secret-value",
				Env:        "production",
				DBPassword: "strong-password-123",
				DBSSLMode:  "require",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsProduction(t *testing.T) {
	assert.True(t, (&Config{Env: "production"}).IsProduction())
	assert.True(t, (&Config{Env: "prod"}).IsProduction())
	assert.False(t, (&Config{Env: "development"}).IsProduction())
	assert.False(t, (&Config{Env: "test"}).IsProduction())
}
