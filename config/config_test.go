package config_test

import (
	"carehub/config"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	valid := func() *config.Config {
		cfg := &config.Config{}
		cfg.JWT.AccessSecret = "access"
		cfg.JWT.RefreshSecret = "refresh"
		cfg.DB.Postgres.Write.Host = "primary"
		cfg.DB.Postgres.Read.Host = "replica"

		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(cfg *config.Config)
		wantErr string
	}{
		{name: "complete", mutate: func(*config.Config) {}},
		{
			name:    "missing access secret",
			mutate:  func(cfg *config.Config) { cfg.JWT.AccessSecret = "" },
			wantErr: "missing required setting: JWT_ACCESS_SECRET",
		},
		{
			name:    "missing read host",
			mutate:  func(cfg *config.Config) { cfg.DB.Postgres.Read.Host = "" },
			wantErr: "missing required setting: DB_POSTGRES_READ_HOST",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, config.ErrMissingSetting)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
