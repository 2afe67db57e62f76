package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name       string
		env        map[string]string
		wantErr    bool
		wantBackup bool
	}{
		{
			name: "primary store by default",
			env: map[string]string{
				"JWT_SECRET":   "s",
				"DATABASE_URL": "postgres://localhost/payments",
			},
		},
		{
			name: "backup store",
			env: map[string]string{
				"JWT_SECRET":      "s",
				"DATA_STORE_TYPE": "backup",
			},
			wantBackup: true,
		},
		{
			name: "backup store is case insensitive",
			env: map[string]string{
				"JWT_SECRET":      "s",
				"DATA_STORE_TYPE": "Backup",
			},
			wantBackup: true,
		},
		{
			name: "unknown type falls back to primary",
			env: map[string]string{
				"JWT_SECRET":      "s",
				"DATA_STORE_TYPE": "standby",
				"DATABASE_URL":    "postgres://localhost/payments",
			},
		},
		{
			name:    "primary without database url",
			env:     map[string]string{"JWT_SECRET": "s"},
			wantErr: true,
		},
		{
			name:    "missing jwt secret",
			env:     map[string]string{"DATABASE_URL": "postgres://localhost/payments"},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, k := range []string{"JWT_SECRET", "DATABASE_URL", "DATA_STORE_TYPE"} {
				t.Setenv(k, "")
				os.Unsetenv(k)
			}
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantBackup, cfg.UseBackupStore())
			assert.Equal(t, 8080, cfg.Port)
		})
	}
}
