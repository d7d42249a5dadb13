package observability

import (
	"context"
	"testing"

	"github.com/riskibarqy/football-tournament/internal/config"
	"github.com/riskibarqy/football-tournament/internal/platform/logging"
)

func TestInitUptrace_Disabled(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{
			name: "flag off",
			cfg: config.Config{
				UptraceEnabled: false,
				ServiceName:    "football-tournament-api",
				ServiceVersion: "dev",
				AppEnv:         config.EnvDev,
			},
		},
		{
			name: "empty dsn",
			cfg: config.Config{
				UptraceEnabled: true,
				UptraceDSN:     "  ",
				ServiceName:    "football-tournament-api",
				AppEnv:         config.EnvDev,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shutdown, err := InitUptrace(tt.cfg, logging.NewNop())
			if err != nil {
				t.Fatalf("init uptrace: %v", err)
			}
			if err := shutdown(context.Background()); err != nil {
				t.Fatalf("shutdown uptrace: %v", err)
			}
		})
	}
}
