// Package health exposes the service health endpoint.
package health

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/tkoski/breeze-bridge/internal/platform/logging"
	"github.com/tkoski/breeze-bridge/internal/service/breeze"
)

const breezeProbeTimeout = 5 * time.Second

// Register wires the health route into the provided API router.
func Register(api huma.API, svc breeze.Service) {
	huma.Get(api, "/health", func(ctx context.Context, _ *struct{}) (*Output, error) {
		probeCtx, cancel := context.WithTimeout(ctx, breezeProbeTimeout)
		defer cancel()

		data := Data{Status: "ok", Breeze: "ok"}
		if _, err := svc.AccountSummary(probeCtx); err != nil {
			applog.LogWarn(ctx, "breeze health probe failed", zap.Error(err))
			data.Breeze = "unreachable"
		}
		return &Output{Body: data}, nil
	})
}
