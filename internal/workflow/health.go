package workflow

import (
	"context"
	"time"

	"certgen/internal/logging"
	"certgen/internal/services/certapi"
)

const healthCheckTimeout = 5 * time.Second

// CheckHealth probes the backend diagnostic endpoint on a detached
// goroutine. The result is logged and discarded; it never touches the
// status cell and participates in no ordering guarantee with Run.
func (o *Orchestrator) CheckHealth(ctx context.Context) {
	go func() {
		probeCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
		defer cancel()

		status, err := o.client.Health(probeCtx)
		if err != nil {
			o.logger.Warn("backend health check failed",
				logging.String(logging.FieldEventType, "health_check_failed"),
				logging.String(logging.FieldEndpoint, "/health"),
				logging.Error(err),
			)
			return
		}
		o.logger.Debug("backend healthy",
			logging.String(logging.FieldEventType, "health_check_ok"),
			logging.String("backend_status", status.Status),
			logging.String("backend_env", status.Env),
		)
	}()
}

// Health performs a synchronous probe for callers that want the result.
func (o *Orchestrator) Health(ctx context.Context) (certapi.HealthStatus, error) {
	return o.client.Health(ctx)
}
