package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/focusflow/internal/focusflow/store"
	"github.com/aussiebroadwan/focusflow/pkg/focussdk"
	"github.com/aussiebroadwan/focusflow/pkg/httpx"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe. Reports degraded with 503 when the database cannot be reached.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	focussdk.HealthResponse	"status, uptime, version"
//	@Failure		503	{object}	focussdk.HealthResponse	"status, uptime, version, error"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := focussdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		}
		code := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			resp.Status = "degraded"
			resp.Error = "database: " + err.Error()
			code = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, resp)
	}
}
