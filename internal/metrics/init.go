package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

// Serve exposes the default registry on '/metrics' at the given port.
// It blocks until the server fails.
func Serve(port int) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	log.Info().Int("port", port).Msg("serving metrics")
	return http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
}
