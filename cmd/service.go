package cmd

import (
	"net"
	"net/http"

	"github.com/isometry/tag-enforcer/internal/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func cmdService() *cobra.Command {
	return &cobra.Command{
		Use:     "service",
		Aliases: []string{"s", "serve", "standalone", "server"},
		Short:   "Serve the enforcer on a local HTTP endpoint",
		RunE: runService,
	}
}

func runService(cmd *cobra.Command, _ []string) error {
	logger.Info("Spawning...")
	rt, err := setup(cmd)
	if err != nil {
		return errors.Wrap(err, "failed to setup service")
	}

	logger.Debug("Creating HTTP server...")
	h := http.NewServeMux()
	h.Handle(config.Service.Path, rt)

	s := &http.Server{
		Handler:      h,
		Addr:         net.JoinHostPort(config.Service.Addr, config.Service.Port),
		WriteTimeout: config.Service.Timeout,
		ReadTimeout:  config.Service.Timeout,
		IdleTimeout:  config.Service.Timeout,
	}

	logger.Info("Serving...", "address", s.Addr, "path", config.Service.Path, "timeout", config.Service.Timeout.String())
	return s.ListenAndServe()
}
