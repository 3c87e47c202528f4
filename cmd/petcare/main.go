package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pet-care-insights/internal/cli"
)

// @title Pet Care Insights API
// @version 1.0
// @description Motor de análisis de cuidado y agregador de detección de mascotas por imagen.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
