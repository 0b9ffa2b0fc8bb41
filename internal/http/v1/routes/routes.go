// Package routes assembles the v1 API surface.
package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/tkoski/breeze-bridge/internal/http/v1/events"
	"github.com/tkoski/breeze-bridge/internal/http/v1/giving"
	"github.com/tkoski/breeze-bridge/internal/http/v1/health"
	"github.com/tkoski/breeze-bridge/internal/http/v1/people"
	"github.com/tkoski/breeze-bridge/internal/service/breeze"
)

// Register wires all HTTP routes into the provided API router.
func Register(api huma.API, svc breeze.Service) {
	health.Register(api, svc)
	people.Register(api, svc)
	giving.Register(api, svc)
	events.Register(api, svc)
}
