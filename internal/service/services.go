package service

import (
	"github.com/calkeep/go-cal-keeper/internal/config"
	"github.com/calkeep/go-cal-keeper/internal/logger"
	"github.com/calkeep/go-cal-keeper/internal/store"
)

// Services aggregates every domain service exposed to the handler layer.
type Services struct {
	AuthService  AuthService
	EventService EventService
}

// NewServices wires the services to their repositories.
func NewServices(repositories *store.Repositories, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	authService := NewAuthService(repositories.UserRepository, cfg.App, logger)

	return &Services{
		AuthService:  authService,
		EventService: NewEventService(authService, repositories.EventRepository, logger),
	}
}
