package store

import "github.com/calkeep/go-cal-keeper/internal/logger"

// Repositories aggregates all data-access layers used by the services.
type Repositories struct {
	UserRepository  UserRepository
	EventRepository EventRepository
}

// NewRepositories wires every repository to the shared database connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:  NewUserRepository(db, logger),
		EventRepository: NewEventRepository(db, logger),
	}
}
