package client

import (
	"context"

	"github.com/dmitrijs2005/artlog/internal/client/models"
)

//go:generate mockgen -source=client.go -destination=mocks/gateway.go -package=mocks

// Lister returns the full collection of one entity kind.
type Lister[E any] interface {
	List(ctx context.Context) ([]E, error)
}

// Gateway is the remote contract for one entity kind: E is the entity
// returned by the service and R the request body sent for create/update.
type Gateway[E any, R any] interface {
	List(ctx context.Context) ([]E, error)
	Create(ctx context.Context, req R) (E, error)
	Update(ctx context.Context, id int64, req R) (E, error)
	Delete(ctx context.Context, id int64) error
}

// AuthClient is the login boundary of the remote service.
type AuthClient interface {
	Login(ctx context.Context, req models.LoginRequest) (models.Identity, error)
}
