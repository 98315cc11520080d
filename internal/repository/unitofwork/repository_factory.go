package unitofwork

import "context"

// RepositoryFactory creates units of work bound to a request context.
type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}
