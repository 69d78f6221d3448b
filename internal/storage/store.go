package storage

import "context"

// Collection names used by the application.
const (
	CollectionMenu   = "menu"
	CollectionOrders = "orders"
)

// Store persists named collections as JSON under namespaced keys. A
// collection is always written and read whole; there are no partial updates.
type Store interface {
	// Save serializes v and writes it under the namespaced collection key.
	Save(ctx context.Context, collection string, v any) error

	// Load reads the collection into dest. It returns false when the
	// collection was never written; a corrupt payload is treated the same
	// way so a bad record can not wedge startup.
	Load(ctx context.Context, collection string, dest any) (bool, error)

	Close() error
}

// key builds the namespaced storage key, e.g. "canteen_menu".
func key(namespace, collection string) string {
	return namespace + "_" + collection
}
