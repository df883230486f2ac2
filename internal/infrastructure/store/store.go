// Package store implementa la persistencia de colecciones del almacén como un
// blob store: cada colección lógica se carga y guarda completa (sin escrituras
// parciales), con backends intercambiables (archivo, Redis, PostgreSQL,
// memoria). Semántica de un solo proceso: gana el último escritor.
package store

import "context"

// Kinds de colección persistidas. Se conservan las claves del sistema original.
const (
	KindProducts  = "almacen_products"
	KindMovements = "almacen_movements"
	KindIncidents = "almacen_incidents"
	KindUsers     = "almacen_app_users"
	KindConfig    = "almacen_config"
	KindSession   = "almacen_current_user"
)

// BlobStore es el puerto mínimo de persistencia: un blob opaco por kind.
// Load devuelve (nil, nil) cuando el kind nunca se ha guardado.
type BlobStore interface {
	Load(ctx context.Context, kind string) ([]byte, error)
	Save(ctx context.Context, kind string, data []byte) error
	Delete(ctx context.Context, kind string) error
}
