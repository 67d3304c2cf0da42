package calves

import "context"

// Repository es el Entity Store de terneros.
// Create/Update devuelven livestock.ErrDuplicateKey si name o calfId chocan con otro registro.
type Repository interface {
	Create(ctx context.Context, c Calf) error
	Update(ctx context.Context, c Calf) error
	GetByID(ctx context.Context, id string) (Calf, error)
	List(ctx context.Context, filter Filter) ([]Calf, error)
	// Delete también quita el ternero de los linkedCalves de cualquier vaca.
	Delete(ctx context.Context, id string) error
}
