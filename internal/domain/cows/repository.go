package cows

import "context"

// Repository es el Entity Store de vacas. Escribe documentos completos,
// linkedCalves incluido (reemplazo, nunca merge).
type Repository interface {
	Create(ctx context.Context, c Cow) error
	Update(ctx context.Context, c Cow) error
	GetByID(ctx context.Context, id string) (Cow, error)
	GetByName(ctx context.Context, name string) (Cow, error)
	List(ctx context.Context, filter Filter) ([]Cow, error)
	Delete(ctx context.Context, id string) error
}
