package repository

import (
	"context"

	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Client.
// Las operaciones por id devuelven (nil, nil) cuando el registro no existe.
type ClientRepository interface {
	// List devuelve todos los clientes en orden ascendente de id.
	List(ctx context.Context) ([]*entity.Client, error)
	GetByID(ctx context.Context, id int64) (*entity.Client, error)
	// Create inserta el cliente y completa ID y CreatedDate desde la base.
	Create(ctx context.Context, client *entity.Client) error
	// Update aplica un patch parcial en un único UPDATE y devuelve la fila resultante.
	Update(ctx context.Context, id int64, patch entity.ClientPatch) (*entity.Client, error)
	// Delete elimina y devuelve la fila previa al borrado.
	Delete(ctx context.Context, id int64) (*entity.Client, error)
	// IncrementHours suma delta a hours en una única sentencia atómica
	// (hours = hours + delta), nunca leer-modificar-escribir.
	IncrementHours(ctx context.Context, id int64, delta int) (*entity.Client, error)
}
