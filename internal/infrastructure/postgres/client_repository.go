package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

const clientColumns = `id, name, dni, representative, representative_dni, email, address, phone, plan, abono, hours, created_date`

// ClientRepo implementación de ClientRepository (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	err := row.Scan(
		&c.ID, &c.Name, &c.DNI, &c.Representative, &c.RepresentativeDNI,
		&c.Email, &c.Address, &c.Phone, &c.Plan, &c.Abono, &c.Hours, &c.CreatedDate,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List devuelve todos los clientes en orden ascendente de id.
func (r *ClientRepo) List(ctx context.Context) ([]*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY id ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// GetByID obtiene un cliente por id. Devuelve (nil, nil) si no existe.
func (r *ClientRepo) GetByID(ctx context.Context, id int64) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	c, err := scanClient(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

// Create inserta el cliente; id y created_date los asigna la base de datos.
func (r *ClientRepo) Create(ctx context.Context, client *entity.Client) error {
	query := `
		INSERT INTO clients
			(name, dni, representative, representative_dni, email, address, phone, plan, abono, hours)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_date`
	err := r.q.QueryRow(ctx, query,
		client.Name, client.DNI, client.Representative, client.RepresentativeDNI,
		client.Email, client.Address, client.Phone, client.Plan, client.Abono, client.Hours,
	).Scan(&client.ID, &client.CreatedDate)
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// Update arma la lista SET dinámica a partir del patch y ejecuta un único
// UPDATE ... RETURNING. Devuelve (nil, nil) si el id no existe.
func (r *ClientRepo) Update(ctx context.Context, id int64, patch entity.ClientPatch) (*entity.Client, error) {
	var sets []string
	var args []any

	add := func(col string, val any) {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	addText := func(col string, tp entity.TextPatch) {
		if tp.Set {
			add(col, tp.Value) // nil limpia a NULL
		}
	}
	addText("dni", patch.DNI)
	addText("representative", patch.Representative)
	addText("representative_dni", patch.RepresentativeDNI)
	addText("email", patch.Email)
	addText("address", patch.Address)
	addText("phone", patch.Phone)
	if patch.Plan != nil {
		add("plan", *patch.Plan)
	}
	if patch.Abono != nil {
		add("abono", *patch.Abono)
	}
	if patch.Hours != nil {
		add("hours", *patch.Hours)
	}

	if len(sets) == 0 {
		return nil, fmt.Errorf("update client: patch vacío")
	}

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE clients SET %s WHERE id = $%d RETURNING `+clientColumns,
		strings.Join(sets, ", "), len(args),
	)
	c, err := scanClient(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update client: %w", err)
	}
	return c, nil
}

// Delete elimina y devuelve la fila previa. Devuelve (nil, nil) si no existe.
func (r *ClientRepo) Delete(ctx context.Context, id int64) (*entity.Client, error) {
	query := `DELETE FROM clients WHERE id = $1 RETURNING ` + clientColumns
	c, err := scanClient(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete client: %w", err)
	}
	return c, nil
}

// IncrementHours suma delta en una única sentencia atómica para que
// incrementos concurrentes sobre el mismo cliente no pierdan actualizaciones.
func (r *ClientRepo) IncrementHours(ctx context.Context, id int64, delta int) (*entity.Client, error) {
	query := `UPDATE clients SET hours = hours + $1 WHERE id = $2 RETURNING ` + clientColumns
	c, err := scanClient(r.q.QueryRow(ctx, query, delta, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("increment hours: %w", err)
	}
	return c, nil
}
