package clients

import (
	"context"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/plan"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

// UseCase casos de uso del registro de clientes. Toda la validación ocurre
// antes de tocar el almacén; los parsers están en parse.go.
type UseCase struct {
	repo    repository.ClientRepository
	catalog plan.Catalog
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ClientRepository, catalog plan.Catalog) *UseCase {
	return &UseCase{repo: repo, catalog: catalog}
}

// ParseID valida un id de la ruta: solo enteros positivos.
func ParseID(raw string) (int64, bool) {
	return parseID(raw)
}

// enrich convierte la entidad en su proyección de lectura: planInfo resuelto
// del catálogo (null si el plan ya no existe) y métricas derivadas.
func (uc *UseCase) enrich(c *entity.Client) *dto.ClientResponse {
	var info *plan.Info
	var infoResp *dto.PlanInfoResponse
	if pi, ok := uc.catalog.Get(c.Plan); ok {
		info = &pi
		infoResp = &dto.PlanInfoResponse{
			Price: pi.Price.InexactFloat64(),
			Hours: pi.Hours,
			Label: pi.Label,
		}
	}
	return &dto.ClientResponse{
		ID:                c.ID,
		Name:              c.Name,
		DNI:               c.DNI,
		Representative:    c.Representative,
		RepresentativeDNI: c.RepresentativeDNI,
		Email:             c.Email,
		Address:           c.Address,
		Phone:             c.Phone,
		Plan:              c.Plan,
		Abono:             c.Abono.InexactFloat64(),
		Hours:             c.Hours,
		CreatedDate:       c.CreatedDate.Format("2006-01-02"),
		PlanInfo:          infoResp,
		RemainingHours:    plan.RemainingHours(info, c.Hours),
		RemainingBalance:  plan.RemainingBalance(info, c.Abono).InexactFloat64(),
		Finished:          plan.Finished(info, c.Hours),
	}
}

// List devuelve todos los clientes enriquecidos en orden ascendente de id.
func (uc *UseCase) List(ctx context.Context) ([]*dto.ClientResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, uc.enrich(c))
	}
	return out, nil
}

// Get devuelve un cliente enriquecido.
func (uc *UseCase) Get(ctx context.Context, id int64) (*dto.ClientResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return uc.enrich(c), nil
}

// optText parsea un campo de texto opcional del alta a su valor almacenable
// (nil = NULL). Un valor que no sea cadena es error de validación.
func optText(r dto.Raw, field string) (*string, error) {
	tp, ok := parseText(r)
	if !ok {
		return nil, domain.Validation(field + " inválido")
	}
	return tp.Value, nil
}

// Create valida y persiste un cliente nuevo. name y plan son obligatorios;
// abono y hours toleran valores malformados y caen a 0 (formularios).
func (uc *UseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	name, ok := parseName(in.Name)
	if !ok {
		return nil, domain.Validation("Nombre es requerido")
	}
	planKey, ok := parseString(in.Plan)
	if !ok || !uc.catalog.Has(planKey) {
		return nil, domain.Validation("Plan inválido")
	}

	client := &entity.Client{Name: name, Plan: planKey}
	var err error
	if client.DNI, err = optText(in.DNI, "dni"); err != nil {
		return nil, err
	}
	if client.Representative, err = optText(in.Representative, "representative"); err != nil {
		return nil, err
	}
	if client.RepresentativeDNI, err = optText(in.RepresentativeDNI, "representative_dni"); err != nil {
		return nil, err
	}
	if client.Email, err = optText(in.Email, "email"); err != nil {
		return nil, err
	}
	if client.Address, err = optText(in.Address, "address"); err != nil {
		return nil, err
	}
	if client.Phone, err = optText(in.Phone, "phone"); err != nil {
		return nil, err
	}

	client.Abono = parseMoneyLax(in.Abono)
	client.Hours = parseHoursLax(in.Hours)

	if err := uc.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return uc.enrich(client), nil
}

// Update aplica una actualización parcial: solo los campos presentes en el
// body se modifican. A diferencia del alta, abono y hours son estrictos aquí.
func (uc *UseCase) Update(ctx context.Context, id int64, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	var patch entity.ClientPatch

	if in.Name.Set {
		name, ok := parseName(in.Name)
		if !ok {
			return nil, domain.Validation("Nombre no puede estar vacío")
		}
		patch.Name = &name
	}

	texts := []struct {
		raw   dto.Raw
		field string
		dst   *entity.TextPatch
	}{
		{in.DNI, "dni", &patch.DNI},
		{in.Representative, "representative", &patch.Representative},
		{in.RepresentativeDNI, "representative_dni", &patch.RepresentativeDNI},
		{in.Email, "email", &patch.Email},
		{in.Address, "address", &patch.Address},
		{in.Phone, "phone", &patch.Phone},
	}
	for _, t := range texts {
		tp, ok := parseText(t.raw)
		if !ok {
			return nil, domain.Validation(t.field + " inválido")
		}
		*t.dst = tp
	}

	if in.Plan.Set {
		planKey, ok := parseString(in.Plan)
		if !ok || !uc.catalog.Has(planKey) {
			return nil, domain.Validation("Plan inválido")
		}
		patch.Plan = &planKey
	}

	if in.Abono.Set {
		abono, ok := parseMoney(in.Abono)
		if !ok {
			return nil, domain.Validation("abono inválido")
		}
		patch.Abono = &abono
	}

	if in.Hours.Set {
		hours, ok := parseHours(in.Hours)
		if !ok {
			return nil, domain.Validation("hours inválidas")
		}
		patch.Hours = &hours
	}

	if patch.IsZero() {
		return nil, domain.Validation("No fields to update")
	}

	c, err := uc.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return uc.enrich(c), nil
}

// Delete elimina un cliente y devuelve la fila previa al borrado enriquecida.
func (uc *UseCase) Delete(ctx context.Context, id int64) (*dto.ClientResponse, error) {
	c, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return uc.enrich(c), nil
}

// IncrementHours suma delta (1..24, por defecto 1) de forma atómica en el
// almacén. No rechaza clientes con plan terminado: ese gating es del caller,
// que ya recibe finished en cada respuesta.
func (uc *UseCase) IncrementHours(ctx context.Context, id int64, delta dto.Raw) (*dto.ClientResponse, error) {
	d, ok := parseDelta(delta)
	if !ok {
		return nil, domain.Validation("delta inválido (int entre 1 y 24)")
	}
	c, err := uc.repo.IncrementHours(ctx, id, d)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return uc.enrich(c), nil
}
