package usecase

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/jhoicas/holding-tracker/internal/application/dto"
	"github.com/jhoicas/holding-tracker/internal/domain/entity"
	"github.com/jhoicas/holding-tracker/internal/domain/repository"
	"github.com/jhoicas/holding-tracker/pkg/jwt"
	"github.com/jhoicas/holding-tracker/pkg/logger"
)

// Tablas visibles en el panel de administración.
const (
	TableCompanies    = "companies"
	TableSubsidiaries = "subsidiaries"
	TableClients      = "clients"
	TableContracts    = "contracts"
)

// WipeSettings firma y vigencia del token de confirmación del borrado.
type WipeSettings struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// AdminUseCase volcado de tablas y borrado total en dos pasos.
type AdminUseCase struct {
	store repository.Store
	wipe  WipeSettings
	log   *logger.Logger
	now   func() time.Time

	// jti del último token emitido; vacío si no hay borrado habilitado.
	mu         sync.Mutex
	pendingJTI string
}

// NewAdminUseCase construye el caso de uso.
func NewAdminUseCase(store repository.Store, wipe WipeSettings, log *logger.Logger) *AdminUseCase {
	return &AdminUseCase{store: store, wipe: wipe, log: log, now: time.Now}
}

// Table devuelve el contenido de una de las cuatro tablas. Nombre desconocido → domain.ErrInvalidInput.
func (uc *AdminUseCase) Table(ctx context.Context, table string) (*dto.RawTableResponse, error) {
	repos := uc.store.Repositories()
	switch table {
	case TableCompanies:
		return companiesTable(ctx, repos)
	case TableSubsidiaries:
		return subsidiariesTable(ctx, repos)
	case TableClients:
		return clientsTable(ctx, repos)
	case TableContracts:
		return contractsTable(ctx, repos)
	default:
		return nil, invalid("tabla desconocida %q", table)
	}
}

func companiesTable(ctx context.Context, repos repository.Repositories) (*dto.RawTableResponse, error) {
	list, err := repos.Companies.List(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.RawTableResponse{Table: TableCompanies, Columns: []string{"id", "name", "is_parent", "created_at"}, Rows: [][]string{}}
	for _, c := range list {
		out.Rows = append(out.Rows, []string{formatID(c.ID), c.Name, strconv.FormatBool(c.IsParent), timestamp(c.CreatedAt)})
	}
	return out, nil
}

func subsidiariesTable(ctx context.Context, repos repository.Repositories) (*dto.RawTableResponse, error) {
	companies, err := repos.Companies.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(companies))
	for _, c := range companies {
		names[c.ID] = c.Name
	}
	list, err := repos.Subsidiaries.List(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.RawTableResponse{Table: TableSubsidiaries, Columns: []string{"id", "name", "company", "created_at"}, Rows: [][]string{}}
	for _, s := range list {
		out.Rows = append(out.Rows, []string{formatID(s.ID), s.Name, names[s.CompanyID], timestamp(s.CreatedAt)})
	}
	return out, nil
}

func clientsTable(ctx context.Context, repos repository.Repositories) (*dto.RawTableResponse, error) {
	list, err := repos.Clients.List(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.RawTableResponse{Table: TableClients, Columns: []string{"id", "name", "contact", "email", "created_at"}, Rows: [][]string{}}
	for _, c := range list {
		out.Rows = append(out.Rows, []string{formatID(c.ID), c.Name, c.Contact, c.Email, timestamp(c.CreatedAt)})
	}
	return out, nil
}

func contractsTable(ctx context.Context, repos repository.Repositories) (*dto.RawTableResponse, error) {
	subNames, clientNames, err := nameIndexes(ctx, repos)
	if err != nil {
		return nil, err
	}
	list, err := repos.Contracts.List(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.RawTableResponse{
		Table: TableContracts,
		Columns: []string{
			"id", "title", "subsidiary", "client", "status", "contract_value", "retainer",
			"percent_to_subsidiary", "signed_date", "start_date", "end_date", "notes",
		},
		Rows: [][]string{},
	}
	for _, c := range list {
		out.Rows = append(out.Rows, []string{
			formatID(c.ID), c.Title, subNames[c.SubsidiaryID], clientNames[c.ClientID], c.Status,
			money(c.ContractValue), money(c.Retainer), money(c.PercentToSubsidiary),
			entity.FormatDate(c.SignedDate), entity.FormatDate(c.StartDate), entity.FormatDate(c.EndDate), c.Notes,
		})
	}
	return out, nil
}

// EnableWipe primer paso del borrado: emite un token de confirmación de corta vida.
// Un token nuevo invalida al anterior.
func (uc *AdminUseCase) EnableWipe(_ context.Context) (*dto.WipeTokenResponse, error) {
	now := uc.now()
	token, err := jwt.Generate(uc.wipe.Secret, uc.wipe.Issuer, jwt.PurposeWipe, uc.wipe.TTL, now)
	if err != nil {
		return nil, err
	}
	claims, err := jwt.Parse(uc.wipe.Secret, jwt.PurposeWipe, token)
	if err != nil {
		return nil, err
	}
	uc.mu.Lock()
	uc.pendingJTI = claims.ID
	uc.mu.Unlock()
	uc.log.Warn().Dur("ttl", uc.wipe.TTL).Msg("borrado total habilitado, pendiente de confirmación")
	return &dto.WipeTokenResponse{Token: token, ExpiresAt: now.Add(uc.wipe.TTL).UTC()}, nil
}

// ConfirmWipe segundo paso: con un token válido borra todas las filas de todas las tablas.
// El token se consume al usarlo: una segunda confirmación exige otro EnableWipe.
// Token ausente, vencido, inválido o ya usado → domain.ErrInvalidInput y no se borra nada.
func (uc *AdminUseCase) ConfirmWipe(ctx context.Context, in dto.WipeConfirmRequest) (*dto.WipeResultResponse, error) {
	if in.Token == "" {
		return nil, invalid("falta el token de confirmación")
	}
	claims, err := jwt.Parse(uc.wipe.Secret, jwt.PurposeWipe, in.Token)
	if err != nil {
		return nil, invalid("token de confirmación inválido o vencido")
	}
	if !uc.consume(claims.ID) {
		return nil, invalid("token de confirmación ya usado o reemplazado")
	}
	if err := uc.store.WipeAll(ctx); err != nil {
		return nil, err
	}
	uc.log.Warn().Msg("base de datos borrada por completo")
	return &dto.WipeResultResponse{Wiped: true}, nil
}

func (uc *AdminUseCase) consume(jti string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if jti == "" || jti != uc.pendingJTI {
		return false
	}
	uc.pendingJTI = ""
	return true
}

func formatID(v int64) string {
	return strconv.FormatInt(v, 10)
}

func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
