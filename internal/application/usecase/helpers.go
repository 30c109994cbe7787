package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/holding-tracker/internal/application/dto"
	"github.com/jhoicas/holding-tracker/internal/domain"
	"github.com/jhoicas/holding-tracker/internal/domain/entity"
	"github.com/shopspring/decimal"
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, fmt.Sprintf(format, args...))
}

func notFound(kind string, id int64) error {
	return fmt.Errorf("%w: %s %d", domain.ErrNotFound, kind, id)
}

func duplicate(kind, name string) error {
	return fmt.Errorf("%w: %s %q", domain.ErrDuplicate, kind, name)
}

// parseOptionalDate interpreta YYYY-MM-DD; cadena vacía = sin fecha.
func parseOptionalDate(field, s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		return nil, invalid("%s debe tener formato YYYY-MM-DD", field)
	}
	return &t, nil
}

// parseDateOrToday interpreta YYYY-MM-DD; cadena vacía = hoy.
func parseDateOrToday(field, s string, now time.Time) (time.Time, error) {
	t, err := parseOptionalDate(field, s)
	if err != nil {
		return time.Time{}, err
	}
	if t == nil {
		return entity.DateOnly(now), nil
	}
	return *t, nil
}

func formatDay(t time.Time) string {
	return t.Format(entity.DateLayout)
}

func toCompanyResponse(c *entity.Company) dto.CompanyResponse {
	return dto.CompanyResponse{ID: c.ID, Name: c.Name, IsParent: c.IsParent, CreatedAt: c.CreatedAt}
}

func toSubsidiaryResponse(s *entity.Subsidiary, companyName string) dto.SubsidiaryResponse {
	return dto.SubsidiaryResponse{
		ID:          s.ID,
		Name:        s.Name,
		CompanyID:   s.CompanyID,
		CompanyName: companyName,
		CreatedAt:   s.CreatedAt,
	}
}

func toClientResponse(c *entity.Client) dto.ClientResponse {
	return dto.ClientResponse{ID: c.ID, Name: c.Name, Contact: c.Contact, Email: c.Email, CreatedAt: c.CreatedAt}
}

func toContractResponse(c *entity.Contract) dto.ContractResponse {
	return dto.ContractResponse{
		ID:                  c.ID,
		Title:               c.Title,
		SubsidiaryID:        c.SubsidiaryID,
		ClientID:            c.ClientID,
		SignedDate:          entity.FormatDate(c.SignedDate),
		StartDate:           entity.FormatDate(c.StartDate),
		EndDate:             entity.FormatDate(c.EndDate),
		ContractValue:       c.ContractValue,
		Retainer:            c.Retainer,
		PercentToSubsidiary: c.PercentToSubsidiary,
		Status:              c.Status,
		Notes:               c.Notes,
		CreatedAt:           c.CreatedAt,
	}
}

func toRevenueResponse(r *entity.Revenue) dto.LedgerEntryResponse {
	return dto.LedgerEntryResponse{
		ID: r.ID, ContractID: r.ContractID, Amount: r.Amount, Date: formatDay(r.Date), Description: r.Description,
	}
}

func toExpenseResponse(e *entity.Expense) dto.LedgerEntryResponse {
	return dto.LedgerEntryResponse{
		ID: e.ID, ContractID: e.ContractID, Amount: e.Amount, Date: formatDay(e.Date), Description: e.Description,
	}
}

func toEquityAwardResponse(a *entity.EquityAward) dto.EquityAwardResponse {
	return dto.EquityAwardResponse{
		ID: a.ID, ContractID: a.ContractID, Recipient: a.Recipient, Percent: a.Percent, Date: formatDay(a.Date), Notes: a.Notes,
	}
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
