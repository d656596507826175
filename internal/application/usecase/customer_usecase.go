package usecase

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/tu-usuario/logistica-api/internal/application/dto"
	"github.com/tu-usuario/logistica-api/internal/domain"
	"github.com/tu-usuario/logistica-api/internal/domain/entity"
	"github.com/tu-usuario/logistica-api/internal/domain/repository"
	"github.com/tu-usuario/logistica-api/pkg/phone"
)

// MinSearchLen mínimo de caracteres para que el typeahead dispare una búsqueda.
const MinSearchLen = 2

// SearchLimit tope de opciones devueltas por el typeahead.
const SearchLimit = 10

// CustomerUseCase reglas de negocio de clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso con el puerto de persistencia.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create valida, normaliza el teléfono a +52 y asigna un número de cliente
// de 6 dígitos. Reintenta el número ante colisión de unicidad.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" || in.FiscalData == "" || in.Address == "" {
		return nil, domain.ErrInvalidInput
	}
	normalized, err := phone.Normalize(in.Phone)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	customer := &entity.Customer{
		Name:       in.Name,
		FiscalData: in.FiscalData,
		Address:    in.Address,
		Phone:      normalized,
	}
	// El número de cliente es aleatorio de 6 dígitos; ante duplicado se
	// sortea otro. Más de unos pocos reintentos indica un problema real.
	for attempt := 0; ; attempt++ {
		customer.CustomerNumber = newCustomerNumber()
		err = uc.repo.Create(customer)
		if err == nil {
			break
		}
		if err != domain.ErrDuplicate || attempt >= 4 {
			return nil, err
		}
	}
	return toCustomerResponse(customer), nil
}

// List devuelve la página solicitada con totalItems y totalPages.
func (uc *CustomerUseCase) List(page dto.PageQuery) (*dto.PagedResponse, error) {
	page.Defaults()
	customers, total, err := uc.repo.List(page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	data := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		data = append(data, *toCustomerResponse(c))
	}
	resp := dto.NewPagedResponse(data, total, page.Limit)
	return &resp, nil
}

// Search typeahead por nombre o número de cliente. Términos de menos de
// 2 caracteres se rechazan sin tocar la base.
func (uc *CustomerUseCase) Search(term string) ([]dto.CustomerOption, error) {
	term = strings.TrimSpace(term)
	if len([]rune(term)) < MinSearchLen {
		return nil, domain.ErrInvalidInput
	}
	customers, err := uc.repo.Search(NormalizeSearchTerm(term), SearchLimit)
	if err != nil {
		return nil, err
	}
	options := make([]dto.CustomerOption, 0, len(customers))
	for _, c := range customers {
		options = append(options, dto.CustomerOption{
			CustomerNumber: c.CustomerNumber,
			Name:           c.Name,
		})
	}
	return options, nil
}

// GetByCustomerNumber obtiene un cliente por su número público.
func (uc *CustomerUseCase) GetByCustomerNumber(customerNumber string) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByCustomerNumber(customerNumber)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(c), nil
}

// NormalizeSearchTerm baja a minúsculas y elimina acentos para que la búsqueda
// no distinga "Jose" de "José".
func NormalizeSearchTerm(term string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.ToLower(term))
	if err != nil {
		return strings.ToLower(term)
	}
	return out
}

func newCustomerNumber() string {
	return fmt.Sprintf("%06d", 100000+rand.Intn(900000))
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:             c.ID,
		CustomerNumber: c.CustomerNumber,
		Name:           c.Name,
		FiscalData:     c.FiscalData,
		Address:        c.Address,
		Phone:          c.Phone,
		Deleted:        c.Deleted,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
