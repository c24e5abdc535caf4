package usecase

import (
	"context"
	"fmt"
	"net/mail"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// phonePattern formatos de teléfono aceptados: internacional con "+" y 10 a
// 15 dígitos, o el formato local 123-456-7890.
var phonePattern = regexp.MustCompile(`^(\+\d{10,15}|\d{3}-\d{3}-\d{4})$`)

// CustomerUseCase casos de uso del CRM para clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create valida y persiste un cliente nuevo. Los mensajes de error son
// fijos: forman parte del contrato visible de la API.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerInput) (*dto.CustomerResponse, error) {
	if in.Name == "" || in.Email == "" {
		return nil, domain.NewValidation("Name and email are required")
	}
	if !isValidEmail(in.Email) {
		return nil, domain.NewValidation("Invalid email format")
	}
	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewConflict("Email already exists")
	}
	if in.Phone != "" && !phonePattern.MatchString(in.Phone) {
		return nil, domain.NewValidation("Invalid phone format. Use +1234567890 or 123-456-7890")
	}
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// BulkCreate procesa cada fila de forma aislada y secuencial: las filas
// válidas se persisten aunque otras fallen. Cada falla produce un error
// "Row <n>: <motivo>" con n empezando en 1; el orden de los errores sigue
// el orden de las filas.
func (uc *CustomerUseCase) BulkCreate(ctx context.Context, in []dto.CreateCustomerInput) (*dto.BulkCreateCustomersResult, error) {
	result := &dto.BulkCreateCustomersResult{
		Customers: make([]*dto.CustomerResponse, 0, len(in)),
		Errors:    []string{},
	}
	for i, row := range in {
		created, err := uc.createRow(ctx, row)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %s", i+1, rowReason(err)))
			continue
		}
		result.Customers = append(result.Customers, created)
	}
	return result, nil
}

// createRow valida y persiste una fila de la carga masiva. Usa mensajes
// cortos ("Invalid phone format") a diferencia de Create.
func (uc *CustomerUseCase) createRow(ctx context.Context, in dto.CreateCustomerInput) (*dto.CustomerResponse, error) {
	if in.Name == "" || in.Email == "" {
		return nil, domain.NewValidation("Name and email are required")
	}
	if !isValidEmail(in.Email) {
		return nil, domain.NewValidation("Invalid email format")
	}
	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewConflict("Email already exists")
	}
	if in.Phone != "" && !phonePattern.MatchString(in.Phone) {
		return nil, domain.NewValidation("Invalid phone format")
	}
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente por ID; (nil, nil) si no existe.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List lista clientes según el filtro; nil lista todo en orden de inserción.
func (uc *CustomerUseCase) List(ctx context.Context, filter *repository.CustomerFilter) ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// rowReason mensaje visible de una falla de fila. Las fallas internas no
// exponen detalles de infraestructura.
func rowReason(err error) string {
	if domain.KindOf(err) == domain.KindInternal {
		return "Internal server error"
	}
	return err.Error()
}

// isValidEmail valida la sintaxis del email. Se exige la forma desnuda
// "usuario@dominio", sin nombre para mostrar.
func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	resp := &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	}
	if c.Phone != "" {
		phone := c.Phone
		resp.Phone = &phone
	}
	return resp
}
