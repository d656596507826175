package usecase

import (
	"context"
	"io"
	"strconv"
	"time"

	"github.com/tu-usuario/logistica-api/internal/application/dto"
	"github.com/tu-usuario/logistica-api/internal/domain"
	"github.com/tu-usuario/logistica-api/internal/domain/entity"
	"github.com/tu-usuario/logistica-api/internal/domain/repository"
	"github.com/tu-usuario/logistica-api/pkg/workflow"
)

// TxRunner ejecuta escrituras de órdenes dentro de una transacción.
// Lo implementa postgres.TxRunner; la interfaz evita acoplar el caso de uso a pgx.
type TxRunner interface {
	Run(ctx context.Context, fn func(orders repository.OrderRepository) error) error
}

// ImageStorage guarda el archivo de una foto y devuelve su URL pública.
type ImageStorage interface {
	Save(originalName string, r io.Reader) (url string, err error)
}

// DeliveryNoteGenerator genera la nota de entrega imprimible de una orden.
type DeliveryNoteGenerator interface {
	GenerateDeliveryNote(ctx context.Context, order *entity.Order, customer *entity.Customer) ([]byte, error)
}

// OrderUseCase reglas de negocio de órdenes: alta, listado, avance de status
// bajo la política de workflow, fotos y búsqueda pública.
type OrderUseCase struct {
	orders    repository.OrderRepository
	customers repository.CustomerRepository
	tx        TxRunner
	storage   ImageStorage
	pdf       DeliveryNoteGenerator
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	orders repository.OrderRepository,
	customers repository.CustomerRepository,
	tx TxRunner,
	storage ImageStorage,
	pdf DeliveryNoteGenerator,
) *OrderUseCase {
	return &OrderUseCase{orders: orders, customers: customers, tx: tx, storage: storage, pdf: pdf}
}

// Create da de alta una orden en status Ordered. El cliente debe existir.
func (uc *OrderUseCase) Create(in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.CustomerNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customers.GetByCustomerNumber(in.CustomerNumber)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	order := &entity.Order{
		Status:          workflow.StatusOrdered,
		DeliveryAddress: in.DeliveryAddress,
		CustomerNumber:  in.CustomerNumber,
		Notes:           in.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.orders.Create(order); err != nil {
		return nil, err
	}
	return ToOrderResponse(order), nil
}

// List devuelve la página solicitada; status vacío no filtra, uno no canónico
// se rechaza antes de tocar la base.
func (uc *OrderUseCase) List(page dto.PageQuery) (*dto.PagedResponse, error) {
	page.Defaults()
	if page.Status != "" && !workflow.ValidStatus(page.Status) {
		return nil, domain.ErrInvalidInput
	}
	orders, total, err := uc.orders.List(page.Status, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	data := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		data = append(data, *ToOrderResponse(o))
	}
	resp := dto.NewPagedResponse(data, total, page.Limit)
	return &resp, nil
}

// GetByID obtiene una orden con sus fotos.
func (uc *OrderUseCase) GetByID(id int64) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil || order.Deleted {
		return nil, domain.ErrNotFound
	}
	return ToOrderResponse(order), nil
}

// Actions evalúa la política para el rol del usuario sobre la orden:
// visibilidad y etiqueta del avance, y si procede adjuntar foto.
func (uc *OrderUseCase) Actions(role string, id int64) (*dto.OrderActionsResponse, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil || order.Deleted {
		return nil, domain.ErrNotFound
	}
	d := workflow.Evaluate(role, order.Status, len(order.Images))
	return &dto.OrderActionsResponse{
		AdvanceVisible:     d.AdvanceVisible,
		ActionLabel:        d.ActionLabel,
		ImageActionVisible: d.ImageActionVisible,
		ImageLabel:         d.ImageLabel,
	}, nil
}

// Update avanza el status y/o actualiza dirección y notas. El status nuevo
// debe ser el sucesor lineal del actual y el rol debe tener permiso de avance
// sobre el status actual; cualquier otra combinación se rechaza.
// Devuelve la orden autoritativa tras persistir (sin actualización optimista).
func (uc *OrderUseCase) Update(role string, id int64, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil || order.Deleted {
		return nil, domain.ErrNotFound
	}

	if in.Status != "" && in.Status != order.Status {
		if order.Status == workflow.StatusDelivered {
			return nil, domain.ErrOrderDelivered
		}
		next, err := workflow.Next(order.Status)
		if err != nil || in.Status != next {
			return nil, domain.ErrConflict
		}
		if !workflow.CanAdvance(role, order.Status) {
			return nil, domain.ErrForbidden
		}
		order.Status = next
	}
	if in.DeliveryAddress != nil {
		order.DeliveryAddress = *in.DeliveryAddress
	}
	if in.Notes != nil {
		order.Notes = *in.Notes
	}
	order.UpdatedAt = time.Now()

	if err := uc.orders.Update(order); err != nil {
		return nil, err
	}
	return ToOrderResponse(order), nil
}

// AttachImage guarda la foto y la asocia a la orden en una sola transacción.
// La política decide quién puede: nunca en Ordered, nunca con 2 fotos,
// bodega sube la primera (loaded) y ruta la segunda (unloaded).
func (uc *OrderUseCase) AttachImage(ctx context.Context, role string, id int64, originalName string, file io.Reader) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil || order.Deleted {
		return nil, domain.ErrNotFound
	}
	count := len(order.Images)
	if count >= workflow.MaxImages {
		return nil, domain.ErrImageLimit
	}
	if !workflow.CanAttachImage(role, order.Status, count) {
		return nil, domain.ErrForbidden
	}

	url, err := uc.storage.Save(originalName, file)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	image := &entity.OrderImage{
		OrderID:     order.ID,
		ImageURL:    url,
		Description: workflow.ImageTag(count),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	order.UpdatedAt = now
	err = uc.tx.Run(ctx, func(orders repository.OrderRepository) error {
		if err := orders.AddImage(image); err != nil {
			return err
		}
		return orders.Update(order)
	})
	if err != nil {
		return nil, err
	}

	// Respuesta autoritativa: releer con la foto recién insertada.
	updated, err := uc.orders.GetByID(order.ID)
	if err != nil {
		return nil, err
	}
	return ToOrderResponse(updated), nil
}

// Lookup búsqueda pública por número de cliente (mínimo 6 dígitos) e id de
// orden (dígitos). No requiere sesión.
func (uc *OrderUseCase) Lookup(customerNumber, orderID string) (*dto.OrderResponse, error) {
	if len(customerNumber) < 6 || !allDigits(customerNumber) || !allDigits(orderID) {
		return nil, domain.ErrInvalidInput
	}
	id, err := strconv.ParseInt(orderID, 10, 64)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orders.GetByCustomerAndID(customerNumber, id)
	if err != nil {
		return nil, err
	}
	if order == nil || order.Deleted {
		return nil, domain.ErrNotFound
	}
	return ToOrderResponse(order), nil
}

// DeliveryNotePDF genera la nota de entrega imprimible de la orden.
func (uc *OrderUseCase) DeliveryNotePDF(ctx context.Context, id int64) ([]byte, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil || order.Deleted {
		return nil, domain.ErrNotFound
	}
	customer, err := uc.customers.GetByCustomerNumber(order.CustomerNumber)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateDeliveryNote(ctx, order, customer)
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ToOrderResponse mapea la entidad a su DTO de salida con fotos incluidas.
func ToOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	images := make([]dto.OrderImageResponse, 0, len(o.Images))
	for _, img := range o.Images {
		images = append(images, dto.OrderImageResponse{
			ID:          img.ID,
			ImageURL:    img.ImageURL,
			Description: img.Description,
			OrderID:     img.OrderID,
			CreatedAt:   img.CreatedAt,
			UpdatedAt:   img.UpdatedAt,
		})
	}
	return &dto.OrderResponse{
		ID:              o.ID,
		Status:          o.Status,
		DeliveryAddress: o.DeliveryAddress,
		CustomerNumber:  o.CustomerNumber,
		Notes:           o.Notes,
		Deleted:         o.Deleted,
		Images:          images,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}
