package usecase

import (
	"github.com/tu-usuario/logistica-api/internal/application/auth"
	"github.com/tu-usuario/logistica-api/internal/application/dto"
	"github.com/tu-usuario/logistica-api/internal/domain"
	"github.com/tu-usuario/logistica-api/internal/domain/repository"
)

// UserUseCase reglas de negocio para la administración de usuarios.
// El alta delega en auth (misma validación y hasheo que el registro).
type UserUseCase struct {
	repo   repository.UserRepository
	authUC *auth.AuthUseCase
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, authUC *auth.AuthUseCase) *UserUseCase {
	return &UserUseCase{repo: repo, authUC: authUC}
}

// Create da de alta un usuario con rol del conjunto cerrado.
func (uc *UserUseCase) Create(in dto.RegisterRequest) (*dto.UserResponse, error) {
	return uc.authUC.RegisterUser(in)
}

// List devuelve la página solicitada con totalItems y totalPages.
func (uc *UserUseCase) List(page dto.PageQuery) (*dto.PagedResponse, error) {
	page.Defaults()
	users, total, err := uc.repo.List(page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	data := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		data = append(data, *auth.ToUserResponse(u))
	}
	resp := dto.NewPagedResponse(data, total, page.Limit)
	return &resp, nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(id int64) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return auth.ToUserResponse(user), nil
}
