package auth

import (
	"net/mail"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/logistica-api/internal/application/dto"
	"github.com/tu-usuario/logistica-api/internal/domain"
	"github.com/tu-usuario/logistica-api/internal/domain/entity"
	"github.com/tu-usuario/logistica-api/internal/domain/repository"
	"github.com/tu-usuario/logistica-api/pkg/jwt"
	"github.com/tu-usuario/logistica-api/pkg/workflow"
)

// MinPasswordLen longitud mínima de contraseña.
const MinPasswordLen = 6

// JWTConfig configuración para generación de tokens. RememberExpMinutes aplica
// al login con recordarme.
type JWTConfig struct {
	Secret             string
	ExpMinutes         int
	RememberExpMinutes int
	Issuer             string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// RegisterUser valida los datos, hashea el password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := validateRegister(in); err != nil {
		return nil, err
	}
	existing, _ := uc.userRepo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Con RememberMe el token dura RememberExpMinutes en vez de ExpMinutes.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Deleted {
		return nil, domain.ErrForbidden
	}
	expMinutes := uc.jwtCfg.ExpMinutes
	if in.RememberMe {
		expMinutes = uc.jwtCfg.RememberExpMinutes
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, formatID(user.ID), user.Name, user.Role, uc.jwtCfg.Issuer, expMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

func validateRegister(in dto.RegisterRequest) error {
	if in.Name == "" || in.Email == "" || in.Password == "" || in.Role == "" {
		return domain.ErrInvalidInput
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return domain.ErrInvalidInput
	}
	if len(in.Password) < MinPasswordLen {
		return domain.ErrInvalidInput
	}
	if !workflow.ValidRole(in.Role) {
		return domain.ErrInvalidInput
	}
	return nil
}

// ToUserResponse mapea la entidad a su DTO de salida (sin password).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Deleted:   u.Deleted,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
