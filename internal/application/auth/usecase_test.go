package auth_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/logistica-api/internal/application/auth"
	"github.com/tu-usuario/logistica-api/internal/application/dto"
	"github.com/tu-usuario/logistica-api/internal/domain"
	"github.com/tu-usuario/logistica-api/internal/domain/entity"
	pkgjwt "github.com/tu-usuario/logistica-api/pkg/jwt"
)

const testSecret = "secret-solo-para-tests"

type fakeUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*entity.User), nextID: 1}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	user.ID = r.nextID
	r.nextID++
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, int, error) {
	var all []*entity.User
	for _, u := range r.users {
		all = append(all, u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	total := len(all)
	if offset > len(all) {
		offset = len(all)
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func newAuthUC(repo *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:             testSecret,
		ExpMinutes:         60,
		RememberExpMinutes: 43200,
		Issuer:             "logistica-test",
	})
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, password, role string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, repo.Create(&entity.User{
		Name:         "Ana",
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}))
}

func TestRegister_HasheaYPersiste(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	out, err := uc.RegisterUser(dto.RegisterRequest{
		Name:     "Ana",
		Email:    "ana@correo.com",
		Password: "secreta",
		Role:     "sales",
	})
	require.NoError(t, err)
	assert.Equal(t, "sales", out.Role)

	stored, _ := repo.GetByEmail("ana@correo.com")
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta")))
}

func TestRegister_ValidaEntrada(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())

	cases := []dto.RegisterRequest{
		{Email: "a@b.com", Password: "secreta", Role: "sales"},            // sin nombre
		{Name: "Ana", Email: "no-es-correo", Password: "secreta", Role: "sales"}, // email inválido
		{Name: "Ana", Email: "a@b.com", Password: "corta", Role: "sales"},  // < 6 caracteres
		{Name: "Ana", Email: "a@b.com", Password: "secreta", Role: "gerente"}, // rol fuera del conjunto
	}
	for _, in := range cases {
		_, err := uc.RegisterUser(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "entrada %+v", in)
	}
}

func TestRegister_EmailDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	seedUser(t, repo, "ana@correo.com", "secreta", "admin")

	_, err := uc.RegisterUser(dto.RegisterRequest{
		Name: "Otra", Email: "ana@correo.com", Password: "secreta", Role: "sales",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_DevuelveTokenConRol(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	seedUser(t, repo, "ana@correo.com", "secreta", "warehouse")

	out, err := uc.Login(dto.LoginRequest{Email: "ana@correo.com", Password: "secreta"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "warehouse", out.User.Role)

	_, name, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "Ana", name)
	assert.Equal(t, "warehouse", role)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	seedUser(t, repo, "ana@correo.com", "secreta", "admin")

	_, err := uc.Login(dto.LoginRequest{Email: "ana@correo.com", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())
	_, err := uc.Login(dto.LoginRequest{Email: "nadie@correo.com", Password: "secreta"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_UsuarioEliminado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	hash, _ := bcrypt.GenerateFromPassword([]byte("secreta"), bcrypt.MinCost)
	require.NoError(t, repo.Create(&entity.User{
		Email: "baja@correo.com", PasswordHash: string(hash), Role: "sales", Deleted: true,
	}))

	_, err := uc.Login(dto.LoginRequest{Email: "baja@correo.com", Password: "secreta"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
