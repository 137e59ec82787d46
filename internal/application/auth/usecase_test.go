package auth_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/auth"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

type stubUserRepo struct {
	users map[string]*entity.User

	// failGetByEmail simula una caída del store en la consulta por email.
	failGetByEmail bool
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[string]*entity.User{}}
}

func (r *stubUserRepo) Create(u *entity.User) error {
	cu := *u
	r.users[u.ID] = &cu
	return nil
}

func (r *stubUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cu := *u
	return &cu, nil
}

func (r *stubUserRepo) GetByEmail(email string) (*entity.User, error) {
	if r.failGetByEmail {
		return nil, errors.New("store caído")
	}
	for _, u := range r.users {
		if u.Email == email {
			cu := *u
			return &cu, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) Update(u *entity.User) error {
	cu := *u
	r.users[u.ID] = &cu
	return nil
}

func (r *stubUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		cu := *u
		out = append(out, &cu)
	}
	return out, nil
}

func (r *stubUserRepo) Delete(id string) (bool, error) {
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

var testJWT = auth.JWTConfig{Secret: "secret-de-test", ExpMinutes: 60, Issuer: "almacen-api-test"}

func TestRegister_Y_Login(t *testing.T) {
	repo := newStubUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	user, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "ana@almacen.test",
		Password: "contraseña-segura",
		Name:     "Ana",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleVendedor, user.Role, "el rol por defecto es vendedor")
	assert.Equal(t, "active", user.Status)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@almacen.test", Password: "contraseña-segura"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, user.ID, out.User.ID)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	repo := newStubUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@almacen.test", Password: "contraseña-segura"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "ana@almacen.test", Password: "otra-contraseña"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// El autoregistro público nunca honra el rol del request: pedir admin en el
// body no puede producir una cuenta admin.
func TestRegister_IgnoraRolDelRequest(t *testing.T) {
	repo := newStubUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	user, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "intruso@almacen.test",
		Password: "contraseña-segura",
		Role:     entity.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleVendedor, user.Role,
		"el autoregistro siempre crea vendedor, aunque el body pida admin")
	assert.Equal(t, entity.RoleVendedor, repo.users[user.ID].Role)
}

func TestCreateUser_AsignaRol(t *testing.T) {
	uc := auth.NewAuthUseCase(newStubUserRepo(), testJWT)

	user, err := uc.CreateUser(dto.RegisterRequest{
		Email:    "jefa@almacen.test",
		Password: "contraseña-segura",
		Role:     entity.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, user.Role, "el alta admin sí honra el rol")
}

func TestCreateUser_RolInvalido(t *testing.T) {
	uc := auth.NewAuthUseCase(newStubUserRepo(), testJWT)

	_, err := uc.CreateUser(dto.RegisterRequest{
		Email:    "ana@almacen.test",
		Password: "contraseña-segura",
		Role:     "superusuario",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un fallo del store al verificar el email se propaga: no debe leerse como
// "email libre" y seguir con el alta.
func TestRegister_FalloDelStoreEnGetByEmail_Propaga(t *testing.T) {
	repo := newStubUserRepo()
	repo.failGetByEmail = true
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@almacen.test", Password: "contraseña-segura"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Empty(t, repo.users, "no debe crearse ningún usuario")
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	repo := newStubUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@almacen.test", Password: "contraseña-segura"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@almacen.test", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := auth.NewAuthUseCase(newStubUserRepo(), testJWT)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@almacen.test", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_CuentaInactiva(t *testing.T) {
	repo := newStubUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	user, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@almacen.test", Password: "contraseña-segura"})
	require.NoError(t, err)

	repo.users[user.ID].Status = "suspended"

	_, err = uc.Login(dto.LoginRequest{Email: "ana@almacen.test", Password: "contraseña-segura"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
