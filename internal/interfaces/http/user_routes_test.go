package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/auth"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Almacen-api/internal/interfaces/http"
)

type routeStubUserRepo struct {
	users map[string]*entity.User
}

func (r *routeStubUserRepo) Create(u *entity.User) error {
	cu := *u
	r.users[u.ID] = &cu
	return nil
}

func (r *routeStubUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cu := *u
	return &cu, nil
}

func (r *routeStubUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cu := *u
			return &cu, nil
		}
	}
	return nil, nil
}

func (r *routeStubUserRepo) Update(u *entity.User) error {
	cu := *u
	r.users[u.ID] = &cu
	return nil
}

func (r *routeStubUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		cu := *u
		out = append(out, &cu)
	}
	return out, nil
}

func (r *routeStubUserRepo) Delete(id string) (bool, error) {
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

type routeStubLogRepo struct {
	entries []*entity.Log
}

func (r *routeStubLogRepo) Create(l *entity.Log) error {
	cl := *l
	r.entries = append(r.entries, &cl)
	return nil
}

func (r *routeStubLogRepo) List(limit, offset int) ([]*entity.Log, error) {
	out := make([]*entity.Log, len(r.entries))
	copy(out, r.entries)
	return out, nil
}

// buildUsersApp monta el router completo con repos en memoria para las rutas
// de usuarios y auth; el resto de casos de uso no se invoca en estos tests.
func buildUsersApp(t *testing.T) (*fiber.App, *routeStubUserRepo, *routeStubLogRepo) {
	t.Helper()
	userRepo := &routeStubUserRepo{users: map[string]*entity.User{}}
	logRepo := &routeStubLogRepo{}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	activityUC := usecase.NewActivityLogUseCase(logRepo)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		UserUC:     userUC,
		ActivityUC: activityUC,
		AuthUC:     authUC,
		JWTSecret:  testJWTSecret,
	})
	return app, userRepo, logRepo
}

func postJSON(t *testing.T, app *fiber.App, path, authHeader, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// POST /api/users: un admin crea usuarios y sí asigna rol; la mutación queda
// en el log de actividad.
func TestPostUsers_AdminCreaConRol(t *testing.T) {
	app, userRepo, logRepo := buildUsersApp(t)

	resp := postJSON(t, app, "/api/users", tokenForRole(t, "admin"),
		`{"email":"jefa@almacen.test","password":"contraseña-segura","name":"Jefa","role":"admin"}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "admin", body["role"], "el alta admin honra el rol del body")

	require.Len(t, userRepo.users, 1)
	require.Len(t, logRepo.entries, 1)
	assert.Equal(t, "POST", logRepo.entries[0].Method)
	assert.Equal(t, "/api/users", logRepo.entries[0].Action)
}

// POST /api/users está detrás de RequireRole(admin): un vendedor recibe 403.
func TestPostUsers_VendedorBloqueado(t *testing.T) {
	app, userRepo, _ := buildUsersApp(t)

	resp := postJSON(t, app, "/api/users", tokenForRole(t, "vendedor"),
		`{"email":"x@almacen.test","password":"contraseña-segura"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Empty(t, userRepo.users)
}

// El autoregistro público ignora el rol del body: pedir admin produce vendedor.
func TestPostAuthRegister_NoEscalaRol(t *testing.T) {
	app, userRepo, _ := buildUsersApp(t)

	resp := postJSON(t, app, "/api/auth/register", "",
		`{"email":"intruso@almacen.test","password":"contraseña-segura","role":"admin"}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, entity.RoleVendedor, body["role"],
		"el autoregistro nunca entrega una cuenta admin")

	for _, u := range userRepo.users {
		assert.Equal(t, entity.RoleVendedor, u.Role)
	}
}
