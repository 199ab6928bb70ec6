package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"rentsafe-server/models"
	"rentsafe-server/storage"
	"rentsafe-server/utils"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildAuthTestApp mounts the role route behind a real JWT verifier so the
// handler reads claims the same way it does in production.
func buildAuthTestApp(t *testing.T) *iris.Application {
	t.Helper()
	os.Setenv("ACCESS_TOKEN_SECRET", "testsecret")
	storage.InitializeTestDB()

	app := iris.New()
	app.Validator = validator.New()

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	auth := app.Party("/api/auth")
	{
		auth.Post("/role", accessTokenVerifierMiddleware, SetRole)
	}
	require.NoError(t, app.Build())
	return app
}

// signAuthTestToken returns a signed access token for the given person.
func signAuthTestToken(t *testing.T, id uint, ic, role string) string {
	t.Helper()
	signer := jwt.NewSigner(jwt.HS256, os.Getenv("ACCESS_TOKEN_SECRET"), 0)
	token, err := signer.Sign(utils.AccessToken{ID: id, IC: ic, Role: role})
	require.NoError(t, err)
	return string(token)
}

func postRole(t *testing.T, app *iris.Application, token, role string) (int, map[string]interface{}) {
	t.Helper()
	raw, err := json.Marshal(iris.Map{"role": role})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/role", bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)

	var decoded map[string]interface{}
	if resp.Body.Len() > 0 {
		json.Unmarshal(resp.Body.Bytes(), &decoded)
	}
	return resp.Code, decoded
}

func TestSetRoleAssignsOnce(t *testing.T) {
	app := buildAuthTestApp(t)

	person := models.Person{IC: "900303-03-3333", Name: "Siti Binti Hassan", Age: 35, Gender: "female"}
	require.NoError(t, storage.DB.Create(&person).Error)
	token := signAuthTestToken(t, person.ID, person.IC, "")

	code, body := postRole(t, app, token, "landlord")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "landlord", body["role"])

	// Re-sending the same role is a no-op.
	code, body = postRole(t, app, token, "landlord")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "landlord", body["role"])

	// A differing role after assignment is rejected and the stored role
	// stays untouched.
	code, _ = postRole(t, app, token, "tenant")
	assert.Equal(t, http.StatusConflict, code)

	var reloaded models.Person
	require.NoError(t, storage.DB.First(&reloaded, person.ID).Error)
	assert.Equal(t, "landlord", reloaded.Role)
}

func TestSetRoleValidatesValue(t *testing.T) {
	app := buildAuthTestApp(t)

	person := models.Person{IC: "910404-04-4444", Name: "Lee Mei Hua", Age: 28, Gender: "female"}
	require.NoError(t, storage.DB.Create(&person).Error)
	token := signAuthTestToken(t, person.ID, person.IC, "")

	code, _ := postRole(t, app, token, "admin")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestSetRoleUnknownPerson(t *testing.T) {
	app := buildAuthTestApp(t)

	token := signAuthTestToken(t, 42, "999999-99-9999", "")
	code, _ := postRole(t, app, token, "tenant")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestSetRoleRequiresToken(t *testing.T) {
	app := buildAuthTestApp(t)

	raw, _ := json.Marshal(iris.Map{"role": "tenant"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/role", bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
