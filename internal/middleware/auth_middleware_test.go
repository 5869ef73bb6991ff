package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"schoolpress/internal/models"
	"schoolpress/internal/services"
)

const testSecret = "test-secret"

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", Auth(testSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": c.Locals("user_id"),
			"role":    c.Locals("role"),
		})
	})
	app.Post("/protected", Auth(testSecret), RequireEditor(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "ok"})
	})
	return app
}

func requestWithToken(method, token string) *http.Request {
	req := httptest.NewRequest(method, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	return req
}

func TestAuthMissingHeader(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(requestWithToken(http.MethodGet, ""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthForeignKeyToken(t *testing.T) {
	app := newTestApp()

	token, err := services.GenerateToken("other-secret", primitive.NewObjectID().Hex(), models.RoleAdmin)
	require.NoError(t, err)

	resp, err := app.Test(requestWithToken(http.MethodGet, token))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAuthValidRawToken(t *testing.T) {
	app := newTestApp()

	token, err := services.GenerateToken(testSecret, primitive.NewObjectID().Hex(), models.RoleStudent)
	require.NoError(t, err)

	resp, err := app.Test(requestWithToken(http.MethodGet, token))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthValidBearerToken(t *testing.T) {
	app := newTestApp()

	token, err := services.GenerateToken(testSecret, primitive.NewObjectID().Hex(), models.RoleStudent)
	require.NoError(t, err)

	resp, err := app.Test(requestWithToken(http.MethodGet, "Bearer "+token))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireEditorBlocksStudent(t *testing.T) {
	app := newTestApp()

	token, err := services.GenerateToken(testSecret, primitive.NewObjectID().Hex(), models.RoleStudent)
	require.NoError(t, err)

	resp, err := app.Test(requestWithToken(http.MethodPost, token))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireEditorAllowsTutorAndAdmin(t *testing.T) {
	app := newTestApp()

	for _, role := range []string{models.RoleTutor, models.RoleAdmin} {
		token, err := services.GenerateToken(testSecret, primitive.NewObjectID().Hex(), role)
		require.NoError(t, err)

		resp, err := app.Test(requestWithToken(http.MethodPost, token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, "role %s", role)
	}
}
