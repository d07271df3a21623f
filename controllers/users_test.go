package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bistro/api/models"
)

func TestHealth(t *testing.T) {
	e := newEnv(t)
	w := getJSON(t, e, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Ok", w.Body.String())
}

func TestIssueToken(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodPost, "/jwt", "", map[string]string{"email": "a@x.com"})
	require.Equal(t, http.StatusOK, w.Code)

	token, ok := decodeBody(t, w)["token"].(string)
	require.True(t, ok)

	claims, err := e.jwt.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims["email"])
}

func TestCreateUserIdempotentOnEmail(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodPost, "/users", "", map[string]string{"email": "a@x.com", "name": "Alice"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotNil(t, decodeBody(t, w)["insertedId"])

	w = e.do(t, http.MethodPost, "/users", "", map[string]string{"email": "a@x.com", "name": "Alice again"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "user already exists", body["message"])
	assert.Nil(t, body["insertedId"])

	assert.Len(t, e.users.Docs, 1)
}

func TestListUsersRequiresToken(t *testing.T) {
	e := newEnv(t)
	e.users.Docs = []models.User{{ID: primitive.NewObjectID(), Email: "a@x.com"}}

	w := getJSON(t, e, "/users", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = getJSON(t, e, "/users", e.tokenFor(t, "a@x.com"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"_id":"`+e.users.Docs[0].ID.Hex()+`","email":"a@x.com"}]`, w.Body.String())
}

func TestCheckAdminSelfMatchOnly(t *testing.T) {
	e := newEnv(t)
	e.users.Docs = []models.User{
		{ID: primitive.NewObjectID(), Email: "a@x.com", Role: models.RoleAdmin},
	}
	token := e.tokenFor(t, "a@x.com")

	w := getJSON(t, e, "/user/admin/b@x.com", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"message":"unauthorize access"}`, w.Body.String())

	w = getJSON(t, e, "/user/admin/a@x.com", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"admin":true}`, w.Body.String())
}

func TestCheckAdminUnknownAccount(t *testing.T) {
	e := newEnv(t)
	w := getJSON(t, e, "/user/admin/ghost@x.com", e.tokenFor(t, "ghost@x.com"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"admin":false}`, w.Body.String())
}

func TestPromoteUserRequiresAdmin(t *testing.T) {
	e := newEnv(t)
	admin := models.User{ID: primitive.NewObjectID(), Email: "admin@x.com", Role: models.RoleAdmin}
	target := models.User{ID: primitive.NewObjectID(), Email: "b@x.com", Role: models.RoleUser}
	e.users.Docs = []models.User{admin, target}

	path := "/users/admin/" + target.ID.Hex()

	w := e.do(t, http.MethodPatch, path, "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = e.do(t, http.MethodPatch, path, e.tokenFor(t, "b@x.com"), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = e.do(t, http.MethodPatch, path, e.tokenFor(t, "admin@x.com"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"matchedCount":1,"modifiedCount":1}`, w.Body.String())
	assert.Equal(t, models.RoleAdmin, e.users.Docs[1].Role)
}

func TestDeleteUserRequiresAdmin(t *testing.T) {
	e := newEnv(t)
	admin := models.User{ID: primitive.NewObjectID(), Email: "admin@x.com", Role: models.RoleAdmin}
	target := models.User{ID: primitive.NewObjectID(), Email: "b@x.com", Role: models.RoleUser}
	e.users.Docs = []models.User{admin, target}

	path := "/users/" + target.ID.Hex()

	w := e.do(t, http.MethodDelete, path, e.tokenFor(t, "b@x.com"), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Len(t, e.users.Docs, 2)

	w = e.do(t, http.MethodDelete, path, e.tokenFor(t, "admin@x.com"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"deletedCount":1}`, w.Body.String())
	assert.Len(t, e.users.Docs, 1)
}
