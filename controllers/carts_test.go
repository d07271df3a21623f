package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bistro/api/models"
)

func TestCartListFiltersByEmail(t *testing.T) {
	e := newEnv(t)
	e.carts.Docs = []models.CartItem{
		{ID: primitive.NewObjectID(), Email: "a@x.com", MenuID: "m1", Price: 10},
		{ID: primitive.NewObjectID(), Email: "b@x.com", MenuID: "m2", Price: 20},
	}

	w := getJSON(t, e, "/carts?email=a@x.com", "")
	require.Equal(t, http.StatusOK, w.Code)

	var items []models.CartItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "a@x.com", items[0].Email)
}

func TestCartAddAndDelete(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodPost, "/carts", "", map[string]interface{}{
		"email": "a@x.com", "menuId": "m1", "price": 12.5,
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, e.carts.Docs, 1)

	w = e.do(t, http.MethodDelete, "/carts/"+e.carts.Docs[0].ID.Hex(), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"deletedCount":1}`, w.Body.String())
	assert.Len(t, e.carts.Docs, 0)
}

func TestReviewsArePublic(t *testing.T) {
	e := newEnv(t)
	e.reviews.Docs = []models.Review{
		{ID: primitive.NewObjectID(), Name: "Alice", Details: "great", Rating: 5},
	}

	w := getJSON(t, e, "/reviews", "")
	require.Equal(t, http.StatusOK, w.Code)

	var reviews []models.Review
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reviews))
	require.Len(t, reviews, 1)
	assert.Equal(t, 5.0, reviews[0].Rating)
}
