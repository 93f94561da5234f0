package httpserver_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SeaCloudHub/eventually/adapters/httpserver"
	"github.com/SeaCloudHub/eventually/adapters/httpserver/model"
	"github.com/SeaCloudHub/eventually/domain/event"
	"github.com/SeaCloudHub/eventually/pkg/apperror"
	"github.com/SeaCloudHub/eventually/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type lamp struct{}

type vault struct{}

func newServer(t *testing.T) *httpserver.Server {
	t.Helper()

	registry := event.NewRegistry()

	lampDecl := event.ForIn[lamp](registry)
	lampDecl.Emits("on", "off")
	lampDecl.EmitsArity("dimmed", 1)

	vaultDecl := event.ForIn[vault](registry)
	vaultDecl.EnableStrict()
	vaultDecl.SetMaxListeners(2)
	vaultDecl.Emits("opened")

	server, err := httpserver.New(&config.Config{}, zap.NewNop().Sugar(), httpserver.WithRegistry(registry))
	require.NoError(t, err)

	return server
}

func serve(server *httpserver.Server, target string) *httptest.ResponseRecorder {
	response := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, target, nil)

	server.ServeHTTP(response, request)

	return response
}

func decode[T any](t *testing.T, response *httptest.ResponseRecorder) T {
	t.Helper()

	var body struct {
		Message string `json:"message"`
		Data    T      `json:"data"`
	}
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &body))
	assert.Equal(t, "OK", body.Message)

	return body.Data
}

func TestHealthCheck(t *testing.T) {
	response := serve(newServer(t), "/healthz")

	assert.Equal(t, http.StatusOK, response.Code)
	assert.Equal(t, "OK!!!", response.Body.String())
}

func TestNew_NilRegistry(t *testing.T) {
	_, err := httpserver.New(&config.Config{}, zap.NewNop().Sugar(), httpserver.WithRegistry(nil))

	assert.Error(t, err)
}

func TestListTypes(t *testing.T) {
	server := newServer(t)

	t.Run("it should list every type in creation order", func(t *testing.T) {
		response := serve(server, "/api/types")
		require.Equal(t, http.StatusOK, response.Code)

		types := decode[[]model.DeclarationResponse](t, response)
		require.Len(t, types, 2)
		assert.Equal(t, "lamp", types[0].Type)
		assert.Equal(t, "vault", types[1].Type)
	})

	t.Run("it should filter by strict mode", func(t *testing.T) {
		response := serve(server, "/api/types?strict=true")
		require.Equal(t, http.StatusOK, response.Code)

		types := decode[[]model.DeclarationResponse](t, response)
		require.Len(t, types, 1)
		assert.Equal(t, "vault", types[0].Type)
		assert.True(t, types[0].Strict)
		assert.Equal(t, 2, types[0].MaxListeners)
	})

	t.Run("it should reject an invalid filter", func(t *testing.T) {
		response := serve(server, "/api/types?strict=maybe")

		assert.Equal(t, http.StatusBadRequest, response.Code)

		var body model.ErrorResponse
		require.NoError(t, json.Unmarshal(response.Body.Bytes(), &body))
		assert.Equal(t, apperror.ValidationCode, body.Code)
	})
}

func TestGetType(t *testing.T) {
	server := newServer(t)

	t.Run("it should describe the declared events", func(t *testing.T) {
		response := serve(server, "/api/types/lamp")
		require.Equal(t, http.StatusOK, response.Code)

		decl := decode[model.DeclarationResponse](t, response)
		assert.Equal(t, "lamp", decl.Type)
		assert.False(t, decl.Strict)
		assert.Equal(t, event.DefaultMaxListeners, decl.MaxListeners)

		one := 1
		assert.Equal(t, []model.EventResponse{
			{Name: event.ListenerAdded, Arity: &one},
			{Name: "on"},
			{Name: "off"},
			{Name: "dimmed", Arity: &one},
		}, decl.Events)
	})

	t.Run("it should return not found for unknown types", func(t *testing.T) {
		response := serve(server, "/api/types/toaster")

		assert.Equal(t, http.StatusNotFound, response.Code)

		var body model.ErrorResponse
		require.NoError(t, json.Unmarshal(response.Body.Bytes(), &body))
		assert.Equal(t, apperror.EntityNotFoundCode, body.Code)
		assert.Equal(t, "No such event source", body.Message)
		assert.Equal(t, `type "toaster" declares no events`, body.Info)
	})
}
