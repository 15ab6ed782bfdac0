package problem

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrite_SetsContentTypeAndInstance(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/adoption/animal/pet-1/match", nil)
	rec := httptest.NewRecorder()

	Write(rec, req, Conflict.WithDetail("ya en fila").WithCode("ALREADY_IN_QUEUE"))

	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, ContentType, rec.Header().Get("Content-Type"))

	var got Detail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "ALREADY_IN_QUEUE", got.Code)
	require.Equal(t, "ya en fila", got.Detail)
	require.Equal(t, "/adoption/animal/pet-1/match", got.Instance)
}

func TestWithExtension_DoesNotMutateTemplate(t *testing.T) {
	p := NotFound.WithExtension("resource", "pet")

	require.Equal(t, "pet", p.Extra["resource"])
	require.Nil(t, NotFound.Extra)
}
