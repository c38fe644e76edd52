package integration

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motix/motix/internal/dtos"
)

func createMotorcycle(t *testing.T, srv *httptest.Server, plate string, sectorID uuid.UUID) dtos.MotorcycleDTO {
	t.Helper()
	body := map[string]any{"plate": plate, "sectorId": sectorID}
	resp := do(t, srv, http.MethodPost, "/api/v1/motorcycles", body, true)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var res dtos.Resource[dtos.MotorcycleDTO]
	decode(t, resp, &res)
	return res.Data
}

func TestMotorcycleCreate(t *testing.T) {
	srv := newTestServer(t)
	sec := createSector(t, srv, "A")

	resp := do(t, srv, http.MethodPost, "/api/v1/motorcycles",
		map[string]any{"plate": "ABC1D23", "sectorId": sec.ID}, true)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created dtos.Resource[dtos.MotorcycleDTO]
	decode(t, resp, &created)
	assert.Equal(t, "ABC1D23", created.Data.Plate)
	assert.Equal(t, sec.ID, created.Data.SectorID)
	assert.Equal(t, "/api/v1/motorcycles/"+created.Data.ID.String(), resp.Header.Get("Location"))

	rels := make([]string, 0, len(created.Links))
	for _, l := range created.Links {
		rels = append(rels, l.Rel)
	}
	assert.ElementsMatch(t, []string{"self", "update", "delete"}, rels)
}

func TestMotorcyclePlateNormalized(t *testing.T) {
	srv := newTestServer(t)
	sec := createSector(t, srv, "A")

	m := createMotorcycle(t, srv, "  abc1d23  ", sec.ID)
	assert.Equal(t, "ABC1D23", m.Plate)
}

func TestMotorcycleCreateValidation(t *testing.T) {
	srv := newTestServer(t)
	sec := createSector(t, srv, "A")

	resp := do(t, srv, http.MethodPost, "/api/v1/motorcycles",
		map[string]any{"sectorId": sec.ID}, true)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "plate is required", errorOf(t, resp))

	resp = do(t, srv, http.MethodPost, "/api/v1/motorcycles",
		map[string]any{"plate": "ABC1D23"}, true)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "sectorId is required", errorOf(t, resp))
}

func TestMotorcycleCreateUnknownSector(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, srv, http.MethodPost, "/api/v1/motorcycles",
		map[string]any{"plate": "ABC1D23", "sectorId": uuid.New()}, true)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "sectorId does not exist", errorOf(t, resp))
}

func TestMotorcyclePartialUpdate(t *testing.T) {
	srv := newTestServer(t)
	secA := createSector(t, srv, "A")
	secB := createSector(t, srv, "B")
	m := createMotorcycle(t, srv, "OLD0A00", secA.ID)

	// plate only: sector untouched
	resp := do(t, srv, http.MethodPut, "/api/v1/motorcycles/"+m.ID.String(),
		map[string]any{"plate": "new0b11"}, true)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, srv, http.MethodGet, "/api/v1/motorcycles/"+m.ID.String(), nil, false)
	var fetched dtos.Resource[dtos.MotorcycleDTO]
	decode(t, resp, &fetched)
	assert.Equal(t, "NEW0B11", fetched.Data.Plate)
	assert.Equal(t, secA.ID, fetched.Data.SectorID)

	// sector only: plate untouched
	resp = do(t, srv, http.MethodPut, "/api/v1/motorcycles/"+m.ID.String(),
		map[string]any{"sectorId": secB.ID}, true)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, srv, http.MethodGet, "/api/v1/motorcycles/"+m.ID.String(), nil, false)
	decode(t, resp, &fetched)
	assert.Equal(t, "NEW0B11", fetched.Data.Plate)
	assert.Equal(t, secB.ID, fetched.Data.SectorID)
}

func TestMotorcycleUpdateUnknownSector(t *testing.T) {
	srv := newTestServer(t)
	sec := createSector(t, srv, "A")
	m := createMotorcycle(t, srv, "ABC1D23", sec.ID)

	resp := do(t, srv, http.MethodPut, "/api/v1/motorcycles/"+m.ID.String(),
		map[string]any{"sectorId": uuid.New()}, true)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "sectorId does not exist", errorOf(t, resp))
}

func TestMotorcycleUpdateUnknownID(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, srv, http.MethodPut, "/api/v1/motorcycles/"+uuid.NewString(),
		map[string]any{"plate": "ABC1D23"}, true)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMotorcycleDelete(t *testing.T) {
	srv := newTestServer(t)
	sec := createSector(t, srv, "A")
	m := createMotorcycle(t, srv, "ABC1D23", sec.ID)

	resp := do(t, srv, http.MethodDelete, "/api/v1/motorcycles/"+m.ID.String(), nil, true)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, srv, http.MethodGet, "/api/v1/motorcycles/"+m.ID.String(), nil, false)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, srv, http.MethodDelete, "/api/v1/motorcycles/"+m.ID.String(), nil, true)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSectorDeleteCascadesToMotorcycles(t *testing.T) {
	srv := newTestServer(t)
	sec := createSector(t, srv, "A")
	m := createMotorcycle(t, srv, "ABC1D23", sec.ID)

	resp := do(t, srv, http.MethodDelete, "/api/v1/sectors/"+sec.ID.String(), nil, true)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, srv, http.MethodGet, "/api/v1/motorcycles/"+m.ID.String(), nil, false)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
