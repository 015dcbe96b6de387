package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/rmagtibay/barangay-service/internal/errs"
	"github.com/rmagtibay/barangay-service/internal/handler"
	"github.com/rmagtibay/barangay-service/internal/model"
	"github.com/rmagtibay/barangay-service/pkg/validate"
)

// fakeResidents is an in-memory stand-in for the generic crud service;
// gomock cannot generate mocks for generic interfaces.
type fakeResidents struct {
	items map[string]model.Resident
	next  int
}

func newFakeResidents() *fakeResidents {
	return &fakeResidents{items: make(map[string]model.Resident)}
}

func (f *fakeResidents) Create(_ context.Context, req model.CreateResidentRequest) (model.Resident, error) {
	f.next++
	r := model.Resident{
		ID:            f.next,
		ResidentUid:   fmt.Sprintf("uid-%04d", f.next),
		FirstName:     req.FirstName,
		MiddleName:    req.MiddleName,
		LastName:      req.LastName,
		BirthDate:     req.BirthDate.Time,
		Gender:        req.Gender,
		CivilStatus:   req.CivilStatus,
		Purok:         req.Purok,
		ContactNumber: req.ContactNumber,
		Address:       req.Address,
	}
	f.items[r.ResidentUid] = r
	return r, nil
}

func (f *fakeResidents) Get(_ context.Context, uid string) (model.Resident, error) {
	r, ok := f.items[uid]
	if !ok {
		return model.Resident{}, errs.ErrNotFound
	}
	return r, nil
}

func (f *fakeResidents) List(_ context.Context) ([]model.Resident, error) {
	out := make([]model.Resident, 0, len(f.items))
	for _, r := range f.items {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeResidents) Update(_ context.Context, uid string, req model.UpdateResidentRequest) (model.Resident, error) {
	r, ok := f.items[uid]
	if !ok {
		return model.Resident{}, errs.ErrNotFound
	}
	if req.FirstName != nil {
		r.FirstName = *req.FirstName
	}
	if req.Purok != nil {
		r.Purok = *req.Purok
	}
	f.items[uid] = r
	return r, nil
}

func (f *fakeResidents) Delete(_ context.Context, uid string) error {
	if _, ok := f.items[uid]; !ok {
		return errs.ErrNotFound
	}
	delete(f.items, uid)
	return nil
}

func newCrudRouter() (*echo.Echo, *fakeResidents) {
	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	svc := newFakeResidents()
	handler.RegisterCrud[model.Resident, model.CreateResidentRequest, model.UpdateResidentRequest](
		e.Group(""), "/residents", svc)
	return e, svc
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)
	return w
}

func TestCrud_Lifecycle(t *testing.T) {
	t.Parallel()
	e, svc := newCrudRouter()

	w := doJSON(e, http.MethodPost, "/residents",
		`{"firstName":"Juan","lastName":"Dela Cruz","birthDate":"1990-05-04","gender":"Male","civilStatus":"Single","purok":"Purok 1","address":"123 Mabini St"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var created model.Resident
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ResidentUid)
	require.Equal(t, "Juan", created.FirstName)

	w = doJSON(e, http.MethodGet, "/residents/"+created.ResidentUid, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(e, http.MethodPut, "/residents/"+created.ResidentUid, `{"purok":"Purok 3"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Purok 3", svc.items[created.ResidentUid].Purok)

	w = doJSON(e, http.MethodDelete, "/residents/"+created.ResidentUid, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"deleted":true}`, strings.Trim(w.Body.String(), "\n"))

	w = doJSON(e, http.MethodGet, "/residents/"+created.ResidentUid, "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, `{"message":"not found"}`, strings.Trim(w.Body.String(), "\n"))
}

func TestCrud_ValidationAndMissing(t *testing.T) {
	t.Parallel()
	e, _ := newCrudRouter()

	// lastName is required
	w := doJSON(e, http.MethodPost, "/residents",
		`{"firstName":"Juan","birthDate":"1990-05-04","gender":"Male","civilStatus":"Single","purok":"Purok 1","address":"123 Mabini St"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(e, http.MethodPut, "/residents/missing", `{"purok":"Purok 3"}`)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(e, http.MethodDelete, "/residents/missing", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}
