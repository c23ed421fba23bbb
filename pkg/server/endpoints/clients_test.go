package endpoints

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/salesupport/salesupport/pkg/model"
	"github.com/salesupport/salesupport/pkg/server/store"
)

func TestCreateClientAssignsOwner(t *testing.T) {
	s, stores, _ := newTestServer(t, managerUser())

	stores.clients.On("CreateClient", mock.MatchedBy(func(c *model.Client) bool {
		return c.ManagerID == 7 && c.Status == "new" && c.Priority == "medium"
	})).Return(nil)

	body := `{"name":"Acme","phone":"+15550100","email":"ceo@acme.test"}`
	req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(body))
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	stores.clients.AssertExpectations(t)
}

func TestListClientsPassesPhoneSuffix(t *testing.T) {
	s, stores, _ := newTestServer(t, managerUser())

	stores.clients.On("ListClients", uint(7), "0100").Return([]model.Client{
		{ID: 3, Name: "Acme", Phone: "+15550100", ManagerID: 7},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/clients?phone_ends=0100", nil)
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Acme")
	stores.clients.AssertExpectations(t)
}

func TestGetForeignClientIs404(t *testing.T) {
	s, stores, _ := newTestServer(t, managerUser())

	// The store cannot tell a missing client from someone else's.
	stores.clients.On("GetClient", uint(99), uint(7)).Return(nil, store.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/clients/99", nil)
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "client_not_found")
}

func TestPatchClientUpdatesStatus(t *testing.T) {
	s, stores, _ := newTestServer(t, managerUser())

	status := "in_progress"
	stores.clients.On("UpdateClient", uint(3), uint(7), store.ClientUpdate{Status: &status}).
		Return(&model.Client{ID: 3, ManagerID: 7, Status: status}, nil)

	req := httptest.NewRequest(http.MethodPatch, "/clients/3", strings.NewReader(`{"status":"in_progress"}`))
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "in_progress")
	stores.clients.AssertExpectations(t)
}

func TestCreateClientValidation(t *testing.T) {
	s, _, _ := newTestServer(t, managerUser())

	req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(`{"name":"Acme"}`))
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "missing_fields")
}

func TestCreateInteractionForForeignClientIs404(t *testing.T) {
	s, stores, _ := newTestServer(t, managerUser())

	stores.interactions.On("CreateInteraction", mock.Anything, uint(7)).Return(store.ErrNotFound)

	body := `{"client_id":99,"type":"call","result":"no answer"}`
	req := httptest.NewRequest(http.MethodPost, "/interactions", strings.NewReader(body))
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestListInteractionsRequiresClientID(t *testing.T) {
	s, _, _ := newTestServer(t, managerUser())

	req := httptest.NewRequest(http.MethodGet, "/interactions", nil)
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "missing_client_id")
}

func TestCreateReminderDefaultsToPending(t *testing.T) {
	s, stores, _ := newTestServer(t, managerUser())

	stores.reminders.On("CreateReminder", mock.MatchedBy(func(rem *model.Reminder) bool {
		return rem.ClientID == 3 && rem.Status == "pending"
	}), uint(7)).Return(nil)

	body := `{"client_id":3,"remind_at":"2026-09-01T10:00:00Z","reason":"call back"}`
	req := httptest.NewRequest(http.MethodPost, "/reminders", strings.NewReader(body))
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	stores.reminders.AssertExpectations(t)
}
