package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"go-identity-service/internal/model"
	"go-identity-service/internal/service"
)

type memoryProfileStore struct {
	profiles []model.Profile
}

func (m *memoryProfileStore) Create(_ context.Context, p model.Profile) error {
	m.profiles = append(m.profiles, p)
	return nil
}

func (m *memoryProfileStore) List(_ context.Context) ([]model.Profile, error) {
	return m.profiles, nil
}

func (m *memoryProfileStore) UpdatePartial(_ context.Context, upd model.ProfileUpdate) (int64, error) {
	var affected int64
	for i := range m.profiles {
		if m.profiles[i].UserID != upd.UserID {
			continue
		}
		if upd.FullName != nil {
			m.profiles[i].FullName = *upd.FullName
		}
		if upd.PhoneNumber != nil {
			m.profiles[i].PhoneNumber = *upd.PhoneNumber
		}
		if upd.Address != nil {
			m.profiles[i].Address = *upd.Address
		}
		if upd.Bio != nil {
			m.profiles[i].Bio = *upd.Bio
		}
		affected++
	}
	return affected, nil
}

func newProfileHandler(store *memoryProfileStore) *ProfileHandler {
	return NewProfileHandler(service.NewProfileService(store))
}

func TestProfileCreateHandler(t *testing.T) {
	t.Parallel()

	t.Run("valid profile returns 201", func(t *testing.T) {
		store := &memoryProfileStore{}
		h := newProfileHandler(store)

		rec := postJSON(t, h.Create, "/users/createprofile",
			`{"fullname":"Jane Doe","phonenumber":"5551234567","address":"1 Main St","bio":"hi","userid":"user-1"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Len(t, store.profiles, 1)
	})

	t.Run("short phone number returns 400", func(t *testing.T) {
		store := &memoryProfileStore{}
		h := newProfileHandler(store)

		rec := postJSON(t, h.Create, "/users/createprofile",
			`{"fullname":"Jane Doe","phonenumber":"555","address":"1 Main St","bio":"hi","userid":"user-1"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "INVALID_PHONENUMBER", decodeEnvelope(t, rec).Error.Code)
		require.Empty(t, store.profiles)
	})
}

func TestProfileListHandler(t *testing.T) {
	t.Parallel()

	store := &memoryProfileStore{profiles: []model.Profile{
		{FullName: "Jane Doe", PhoneNumber: "5551234567", UserID: "user-1"},
		{FullName: "John Roe", PhoneNumber: "5557654321", UserID: "user-2"},
	}}
	h := newProfileHandler(store)

	req := httptest.NewRequest("GET", "/users/allprofile", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	require.True(t, env.Success)
	require.NotNil(t, env.Meta)
	require.Equal(t, 2, env.Meta.Total)

	var profiles []model.Profile
	require.NoError(t, json.Unmarshal(env.Data, &profiles))
	require.Len(t, profiles, 2)
}

func TestProfileUpdateHandler(t *testing.T) {
	t.Parallel()

	seeded := func() *memoryProfileStore {
		return &memoryProfileStore{profiles: []model.Profile{
			{FullName: "Jane Doe", PhoneNumber: "5551234567", Address: "1 Main St", Bio: "hi", UserID: "user-1"},
		}}
	}

	t.Run("single field update returns the row count", func(t *testing.T) {
		store := seeded()
		h := newProfileHandler(store)

		rec := postJSON(t, h.Update, "/users/profileupdate",
			`{"userid":"user-1","bio":"updated"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var status model.UpdateStatus
		env := decodeEnvelope(t, rec)
		require.NoError(t, json.Unmarshal(env.Data, &status))
		require.Equal(t, "success", status.Status)
		require.Equal(t, "1 rows updated", status.Message)

		require.Equal(t, "updated", store.profiles[0].Bio)
		require.Equal(t, "Jane Doe", store.profiles[0].FullName) // untouched
	})

	t.Run("missing userid returns 400", func(t *testing.T) {
		h := newProfileHandler(seeded())

		rec := postJSON(t, h.Update, "/users/profileupdate", `{"bio":"updated"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("no fields returns 400", func(t *testing.T) {
		h := newProfileHandler(seeded())

		rec := postJSON(t, h.Update, "/users/profileupdate", `{"userid":"user-1"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown userid returns 404", func(t *testing.T) {
		h := newProfileHandler(seeded())

		rec := postJSON(t, h.Update, "/users/profileupdate",
			`{"userid":"ghost","bio":"updated"}`)
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Equal(t, "NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
	})
}
