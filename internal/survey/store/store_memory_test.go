package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unipick/internal/survey/models"
)

func newSession(t *testing.T, id string, country models.Country) *models.Session {
	t.Helper()
	s, err := models.NewSession(id, "anon_test", country, time.Unix(1700000000, 0))
	require.NoError(t, err)
	return s
}

func TestInMemoryStoreOperations(t *testing.T) {
	store := NewMemory(time.Hour)
	ctx := context.Background()

	session := newSession(t, "s1", models.CountryAustralia)
	require.NoError(t, session.Form.ApplyJSON([]byte(`{"budget_usd":30000,"accept_language_course":true,"city_preferences":["悉尼"]}`)))
	session.Errors = models.FieldErrors{"academic_band": "academic_band is required"}
	require.NoError(t, store.Save(ctx, session))

	fetched, err := store.FindByID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, models.CountryAustralia, fetched.Country)
	assert.Equal(t, models.StateFillingForm, fetched.State)
	assert.Equal(t, session.Errors, fetched.Errors)
	assert.True(t, session.CreatedAt.Equal(fetched.CreatedAt))
	form, ok := fetched.Form.(*models.AustraliaForm)
	require.True(t, ok)
	assert.Equal(t, 30000, form.BudgetUSD)
	assert.Equal(t, models.ChoiceAccept, form.LanguageCourse)
	assert.Equal(t, []models.City{models.CitySydney}, form.CityPreferences)

	// Copy integrity
	require.NoError(t, fetched.Form.Toggle("city_preferences", string(models.CityPerth)))
	again, err := store.FindByID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []models.City{models.CitySydney}, again.Form.(*models.AustraliaForm).CityPreferences)

	// Delete
	require.NoError(t, store.Delete(ctx, "s1"))
	_, err = store.FindByID(ctx, "s1")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestInMemoryStoreRoundTripsEveryCountry(t *testing.T) {
	store := NewMemory(0)
	ctx := context.Background()
	for _, c := range models.Countries {
		session := newSession(t, "s-"+string(c), c)
		require.NoError(t, session.Form.Toggle("interests", string(models.InterestLaw)))
		require.NoError(t, store.Save(ctx, session))

		fetched, err := store.FindByID(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, c, fetched.Form.Country())
		assert.Equal(t, session.Form, fetched.Form)
	}
}

func TestInMemoryStoreExpiresSessions(t *testing.T) {
	store := NewMemory(time.Minute)
	now := time.Unix(1700000000, 0)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, newSession(t, "old", models.CountryUK)))
	now = now.Add(30 * time.Second)
	require.NoError(t, store.Save(ctx, newSession(t, "fresh", models.CountryUK)))

	now = now.Add(45 * time.Second)
	_, err := store.FindByID(ctx, "old")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = store.FindByID(ctx, "fresh")
	require.NoError(t, err)

	assert.Equal(t, 1, store.Sweep())
	assert.Len(t, store.sessions, 1)
}

func TestFindUnknownSession(t *testing.T) {
	_, err := NewMemory(time.Hour).FindByID(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDecodeRejectsUnknownCountry(t *testing.T) {
	_, err := decodeSession([]byte(`{"id":"x","country":"Canada"}`))
	require.Error(t, err)
}
