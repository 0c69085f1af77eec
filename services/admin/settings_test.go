package admin

import (
	"context"
	"errors"
	"testing"

	"darsehha/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSettingsRepo holds settings categories in memory.
type stubSettingsRepo struct {
	categories map[string]models.SettingsCategory
}

func (r *stubSettingsRepo) Save(_ context.Context, category models.SettingsCategory) error {
	if r.categories == nil {
		r.categories = make(map[string]models.SettingsCategory)
	}
	r.categories[category.Category] = category
	return nil
}

func (r *stubSettingsRepo) Load(context.Context) ([]models.SettingsCategory, error) {
	var all []models.SettingsCategory
	for _, c := range r.categories {
		all = append(all, c)
	}
	return all, nil
}

func (r *stubSettingsRepo) LoadCategory(_ context.Context, category string) (*models.SettingsCategory, error) {
	c, ok := r.categories[category]
	if !ok {
		return nil, errors.New("settings category not found")
	}
	return &c, nil
}

func TestRetentionDaysFromStoredSettings(t *testing.T) {
	repo := &stubSettingsRepo{}
	require.NoError(t, repo.Save(context.Background(), models.SettingsCategory{
		Category: "system-settings",
		Data:     map[string]string{"dataRetention": "30"},
	}))

	svc := &SettingsService{Repo: repo}
	assert.Equal(t, 30, svc.RetentionDays(context.Background()))
}

func TestRetentionDaysDefaults(t *testing.T) {
	svc := &SettingsService{Repo: &stubSettingsRepo{}}

	// Nothing stored yet.
	assert.Equal(t, 365, svc.RetentionDays(context.Background()))

	// Unparsable and non-positive values fall back too.
	for _, bad := range []string{"soon", "", "-5", "0"} {
		require.NoError(t, svc.Repo.Save(context.Background(), models.SettingsCategory{
			Category: "system-settings",
			Data:     map[string]string{"dataRetention": bad},
		}))
		assert.Equal(t, 365, svc.RetentionDays(context.Background()), bad)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	repo := &stubSettingsRepo{}
	require.NoError(t, repo.Save(context.Background(), models.SettingsCategory{
		Category: "clinic-info",
		Data:     map[string]string{"clinicName": "Darsehha Downtown"},
	}))

	svc := &SettingsService{Repo: repo}
	settings, err := svc.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Darsehha Downtown", settings["clinic-info"]["clinicName"])
	// Unsaved categories keep their defaults.
	assert.Equal(t, "365", settings["system-settings"]["dataRetention"])
}
