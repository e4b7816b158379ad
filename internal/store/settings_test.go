package store

import (
	"context"
	"testing"

	"github.com/erazemk/track/internal/db"
)

func TestSettings(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	value, err := GetSetting(ctx, database, SettingLanguage)
	if err != nil {
		t.Fatal(err)
	}
	if value != "" {
		t.Errorf("expected empty value for unset key, got %q", value)
	}

	if err := SetSetting(ctx, database, SettingLanguage, "zh"); err != nil {
		t.Fatal(err)
	}
	if err := SetSetting(ctx, database, SettingLanguage, "en"); err != nil {
		t.Fatal(err)
	}

	value, err = GetSetting(ctx, database, SettingLanguage)
	if err != nil {
		t.Fatal(err)
	}
	if value != "en" {
		t.Errorf("expected %q, got %q", "en", value)
	}
}
