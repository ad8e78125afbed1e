package validation

import (
	"testing"

	"github.com/tuncdemir/rutin/internal/models"
)

func TestValidateHabitName(t *testing.T) {
	if err := ValidateHabitName("Su İçmek"); err != nil {
		t.Errorf("valid name rejected: %v", err)
	}
	if err := ValidateHabitName(""); err == nil {
		t.Error("empty name accepted")
	}
	if err := ValidateHabitName("   "); err == nil {
		t.Error("whitespace-only name accepted")
	}
}

func TestValidateDate(t *testing.T) {
	tests := []struct {
		date    string
		wantErr bool
	}{
		{"2024-05-01", false},
		{"2024-12-31", false},
		{"2024-13-01", true},
		{"2024-05-32", true},
		{"05/01/2024", true},
		{"2024-05-01T10:00:00Z", true}, // timestamps are not calendar days
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateDate(tt.date)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateDate(%q) error = %v, wantErr %v", tt.date, err, tt.wantErr)
		}
	}
}

func TestValidateMonth(t *testing.T) {
	if err := ValidateMonth("2024-05"); err != nil {
		t.Errorf("valid month rejected: %v", err)
	}
	if err := ValidateMonth("2024-5"); err == nil {
		t.Error("unpadded month accepted")
	}
	if err := ValidateMonth("2024-05-01"); err == nil {
		t.Error("full date accepted as month")
	}
}

func TestValidateEnums(t *testing.T) {
	if err := ValidateHabitType(models.HabitBuild); err != nil {
		t.Errorf("build rejected: %v", err)
	}
	if err := ValidateHabitType(models.HabitType("maintain")); err == nil {
		t.Error("unknown habit type accepted")
	}
	if err := ValidateFrequency(models.FrequencyWeekends); err != nil {
		t.Errorf("weekends rejected: %v", err)
	}
	if err := ValidateFrequency(models.Frequency("monthly")); err == nil {
		t.Error("unknown frequency accepted")
	}
	if err := ValidateTheme(models.ThemeLight); err != nil {
		t.Errorf("light rejected: %v", err)
	}
	if err := ValidateTheme(models.Theme("sepia")); err == nil {
		t.Error("unknown theme accepted")
	}
}

func TestValidateHabitFields(t *testing.T) {
	fields := models.HabitFields{
		Name:      "Spor",
		Type:      models.HabitBuild,
		Frequency: models.FrequencyDaily,
	}
	if err := ValidateHabitFields(fields); err != nil {
		t.Errorf("valid fields rejected: %v", err)
	}

	fields.Name = ""
	if err := ValidateHabitFields(fields); err == nil {
		t.Error("empty name accepted")
	}
}
