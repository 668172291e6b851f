package store

import (
	"testing"
	"time"

	"yardkeeper/internal/apperr"
	"yardkeeper/internal/models"
)

func fullChecklist() map[string]bool {
	docs := map[string]bool{}
	for _, tag := range models.DocumentTags {
		docs[tag] = true
	}
	return docs
}

func fiveTyres() []TyreInput {
	tyres := make([]TyreInput, 0, 5)
	for _, pos := range models.TyrePositions {
		tyres = append(tyres, TyreInput{Position: pos, Make: "MRF", Number: "T-1", Condition: models.ConditionGood})
	}
	return tyres
}

func validIntake() IntakeInput {
	return IntakeInput{
		RegistrationNumber: "KA01AB1234",
		VehicleType:        "Car",
		InPlace:            "Yard A",
		InDate:             time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Battery:            BatteryInput{Make: "Exide", Number: "B-9", Condition: models.ConditionGood},
		Documents:          fullChecklist(),
		Tyres:              fiveTyres(),
	}
}

func TestValidateIntakeAccepted(t *testing.T) {
	in := validIntake()
	if err := validateIntake(&in); err != nil {
		t.Fatalf("expected valid intake, got %v", err)
	}
}

func TestValidateIntakeDocumentCoverage(t *testing.T) {
	in := validIntake()
	delete(in.Documents, "toolKit")
	err := validateIntake(&in)
	if !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for missing tag, got %v", err)
	}

	in = validIntake()
	in.Documents["sunroofWarranty"] = true
	if err := validateIntake(&in); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for stray tag, got %v", err)
	}

	in = validIntake()
	in.Documents = nil
	if err := validateIntake(&in); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for missing checklist, got %v", err)
	}
}

func TestValidateIntakeTyreCoverage(t *testing.T) {
	in := validIntake()
	in.Tyres = in.Tyres[:4]
	if err := validateIntake(&in); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for four tyres, got %v", err)
	}

	in = validIntake()
	in.Tyres[4].Position = "Front Left" // duplicate, Stepney missing
	if err := validateIntake(&in); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for duplicate position, got %v", err)
	}

	in = validIntake()
	in.Tyres[0].Position = "Middle Left"
	if err := validateIntake(&in); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for unknown position, got %v", err)
	}

	in = validIntake()
	in.Tyres[2].Condition = "worn"
	if err := validateIntake(&in); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for unknown condition, got %v", err)
	}
}

func TestValidateIntakeRequiredFields(t *testing.T) {
	for _, tc := range []struct {
		name   string
		mutate func(*IntakeInput)
	}{
		{"registration", func(in *IntakeInput) { in.RegistrationNumber = "" }},
		{"vehicle type", func(in *IntakeInput) { in.VehicleType = "" }},
		{"location", func(in *IntakeInput) { in.InPlace = "" }},
		{"intake date", func(in *IntakeInput) { in.InDate = time.Time{} }},
		{"battery condition", func(in *IntakeInput) { in.Battery.Condition = "ok" }},
	} {
		in := validIntake()
		tc.mutate(&in)
		if err := validateIntake(&in); !apperr.IsValidation(err) {
			t.Errorf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}
