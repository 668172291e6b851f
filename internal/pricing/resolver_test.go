package pricing

import (
	"testing"

	"yardkeeper/internal/apperr"
)

func TestValidateEntries(t *testing.T) {
	ok := []Entry{
		{LocationID: 1, VehicleTypeID: 1, Price: 150},
		{LocationID: 1, VehicleTypeID: 2, Price: 0},
	}
	if err := validateEntries(ok); err != nil {
		t.Fatalf("expected valid entries, got %v", err)
	}

	if err := validateEntries([]Entry{{LocationID: 1, VehicleTypeID: 1, Price: -5}}); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for negative rate, got %v", err)
	}
	if err := validateEntries([]Entry{{LocationID: 0, VehicleTypeID: 1, Price: 10}}); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for missing location, got %v", err)
	}
	dup := []Entry{
		{LocationID: 1, VehicleTypeID: 1, Price: 10},
		{LocationID: 1, VehicleTypeID: 1, Price: 20},
	}
	if err := validateEntries(dup); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for duplicate pair, got %v", err)
	}
}
