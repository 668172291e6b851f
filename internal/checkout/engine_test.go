package checkout

import (
	"errors"
	"testing"
	"time"

	"yardkeeper/internal/apperr"
	"yardkeeper/internal/models"
	"yardkeeper/internal/store"
)

type fakeReader struct {
	records map[string]*store.Record
}

func (f *fakeReader) SearchByPlate(plate string) (*store.Record, error) {
	return f.records[plate], nil
}

func (f *fakeReader) Get(id uint) (*store.Record, error) {
	for _, r := range f.records {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, apperr.ErrNotFound
}

type fakeRates struct {
	table       map[[2]string]float64
	defaultRate float64
}

func (f *fakeRates) RateFor(location, vehicleType string) (float64, error) {
	if rate, ok := f.table[[2]string{location, vehicleType}]; ok {
		return rate, nil
	}
	return f.defaultRate, nil
}

func activeRecord(id uint, plate string, inDate time.Time) *store.Record {
	rec := &store.Record{
		Vehicle: models.Vehicle{
			RegistrationNumber: plate,
			VehicleType:        "Car",
			InPlace:            "Yard A",
			InDate:             inDate,
			Status:             models.StatusActive,
		},
	}
	rec.ID = id
	return rec
}

func TestDaysStayed(t *testing.T) {
	in := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		now  time.Time
		want int
	}{
		{"same instant", in, 1},
		{"same day", in.Add(6 * time.Hour), 1},
		{"exact one day", in.Add(24 * time.Hour), 1},
		{"just past one day", in.Add(24*time.Hour + time.Minute), 2},
		{"two and a bit days", time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC), 3},
		{"clock skew before intake", in.Add(-time.Hour), 1},
	}
	for _, tc := range cases {
		if got := DaysStayed(in, tc.now); got != tc.want {
			t.Errorf("%s: DaysStayed = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestQuotePricedPair(t *testing.T) {
	inDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	engine := NewEngine(nil,
		&fakeReader{records: map[string]*store.Record{"KA01AB1234": activeRecord(7, "KA01AB1234", inDate)}},
		&fakeRates{table: map[[2]string]float64{{"Yard A", "Car"}: 150}, defaultRate: 100},
	)

	now := time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC)
	q, err := engine.Quote("KA01AB1234", now)
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if q.DaysStayed != 3 {
		t.Fatalf("expected 3 days, got %d", q.DaysStayed)
	}
	if q.PricePerDay != 150 {
		t.Fatalf("expected rate 150, got %v", q.PricePerDay)
	}
	if q.TotalAmount != 450 {
		t.Fatalf("expected total 450, got %v", q.TotalAmount)
	}
	if q.VehicleID != 7 {
		t.Fatalf("expected vehicle id 7, got %d", q.VehicleID)
	}

	// Same now, same quote: quoting is pure.
	q2, err := engine.Quote("KA01AB1234", now)
	if err != nil {
		t.Fatalf("second Quote: %v", err)
	}
	if q2.DaysStayed != q.DaysStayed || q2.TotalAmount != q.TotalAmount {
		t.Fatalf("quote not deterministic: %+v vs %+v", q, q2)
	}
}

func TestQuoteFallsBackToDefaultRate(t *testing.T) {
	inDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	engine := NewEngine(nil,
		&fakeReader{records: map[string]*store.Record{"KA01AB1234": activeRecord(7, "KA01AB1234", inDate)}},
		&fakeRates{defaultRate: 100},
	)

	q, err := engine.Quote("KA01AB1234", time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if q.PricePerDay != 100 {
		t.Fatalf("expected default rate 100, got %v", q.PricePerDay)
	}
	if q.TotalAmount != 300 {
		t.Fatalf("expected total 300, got %v", q.TotalAmount)
	}
}

func TestQuoteUnknownPlate(t *testing.T) {
	engine := NewEngine(nil, &fakeReader{records: map[string]*store.Record{}}, &fakeRates{defaultRate: 100})
	_, err := engine.Quote("MH12ZZ0000", time.Now())
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestQuoteCheckedOutVehicle(t *testing.T) {
	rec := activeRecord(3, "KA01AB1234", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	rec.Status = models.StatusCheckedOut
	engine := NewEngine(nil, &fakeReader{records: map[string]*store.Record{"KA01AB1234": rec}}, &fakeRates{defaultRate: 100})

	_, err := engine.Quote("KA01AB1234", time.Now())
	if !errors.Is(err, apperr.ErrAlreadyCheckedOut) {
		t.Fatalf("expected ErrAlreadyCheckedOut, got %v", err)
	}
}

func TestCommitRejectsBadBillingFigures(t *testing.T) {
	engine := NewEngine(nil, &fakeReader{records: map[string]*store.Record{}}, &fakeRates{defaultRate: 100})

	if _, err := engine.Commit(1, Quote{DaysStayed: 0, PricePerDay: 100}); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for zero days, got %v", err)
	}
	if _, err := engine.Commit(1, Quote{DaysStayed: 2, PricePerDay: -1}); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for negative rate, got %v", err)
	}
}
