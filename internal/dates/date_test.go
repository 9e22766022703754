package dates

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	if d != (Date{Year: 2024, Month: 2, Day: 29}) {
		t.Errorf("ParseDate() = %+v", d)
	}
	if d.String() != "2024-02-29" {
		t.Errorf("String() = %q", d.String())
	}

	if _, err := ParseDate("2023-02-29"); err == nil {
		t.Error("expected error for non-existent day")
	}
	if _, err := ParseDate("29/02/2024"); err == nil {
		t.Error("expected error for wrong layout")
	}
}

func TestDate_Validate(t *testing.T) {
	tests := []struct {
		name    string
		date    Date
		wantErr bool
		isRange bool
	}{
		{name: "valid", date: Date{2023, 11, 20}},
		{name: "leap day", date: Date{2024, 2, 29}},
		{name: "no leap day", date: Date{2023, 2, 29}, wantErr: true},
		{name: "day zero", date: Date{2023, 1, 0}, wantErr: true},
		{name: "month 13", date: Date{2023, 13, 1}, wantErr: true, isRange: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.date.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.isRange && !errors.Is(err, ErrOutOfRange) {
				t.Errorf("Validate() error = %v, want ErrOutOfRange", err)
			}
		})
	}
}

func TestDate_At(t *testing.T) {
	got := Date{2030, 1, 5}.At(18, 30)
	want := time.Date(2030, time.January, 5, 18, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("At() = %v, want %v", got, want)
	}
}
