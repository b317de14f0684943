package types

import (
	"encoding/json"
	"testing"
)

func TestVehicleRecordUnmarshalFlexibleNumbers(t *testing.T) {
	data := `[
		{"unique_id":"a","make":"Ford","model":"Focus","year":2019,"mileage":12000,"updated_at":"2024-01-02T10:00:00Z"},
		{"unique_id":"b","make":"Volvo","model":"V70","year":"2011","mileage":"210000","updated_at":"2024-01-03"},
		{"unique_id":"c","make":"Saab","model":"900","year":null,"mileage":" ","updated_at":""}
	]`
	var records []VehicleRecord
	if err := json.Unmarshal([]byte(data), &records); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if records[0].Year != 2019 || records[0].Mileage != 12000 {
		t.Errorf("Expected 2019/12000, got %d/%d", records[0].Year, records[0].Mileage)
	}
	if records[1].Year != 2011 || records[1].Mileage != 210000 {
		t.Errorf("Expected string numbers to decode, got %d/%d", records[1].Year, records[1].Mileage)
	}
	if records[2].Year != 0 || records[2].Mileage != 0 {
		t.Errorf("Expected empty values to decode as zero, got %d/%d", records[2].Year, records[2].Mileage)
	}
}

func TestVehicleRecordUnmarshalRejectsText(t *testing.T) {
	var record VehicleRecord
	err := json.Unmarshal([]byte(`{"unique_id":"x","year":"new"}`), &record)
	if err == nil {
		t.Errorf("Expected error for non numeric year")
	}
}

func TestVehicleRecordToStringList(t *testing.T) {
	v := VehicleRecord{UniqueId: "1", Make: "Ford", Model: "Fiesta", Year: 2020, Mileage: 30000, UpdatedAt: "2024-03-05T14:07:00Z"}
	got := v.ToStringList()
	expected := []string{"Ford", "Fiesta", "30000", "2020", "03/05/2024 14:07"}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Expected column %d to be %q, got %q", i, expected[i], got[i])
		}
	}
}
