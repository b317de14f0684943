package types

import "fmt"

// MockVehicles returns a small fixed inventory used by tests and the demo
// dataset generator.
func MockVehicles() []VehicleRecord {
	return []VehicleRecord{
		{UniqueId: "v-001", Make: "Ford", Model: "Focus", Year: 2020, Mileage: 30000, UpdatedAt: "2024-05-01T08:30:00Z"},
		{UniqueId: "v-002", Make: "Ford", Model: "Fiesta", Year: 2018, Mileage: 10000, UpdatedAt: "2024-04-11T12:00:00Z"},
		{UniqueId: "v-003", Make: "Toyota", Model: "Corolla", Year: 2021, Mileage: 5000, UpdatedAt: "2024-06-20T16:45:00Z"},
		{UniqueId: "v-004", Make: "volvo", Model: "XC60", Year: 2018, Mileage: 88000, UpdatedAt: "not recorded"},
		{UniqueId: "v-005", Make: "BMW", Model: "320d", Year: 2016, Mileage: 142000, UpdatedAt: "2023-12-24"},
		{UniqueId: "v-006", Make: "Toyota", Model: "RAV4", Year: 2019, Mileage: 0, UpdatedAt: "2024-06-20T16:45:00Z"},
	}
}

// GenerateVehicles builds n records of a single make with increasing year
// and mileage, handy for paging.
func GenerateVehicles(n int, brand string) []VehicleRecord {
	ret := make([]VehicleRecord, n)
	for i := range ret {
		ret[i] = VehicleRecord{
			UniqueId:  fmt.Sprintf("%s-%03d", brand, i+1),
			Make:      brand,
			Model:     fmt.Sprintf("Model %d", i%3),
			Year:      FlexInt(2000 + i%20),
			Mileage:   FlexInt(1000 * (i + 1)),
			UpdatedAt: fmt.Sprintf("2024-01-%02dT10:00:00Z", i%28+1),
		}
	}
	return ret
}
