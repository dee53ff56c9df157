package testutil

import "car-price-service/internal/core/domain"

// CarPriceTable is a small slice of the CarPrice dataset.
func CarPriceTable() *domain.DatasetTable {
	return &domain.DatasetTable{
		Columns: []string{"car_ID", "CarName", "curbweight", "carwidth", "horsepower", "highwaympg", "price"},
		Rows: [][]string{
			{"1", "alfa-romero giulia", "2548", "64.1", "111", "27", "13495"},
			{"2", "alfa-romero stelvio", "2548", "64.1", "111", "27", "16500"},
			{"3", "alfa-romero Quadrifoglio", "2823", "65.5", "154", "26", "16500"},
			{"4", "audi 100 ls", "2337", "66.2", "102", "30", "13950"},
			{"5", "audi 100ls", "2824", "66.4", "115", "22", "17450"},
			{"6", "audi fox", "2507", "66.3", "110", "25", "15250"},
			{"7", "audi 100ls", "2844", "71.4", "110", "25", "n/a"},
		},
	}
}
