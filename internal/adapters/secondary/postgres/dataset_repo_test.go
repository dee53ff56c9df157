package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Load itself needs a live Postgres and is covered by integration runs only;
// these tests pin the query it issues and the cell formatting.

func TestBuildSelect(t *testing.T) {
	assert.Equal(t, `SELECT * FROM "car_price" ORDER BY 1`, buildSelect("car_price", "", 0))
	assert.Equal(t, `SELECT * FROM "public"."car_price" ORDER BY 1 LIMIT 500`, buildSelect("public.car_price", "", 500))
	assert.Equal(t, `SELECT * FROM "cars; DROP TABLE x" ORDER BY 1`, buildSelect("cars; DROP TABLE x", "", 0))
}

func TestBuildSelect_OrderBy(t *testing.T) {
	assert.Equal(t, `SELECT * FROM "car_price" ORDER BY "car_ID" LIMIT 5`, buildSelect("car_price", "car_ID", 5))
	assert.Equal(t, `SELECT * FROM "car_price" ORDER BY "id""; --"`, buildSelect("car_price", `id"; --`, 0))
}

func TestFormatRow(t *testing.T) {
	row := formatRow([]any{int32(1), "alfa-romero giulia", 64.1, nil, int64(13495)})
	assert.Equal(t, []string{"1", "alfa-romero giulia", "64.1", "", "13495"}, row)
}
