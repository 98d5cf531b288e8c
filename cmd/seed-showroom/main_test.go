package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCart(t *testing.T) {
	tests := []struct {
		in      string
		want    map[int64]int
		wantErr bool
	}{
		{in: "1:2,3:1", want: map[int64]int{1: 2, 3: 1}},
		{in: "4", want: map[int64]int{4: 1}},
		{in: "1:1, 1:2", want: map[int64]int{1: 3}},
		{in: "", want: map[int64]int{}},
		{in: "x:1", wantErr: true},
		{in: "1:0", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseCart(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestReadCars(t *testing.T) {
	cars, err := readCars(filepath.Join("..", "..", "db", "seed", "cars.json"))
	require.NoError(t, err)
	require.NotEmpty(t, cars)
	assert.Equal(t, "1961 Jaguar E-Type Series 1", cars[0].Name())
	assert.Equal(t, "100.00", cars[0].Price.StringFixed(2))
}

func TestReadCars_RejectsNegativePrice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cars.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":1,"make":"MG","model":"B","year":1970,"price":"-1"}]`), 0o600))

	_, err := readCars(path)
	require.Error(t, err)
}
