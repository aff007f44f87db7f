package scene

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-well-viewer/internal/model"
)

func TestDecodeUpload(t *testing.T) {
	b64 := base64.StdEncoding.EncodeToString([]byte(exampleCSV))

	tests := []struct {
		name     string
		contents string
		want     string
		wantErr  bool
	}{
		{"base64 data url", "data:text/csv;base64," + b64, exampleCSV, false},
		{"excel mime data url", "data:application/vnd.ms-excel;base64," + b64, exampleCSV, false},
		{"percent encoded data url", "data:text/csv,pozo%2Clitologia", "pozo,litologia", false},
		{"plain text", exampleCSV, exampleCSV, false},
		{"bad base64", "data:text/csv;base64,@@@", "", true},
		{"no separator", "data:text/csv;base64", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeUpload(tt.contents)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrMalformedInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestParseDataset(t *testing.T) {
	ds, err := ParseDataset(strings.NewReader(exampleCSV))
	require.NoError(t, err)

	assert.Equal(t, model.Dataset{
		{WellID: "pozo_1", LithologyID: "lit_1", X: 0, Y: 0, Z: 0},
		{WellID: "pozo_1", LithologyID: "lit_1", X: 1, Y: 1, Z: -100},
		{WellID: "pozo_2", LithologyID: "lit_2", X: 5, Y: 5, Z: -50},
	}, ds)
}

func TestParseDatasetDuplicateHeaderFirstWins(t *testing.T) {
	ds, err := ParseDataset(strings.NewReader("pozo,litologia,x,y,z,x\np,l,1,2,3,99\n"))
	require.NoError(t, err)
	require.Len(t, ds, 1)
	assert.Equal(t, 1.0, ds[0].X)
}

func TestParseDatasetSkipsBlankLines(t *testing.T) {
	ds, err := ParseDataset(strings.NewReader("pozo,litologia,x,y,z\n\np,l,1,2,3\n\n"))
	require.NoError(t, err)
	assert.Len(t, ds, 1)
}
