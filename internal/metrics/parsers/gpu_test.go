package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNvidiaTemperature(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    float64
		wantErr bool
	}{
		{name: "single gpu", output: "65\n", want: 65},
		{name: "multiple gpus uses first", output: "54\n71\n", want: 54},
		{name: "surrounding whitespace", output: "  48  \n", want: 48},
		{name: "empty", output: "", wantErr: true},
		{name: "not available", output: "[N/A]\n", wantErr: true},
		{name: "not supported", output: "[Not Supported]", wantErr: true},
		{name: "error text", output: "NVIDIA-SMI has failed because it couldn't communicate with the NVIDIA driver.", wantErr: true},
		{name: "nan", output: "NaN", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNvidiaTemperature(tt.output)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}
