package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseOrderDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "Data no formato esperado",
			input: "2024-03-20",
			want:  time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "Formato brasileiro é rejeitado",
			input:   "20/03/2024",
			wantErr: true,
		},
		{
			name:    "Data com hora é rejeitada",
			input:   "2024-03-20T10:00:00Z",
			wantErr: true,
		},
		{
			name:    "Texto vazio é rejeitado",
			input:   "",
			wantErr: true,
		},
		{
			name:    "Dia inexistente é rejeitado",
			input:   "2024-02-30",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOrderDate(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
		})
	}
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 10.56, RoundWithTwoDecimalPlace(10.556))
	assert.Equal(t, 10.55, RoundWithTwoDecimalPlace(10.554))
	assert.Equal(t, -3.33, RoundWithTwoDecimalPlace(-3.333))
}
