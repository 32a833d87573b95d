package models_test

import (
	"testing"

	"dashboard-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	tests := []struct {
		input string
		want  models.OrderStatus
	}{
		{input: "open", want: models.StatusOpen},
		{input: "Open", want: models.StatusOpen},
		{input: "OPEN", want: models.StatusOpen},
		{input: "  checking  ", want: models.StatusChecking},
		{input: "picking", want: models.StatusPicking},
		{input: "Partially Received", want: models.StatusPartiallyReceived},
		{input: "partially   received", want: models.StatusPartiallyReceived},
		{input: "FULLY RECEIVED", want: models.StatusFullyReceived},
		{input: "complete", want: models.StatusComplete},
		{input: "cancel", want: models.StatusCancel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := models.ParseOrderStatus(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOrderStatus_Unknown(t *testing.T) {
	for _, input := range []string{"", "shipped", "openn", "cancelled"} {
		_, err := models.ParseOrderStatus(input)
		assert.Error(t, err, input)
	}
}

func TestOrderStatusLabel(t *testing.T) {
	assert.Equal(t, "Open", models.StatusOpen.Label())
	assert.Equal(t, "Partially Received", models.StatusPartiallyReceived.Label())
	assert.Equal(t, "Cancel", models.StatusCancel.String())
}
