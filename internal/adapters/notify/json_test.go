package notify_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/alejandrodnm/hedgecalc/internal/adapters/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON_Render(t *testing.T) {
	var buf bytes.Buffer
	j := notify.NewJSONWriter(&buf)

	require.NoError(t, j.Render(context.Background(), makeCalc(t, "1.01")))

	var doc struct {
		ID      string `json:"id"`
		Outcome struct {
			TotalInvestment string `json:"total_investment"`
		} `json:"outcome"`
		Sensitivity struct {
			Decrease []json.RawMessage `json:"decrease"`
			Increase []struct {
				Direction string `json:"direction"`
				OddsDelta string `json:"odds_delta"`
			} `json:"increase"`
		} `json:"sensitivity"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "test-calc", doc.ID)
	assert.NotEmpty(t, doc.Outcome.TotalInvestment)
	assert.Empty(t, doc.Sensitivity.Decrease)
	require.Len(t, doc.Sensitivity.Increase, 5)
	assert.Equal(t, "increase", doc.Sensitivity.Increase[0].Direction)
	assert.Equal(t, "0.01", doc.Sensitivity.Increase[0].OddsDelta)
}
