package jsonextract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "loangate/pkg/domain-errors"
)

func TestFirstObject(t *testing.T) {
	t.Run("plain object", func(t *testing.T) {
		obj, err := FirstObject(`{"loan_amount": 500000, "urgency": "medium"}`)
		require.NoError(t, err)
		assert.Equal(t, float64(500000), obj["loan_amount"])
		assert.Equal(t, "medium", obj["urgency"])
	})

	t.Run("markdown fenced object", func(t *testing.T) {
		obj, err := FirstObject("```json\n{\"has_collateral\": true}\n```")
		require.NoError(t, err)
		assert.Equal(t, true, obj["has_collateral"])
	})

	t.Run("bare fence without language tag", func(t *testing.T) {
		obj, err := FirstObject("```\n{\"loan_purpose\": \"inventory\"}\n```")
		require.NoError(t, err)
		assert.Equal(t, "inventory", obj["loan_purpose"])
	})

	t.Run("object wrapped in prose", func(t *testing.T) {
		obj, err := FirstObject(`Here is the extracted intent: {"loan_amount": 20000000} — let me know if you need more.`)
		require.NoError(t, err)
		assert.Equal(t, float64(20000000), obj["loan_amount"])
	})

	t.Run("nested object returns the outermost", func(t *testing.T) {
		obj, err := FirstObject(`{"intent": {"urgency": "high"}}`)
		require.NoError(t, err)
		inner, ok := obj["intent"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "high", inner["urgency"])
	})

	t.Run("braces inside strings do not break scanning", func(t *testing.T) {
		obj, err := FirstObject(`note first {"purpose": "expansion {phase 2}", "ok": true}`)
		require.NoError(t, err)
		assert.Equal(t, "expansion {phase 2}", obj["purpose"])
	})

	t.Run("no object yields coded error", func(t *testing.T) {
		_, err := FirstObject("I could not determine the intent, sorry.")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("unbalanced object yields coded error", func(t *testing.T) {
		_, err := FirstObject(`{"loan_amount": 500000`)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func TestStripFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"no fences", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"leading whitespace", "  ```json\n{\"a\":1}\n``` ", `{"a":1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StripFences(tc.in))
		})
	}
}
