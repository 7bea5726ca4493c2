package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecisionForm_Validate(t *testing.T) {
	cases := []struct {
		name   string
		form   DecisionForm
		fields map[string]string
	}{
		{"genuine", DecisionForm{Status: "genuine"}, nil},
		{"suspicious with notes", DecisionForm{Status: "suspicious", Notes: "watch lane 3"}, nil},
		{"fraudulent with category", DecisionForm{Status: "fraudulent", FraudCategory: "sweethearting"}, nil},
		{"missing status", DecisionForm{}, map[string]string{"status": "required"}},
		{"unknown status", DecisionForm{Status: "pending"}, map[string]string{"status": "oneof"}},
		{"fraudulent without category", DecisionForm{Status: "fraudulent"}, map[string]string{"fraud_category": "required_if"}},
		{"unknown category", DecisionForm{Status: "fraudulent", FraudCategory: "shoplifting"}, map[string]string{"fraud_category": "fraudcategory"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.form.Validate()
			if tc.fields == nil {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrValidation)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.fields, verr.Fields)
		})
	}
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"status": "required", "fraud_category": "required_if"}}
	assert.Equal(t, "invalid decision: fraud_category: required_if, status: required", err.Error())
}
