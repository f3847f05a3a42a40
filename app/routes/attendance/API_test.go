package attendance

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/models"
)

func TestOptionalStatusTriState(t *testing.T) {
	type payload struct {
		Afternoon optionalStatus `json:"afternoonStatus"`
		Night     optionalStatus `json:"nightStatus"`
	}

	// Field absent: Set stays false, stored value must not be touched
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"nightStatus":"PRESENT"}`), &p))
	assert.False(t, p.Afternoon.Set)
	assert.True(t, p.Night.Set)
	require.NotNil(t, p.Night.Value)
	assert.Equal(t, models.MealPresent, *p.Night.Value)

	// Explicit null: Set with a nil value, meaning shift not applicable
	p = payload{}
	require.NoError(t, json.Unmarshal([]byte(`{"afternoonStatus":null}`), &p))
	assert.True(t, p.Afternoon.Set)
	assert.Nil(t, p.Afternoon.Value)

	// ABSENT parses like PRESENT
	p = payload{}
	require.NoError(t, json.Unmarshal([]byte(`{"afternoonStatus":"ABSENT"}`), &p))
	require.NotNil(t, p.Afternoon.Value)
	assert.Equal(t, models.MealAbsent, *p.Afternoon.Value)
}

func TestOptionalStatusRejectsUnknownValues(t *testing.T) {
	var s optionalStatus
	assert.Error(t, json.Unmarshal([]byte(`"LATE"`), &s))
	assert.Error(t, json.Unmarshal([]byte(`42`), &s))
}
