package model_test

import (
	"testing"

	"careerday/internal/domains/roundtable/model"

	"github.com/stretchr/testify/assert"
)

func loads(a, b, c int) []model.TableLoad {
	return []model.TableLoad{
		{ID: "A", Capacity: 10, Booked: a},
		{ID: "B", Capacity: 10, Booked: b},
		{ID: "C", Capacity: 10, Booked: c},
	}
}

func TestCurrentPhase(t *testing.T) {
	assert.Equal(t, model.PhaseOne, model.CurrentPhase(nil))
	assert.Equal(t, model.PhaseOne, model.CurrentPhase(loads(0, 0, 0)))
	assert.Equal(t, model.PhaseOne, model.CurrentPhase(loads(5, 5, 4)))
	assert.Equal(t, model.PhaseTwo, model.CurrentPhase(loads(5, 5, 5)))
	assert.Equal(t, model.PhaseTwo, model.CurrentPhase(loads(9, 5, 6)))

	odd := []model.TableLoad{{ID: "A", Capacity: 7, Booked: 3}, {ID: "B", Capacity: 3, Booked: 1}}
	assert.Equal(t, model.PhaseTwo, model.CurrentPhase(odd))
}

func TestAdmit(t *testing.T) {
	tests := []struct {
		name     string
		loads    []model.TableLoad
		table    string
		admitted bool
		phase    model.Phase
		cap      int
	}{
		{"empty table in phase one", loads(0, 0, 0), "A", true, model.PhaseOne, 5},
		{"sixth seat waits for the others", loads(5, 0, 0), "A", false, model.PhaseOne, 5},
		{"others still open in phase one", loads(5, 4, 0), "B", true, model.PhaseOne, 5},
		{"sixth seat after every table reached half", loads(5, 5, 5), "A", true, model.PhaseTwo, 10},
		{"full in phase two", loads(10, 5, 5), "A", false, model.PhaseTwo, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := model.Admit(tt.loads, tt.table)

			assert.True(t, d.Found)
			assert.Equal(t, tt.admitted, d.Admitted)
			assert.Equal(t, tt.phase, d.Phase)
			assert.Equal(t, tt.cap, d.Cap)
		})
	}

	assert.False(t, model.Admit(loads(0, 0, 0), "Z").Found)
}
