package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanReorder(t *testing.T) {
	order := []string{"a", "b", "c", "d"}

	tests := []struct {
		name    string
		dragged string
		target  string
		want    []string
	}{
		{"drag forward", "a", "c", []string{"b", "a", "c", "d"}},
		{"drag backward", "d", "b", []string{"a", "d", "b", "c"}},
		{"drag to front", "c", "a", []string{"c", "a", "b", "d"}},
		{"drop on itself", "b", "b", []string{"a", "b", "c", "d"}},
		{"unknown dragged id", "x", "b", []string{"a", "b", "c", "d"}},
		{"unknown target id", "b", "x", []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := PlanReorder(order, tt.dragged, tt.target)
			assert.Len(t, entries, len(tt.want))
			for i, id := range tt.want {
				assert.Equal(t, id, entries[i].ID)
				assert.Equal(t, i, entries[i].Position, "positions are contiguous from 0")
			}
		})
	}
}

func TestPlanReorderEmptyOrder(t *testing.T) {
	assert.Empty(t, PlanReorder(nil, "a", "b"))
}
