package client

// PlanReorder computes the position assignment after a drag-and-drop move,
// independent of any UI framework: draggedID is removed from the current
// order and reinserted at dropTargetID's slot, shifting the target and
// everything after it down. Positions come back contiguous from 0, so
// repeated reorders never accumulate gaps or collisions.
//
// Dropping an item onto itself, or naming an id that is not in the order,
// yields the current order unchanged (still renumbered from 0).
func PlanReorder(order []string, draggedID, dropTargetID string) []PositionEntry {
	draggedAt := indexOf(order, draggedID)
	targetAt := indexOf(order, dropTargetID)

	result := make([]string, 0, len(order))
	if draggedAt < 0 || targetAt < 0 || draggedID == dropTargetID {
		result = append(result, order...)
	} else {
		for _, id := range order {
			if id == draggedID {
				continue
			}
			if id == dropTargetID {
				result = append(result, draggedID)
			}
			result = append(result, id)
		}
	}

	entries := make([]PositionEntry, len(result))
	for i, id := range result {
		entries[i] = PositionEntry{ID: id, Position: i}
	}
	return entries
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
