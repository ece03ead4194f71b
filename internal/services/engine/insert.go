package engine

import (
	"littlesearch/internal/domain/models"
)

// insertLast moves the last element of occs into its ranked position. All
// elements before it are already sorted by descending frequency, so a binary
// search over that prefix finds the spot. Returns the updated slice and the
// sequence of midpoints probed by the search, nil for a single-element slice.
func insertLast(occs []models.Occurrence) ([]models.Occurrence, []int) {
	if len(occs) == 1 {
		return occs, nil
	}

	newOcc := occs[len(occs)-1]
	occs = occs[:len(occs)-1]

	var probed []int
	low, high, mid := 0, len(occs)-1, 0
	for high >= low {
		mid = (high + low) / 2
		probed = append(probed, mid)

		if occs[mid].Frequency == newOcc.Frequency {
			// Equal frequencies keep merge order: the new occurrence
			// goes right after the entry it matched.
			return insertAt(occs, mid+1, newOcc), probed
		}

		if occs[mid].Frequency > newOcc.Frequency {
			low = mid + 1
		} else {
			high = mid - 1
		}
	}

	if mid == 0 && newOcc.Frequency < occs[0].Frequency {
		return insertAt(occs, 1, newOcc), probed
	}
	return insertAt(occs, mid, newOcc), probed
}

func insertAt(occs []models.Occurrence, i int, occ models.Occurrence) []models.Occurrence {
	occs = append(occs, models.Occurrence{})
	copy(occs[i+1:], occs[i:])
	occs[i] = occ
	return occs
}
