package engine

// Boxes per full pallet by box size.
const (
	BoxesPerPallet4kg  = 288
	BoxesPerPallet10kg = 120
)

// PalletsFromBoxes converts a box count to whole pallets, flooring the
// remainder.
func PalletsFromBoxes(boxes int, boxType string) int {
	if boxes < 0 {
		return 0
	}
	if boxType == "10kg" {
		return boxes / BoxesPerPallet10kg
	}
	return boxes / BoxesPerPallet4kg
}

// WeightFromBoxes converts a box count to kilograms by unit box weight.
func WeightFromBoxes(quantity int, boxType string) float64 {
	unit := 4.0
	if boxType == "10kg" {
		unit = 10.0
	}
	return float64(quantity) * unit
}
