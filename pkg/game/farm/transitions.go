package farm

// grow is the time-driven transition applied by UpdateTiles. It is not a
// player action.
const grow Action = "grow"

type transitionKey struct {
	from   TileState
	action Action
}

// transitions is the complete set of legal guarded moves. Any pair missing
// from the table is rejected without mutation.
var transitions = map[transitionKey]TileState{
	{Empty, Hoe}:           Hoed,
	{Hoed, Plant}:          Planted,
	{Planted, Water}:       Watered,
	{Watered, grow}:        Harvestable,
	{Harvestable, Harvest}: Empty,
}

// Next returns the state reached by applying action in state from
func Next(from TileState, action Action) (TileState, bool) {
	to, ok := transitions[transitionKey{from, action}]
	return to, ok
}
