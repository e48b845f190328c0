package domain

// Direction trend classification of a bar.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// Label returns the chat representation of the direction.
func (d Direction) Label() string {
	switch d {
	case DirectionUp:
		return "BUY 🟢"
	case DirectionDown:
		return "SELL 🔴"
	default:
		return "UNKNOWN"
	}
}

// IsValid checks if the Direction value is valid.
func (d Direction) IsValid() bool {
	return d == DirectionUp || d == DirectionDown
}
