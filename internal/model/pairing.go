package model

// Format is the match-play format used for a round or a nine
type Format string

const (
	FormatScramble Format = "scramble"
	FormatShamble  Format = "shamble"
	FormatAltShot  Format = "altshot"
	FormatFourBall Format = "fourball"
	FormatSingles  Format = "singles"
	FormatStroke   Format = "stroke"
)

// SlotField names one player reference inside a match slot
type SlotField string

const (
	FieldA1 SlotField = "a1"
	FieldA2 SlotField = "a2"
	FieldB1 SlotField = "b1"
	FieldB2 SlotField = "b2"
	FieldA  SlotField = "a" // Singles only
	FieldB  SlotField = "b" // Singles only
)

// Column is the team side a slot field belongs to
type Column string

const (
	ColumnA Column = "A"
	ColumnB Column = "B"
)

// Column returns the team column a field is drawn from
func (f SlotField) Column() Column {
	switch f {
	case FieldA1, FieldA2, FieldA:
		return ColumnA
	default:
		return ColumnB
	}
}

// Team returns the team whose players are offered for a column
func (c Column) Team() Team {
	if c == ColumnA {
		return TeamA
	}
	return TeamB
}

// Shape describes the fixed layout of a pairing session
type Shape struct {
	Slots  int
	Fields []SlotField
	// Pooled means duplicates are checked across all fields together
	// rather than per column.
	Pooled bool
}

var (
	fourPlayerShape = Shape{
		Slots:  3,
		Fields: []SlotField{FieldA1, FieldA2, FieldB1, FieldB2},
		Pooled: true,
	}
	singlesShape = Shape{
		Slots:  6,
		Fields: []SlotField{FieldA, FieldB},
	}
)

// Shape returns the pairing layout for a format
func (f Format) Shape() (Shape, error) {
	switch f {
	case FormatScramble, FormatShamble, FormatAltShot, FormatFourBall:
		return fourPlayerShape, nil
	case FormatSingles:
		return singlesShape, nil
	default:
		return Shape{}, ErrUnsupportedFormat
	}
}

// HasField reports whether the shape contains a field
func (s Shape) HasField(field SlotField) bool {
	for _, f := range s.Fields {
		if f == field {
			return true
		}
	}
	return false
}

// Slot is one match: each field holds a player reference, "" when empty
type Slot map[SlotField]PlayerID

// EmptySlots builds the all-empty slot sequence for a shape
func EmptySlots(shape Shape) []Slot {
	slots := make([]Slot, shape.Slots)
	for i := range slots {
		slot := make(Slot, len(shape.Fields))
		for _, f := range shape.Fields {
			slot[f] = ""
		}
		slots[i] = slot
	}
	return slots
}

// Clone returns an independent copy of the slot
func (s Slot) Clone() Slot {
	c := make(Slot, len(s))
	for k, v := range s {
		c[k] = v
	}
	return c
}

// IsEmpty returns true if no field holds a player
func (s Slot) IsEmpty() bool {
	for _, id := range s {
		if id != "" {
			return false
		}
	}
	return true
}

// Round is one block of the event with its own pairing page
type Round struct {
	ID         string
	Name       string
	Formats    []Format // Front nine then back nine; singles rounds have one
	Points     float64  // Points per match
	StorageKey string   // Pairings key suffix when it differs from ID
}

// Key returns the suffix the round's pairings are stored under
func (r Round) Key() string {
	if r.StorageKey != "" {
		return r.StorageKey
	}
	return r.ID
}

// Shape returns the pairing layout shared by the round's formats
func (r Round) Shape() (Shape, error) {
	if len(r.Formats) == 0 {
		return Shape{}, ErrUnsupportedFormat
	}
	shape, err := r.Formats[0].Shape()
	if err != nil {
		return Shape{}, err
	}
	for _, f := range r.Formats[1:] {
		other, err := f.Shape()
		if err != nil {
			return Shape{}, err
		}
		if other.Slots != shape.Slots || len(other.Fields) != len(shape.Fields) {
			return Shape{}, ErrUnsupportedFormat
		}
	}
	return shape, nil
}

// DefaultSchedule returns the three pairing rounds of the Cup weekend
func DefaultSchedule() []Round {
	return []Round{
		{
			ID:      "sat-am",
			Name:    "Saturday Morning",
			Formats: []Format{FormatScramble, FormatShamble},
			Points:  1,
		},
		{
			ID:      "sat-pm",
			Name:    "Saturday Afternoon",
			Formats: []Format{FormatAltShot, FormatFourBall},
			Points:  1,
		},
		{
			ID:         "sunday",
			Name:       "Sunday Singles",
			Formats:    []Format{FormatSingles},
			Points:     2,
			StorageKey: "sun",
		},
	}
}

// FindRound looks up a round in a schedule by ID
func FindRound(schedule []Round, id string) (Round, error) {
	for _, r := range schedule {
		if r.ID == id {
			return r, nil
		}
	}
	return Round{}, ErrRoundNotFound
}
