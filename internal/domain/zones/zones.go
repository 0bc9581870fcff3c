package zones

// Zone is a shot-location bucket: a stable client key and the provider's label for it.
type Zone struct {
	Key   string
	Label string
}

// Client keys for the six tracked shot zones.
const (
	RestrictedArea = "ra"
	Paint          = "paint"
	MidRange       = "mid"
	LeftCorner3    = "lc3"
	RightCorner3   = "rc3"
	AboveBreak3    = "ab3"
)

var all = []Zone{
	{Key: RestrictedArea, Label: "Restricted Area"},
	{Key: Paint, Label: "In The Paint (Non-RA)"},
	{Key: MidRange, Label: "Mid-Range"},
	{Key: LeftCorner3, Label: "Left Corner 3"},
	{Key: RightCorner3, Label: "Right Corner 3"},
	{Key: AboveBreak3, Label: "Above the Break 3"},
}

// All returns the six zones in display order.
func All() []Zone {
	out := make([]Zone, len(all))
	copy(out, all)
	return out
}
