package teams

// Sentinels used when an id cannot be resolved to a franchise.
const (
	UnknownOpponent = "NBA"
	UnknownTeam     = "UNK"
)

// Identity pairs an upstream team id with its stable display abbreviation.
type Identity struct {
	ID           int
	Abbreviation string
}

// franchises lists every NBA franchise keyed by stats.nba.com team id.
var franchises = []Identity{
	{ID: 1610612737, Abbreviation: "ATL"},
	{ID: 1610612738, Abbreviation: "BOS"},
	{ID: 1610612739, Abbreviation: "CLE"},
	{ID: 1610612740, Abbreviation: "NOP"},
	{ID: 1610612741, Abbreviation: "CHI"},
	{ID: 1610612742, Abbreviation: "DAL"},
	{ID: 1610612743, Abbreviation: "DEN"},
	{ID: 1610612744, Abbreviation: "GSW"},
	{ID: 1610612745, Abbreviation: "HOU"},
	{ID: 1610612746, Abbreviation: "LAC"},
	{ID: 1610612747, Abbreviation: "LAL"},
	{ID: 1610612748, Abbreviation: "MIA"},
	{ID: 1610612749, Abbreviation: "MIL"},
	{ID: 1610612750, Abbreviation: "MIN"},
	{ID: 1610612751, Abbreviation: "BKN"},
	{ID: 1610612752, Abbreviation: "NYK"},
	{ID: 1610612753, Abbreviation: "ORL"},
	{ID: 1610612754, Abbreviation: "IND"},
	{ID: 1610612755, Abbreviation: "PHI"},
	{ID: 1610612756, Abbreviation: "PHX"},
	{ID: 1610612757, Abbreviation: "POR"},
	{ID: 1610612758, Abbreviation: "SAC"},
	{ID: 1610612759, Abbreviation: "SAS"},
	{ID: 1610612760, Abbreviation: "OKC"},
	{ID: 1610612761, Abbreviation: "TOR"},
	{ID: 1610612762, Abbreviation: "UTA"},
	{ID: 1610612763, Abbreviation: "MEM"},
	{ID: 1610612764, Abbreviation: "WAS"},
	{ID: 1610612765, Abbreviation: "DET"},
	{ID: 1610612766, Abbreviation: "CHA"},
}

// Franchises returns a copy of the built-in franchise table.
func Franchises() []Identity {
	out := make([]Identity, len(franchises))
	copy(out, franchises)
	return out
}
