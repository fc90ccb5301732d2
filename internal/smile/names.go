package smile

// FallbackName is used when a score has no table entry.
const FallbackName = "Mysterious Mirth"

const (
	MinScore = 0
	MaxScore = 5
)

var funnyNames = [...]string{
	0: "The Mona Lisa Enigma",
	1: "Slightly Amused Stone",
	2: "Polite Grimace",
	3: "Solid Grin",
	4: "Beaming with Joy",
	5: "Supernova Smile",
}

// FunnyName returns the fixed name for score, or FallbackName.
func FunnyName(score int) string {
	if score < 0 || score >= len(funnyNames) || funnyNames[score] == "" {
		return FallbackName
	}
	return funnyNames[score]
}
