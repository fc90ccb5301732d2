package smile

import "github.com/smilesnaps/smile-rater/internal/ai"

const AnalyzePrompt = `You are a smile analyzer. Look at the smile in the attached photo and rate how happy it is.

Return happinessScore: a number between 0 and 5.
Return funnySmileName: a short, funny, lighthearted name for the smile that fits the score.`

// OutputSchema is the shape every model reply must have.
var OutputSchema = ai.Schema{
	Name: "smile_analysis",
	Fields: []ai.Field{
		{
			Name:        "happinessScore",
			Kind:        ai.KindNumber,
			Description: "A score from 0 to 5 indicating the level of happiness in the smile.",
			Required:    true,
		},
		{
			Name:        "funnySmileName",
			Kind:        ai.KindString,
			Description: "A funny, lighthearted name for the smile based on the score.",
			Required:    true,
		},
	},
}
