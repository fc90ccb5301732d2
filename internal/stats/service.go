package stats

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
)

var ErrUnsupportedPlatform = errors.New("unsupported share platform")

const instagramHint = "To share on Instagram, please take a screenshot and share it from your photo library!"

type Dashboard struct {
	History     []HistoryEntry `json:"history"`
	TotalScore  int            `json:"totalScore"`
	SmileStreak int            `json:"smileStreak"`
}

type Share struct {
	Platform string `json:"platform"`
	URL      string `json:"url,omitempty"`
	Text     string `json:"text"`
	Message  string `json:"message,omitempty"`
}

// Service hands out copies so callers cannot mutate the mock tables.
type Service struct {
	shareURL string
}

func NewService(shareURL string) *Service {
	return &Service{shareURL: shareURL}
}

func (s *Service) Dashboard() Dashboard {
	total := 0
	for _, h := range mockHistory {
		total += h.Score
	}
	return Dashboard{
		History:     slices.Clone(mockHistory),
		TotalScore:  total,
		SmileStreak: mockStreak,
	}
}

func (s *Service) Leaderboard() []LeaderboardEntry {
	return slices.Clone(mockLeaderboard)
}

func (s *Service) Growth() []GrowthPoint {
	return slices.Clone(mockGrowth)
}

// ShareLink builds the share target for the dashboard summary.
func (s *Service) ShareLink(platform string) (Share, error) {
	d := s.Dashboard()
	text := fmt.Sprintf("I have a %d-day smile streak and a total score of %d on Smile Snaps!", d.SmileStreak, d.TotalScore)

	switch platform {
	case "facebook":
		u := "https://www.facebook.com/sharer/sharer.php?u=" + encodeURIComponent(s.shareURL) + "&quote=" + encodeURIComponent(text)
		return Share{Platform: platform, URL: u, Text: text}, nil
	case "instagram":
		return Share{Platform: platform, Text: text, Message: instagramHint}, nil
	default:
		return Share{}, fmt.Errorf("%w: %q", ErrUnsupportedPlatform, platform)
	}
}

// Browser share links escape with encodeURIComponent: %20 for spaces and
// !'()* left alone.
var uriComponentFixups = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func encodeURIComponent(s string) string {
	return uriComponentFixups.Replace(url.QueryEscape(s))
}
