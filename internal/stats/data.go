// Package stats serves the mock gamification data shown by the front end:
// smile history, leaderboard and growth chart. Nothing here is stored or
// computed from real ratings.
package stats

type HistoryEntry struct {
	Date  string `json:"date"`
	Score int    `json:"score"`
	Image string `json:"image"`
	Name  string `json:"name"`
}

type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Avatar string `json:"avatar"`
}

type GrowthPoint struct {
	Date  string `json:"date"`
	Score int    `json:"score"`
}

const (
	placeholderPhoto  = "https://placehold.co/600x400"
	placeholderAvatar = "https://placehold.co/40x40"

	mockStreak = 3
)

var mockHistory = []HistoryEntry{
	{Date: "2024-07-29", Score: 5, Image: placeholderPhoto, Name: "Supernova Smile"},
	{Date: "2024-07-28", Score: 4, Image: placeholderPhoto, Name: "Beaming with Joy"},
	{Date: "2024-07-27", Score: 3, Image: placeholderPhoto, Name: "Solid Grin"},
}

var mockLeaderboard = []LeaderboardEntry{
	{Rank: 1, Name: "Alex", Score: 1250, Avatar: placeholderAvatar},
	{Rank: 2, Name: "Priya", Score: 1180, Avatar: placeholderAvatar},
	{Rank: 3, Name: "Rohan", Score: 1120, Avatar: placeholderAvatar},
	{Rank: 4, Name: "Sam", Score: 1050, Avatar: placeholderAvatar},
	{Rank: 5, Name: "Emily", Score: 980, Avatar: placeholderAvatar},
}

var mockGrowth = []GrowthPoint{
	{Date: "Jul 1", Score: 3},
	{Date: "Jul 2", Score: 4},
	{Date: "Jul 3", Score: 3},
	{Date: "Jul 4", Score: 5},
	{Date: "Jul 5", Score: 4},
	{Date: "Jul 6", Score: 5},
	{Date: "Jul 7", Score: 5},
}
