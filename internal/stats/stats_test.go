package stats

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDashboard(t *testing.T) {
	d := NewService("https://example.com").Dashboard()

	require.Len(t, d.History, 3)
	assert.Equal(t, "Supernova Smile", d.History[0].Name)
	assert.Equal(t, 12, d.TotalScore)
	assert.Equal(t, 3, d.SmileStreak)
}

func TestDashboardReturnsCopies(t *testing.T) {
	svc := NewService("https://example.com")

	d := svc.Dashboard()
	d.History[0].Score = 0
	lb := svc.Leaderboard()
	lb[0].Name = "Mallory"

	assert.Equal(t, 5, svc.Dashboard().History[0].Score)
	assert.Equal(t, "Alex", svc.Leaderboard()[0].Name)
}

func TestLeaderboardAndGrowth(t *testing.T) {
	svc := NewService("")

	lb := svc.Leaderboard()
	require.Len(t, lb, 5)
	for i, e := range lb {
		assert.Equal(t, i+1, e.Rank)
		if i > 0 {
			assert.Less(t, e.Score, lb[i-1].Score)
		}
	}

	g := svc.Growth()
	require.Len(t, g, 7)
	assert.Equal(t, GrowthPoint{Date: "Jul 1", Score: 3}, g[0])
	assert.Equal(t, GrowthPoint{Date: "Jul 7", Score: 5}, g[6])
}

func TestShareLink(t *testing.T) {
	svc := NewService("https://smiles.example/app")
	text := "I have a 3-day smile streak and a total score of 12 on Smile Snaps!"

	fb, err := svc.ShareLink("facebook")
	require.NoError(t, err)
	assert.Equal(t, text, fb.Text)
	u, err := url.Parse(fb.URL)
	require.NoError(t, err)
	assert.Equal(t, "www.facebook.com", u.Host)
	assert.Equal(t, "https://smiles.example/app", u.Query().Get("u"))
	assert.Equal(t, text, u.Query().Get("quote"))

	ig, err := svc.ShareLink("instagram")
	require.NoError(t, err)
	assert.Empty(t, ig.URL)
	assert.Contains(t, ig.Message, "screenshot")

	_, err = svc.ShareLink("myspace")
	assert.ErrorIs(t, err, ErrUnsupportedPlatform)
}

func TestRoutes(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(NewService("https://example.com"), zap.NewNop()))

	tests := []struct {
		path     string
		wantCode int
	}{
		{"/api/dashboard", http.StatusOK},
		{"/api/leaderboard", http.StatusOK},
		{"/api/growth", http.StatusOK},
		{"/api/dashboard/share?platform=facebook", http.StatusOK},
		{"/api/dashboard/share?platform=fax", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, http.NoBody))
			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
				assert.True(t, json.Valid(rec.Body.Bytes()))
			}
		})
	}
}

func TestShareLinkEscapesLikeBrowser(t *testing.T) {
	fb, err := NewService("https://example.com").ShareLink("facebook")
	require.NoError(t, err)

	want := "https://www.facebook.com/sharer/sharer.php?u=https%3A%2F%2Fexample.com" +
		"&quote=I%20have%20a%203-day%20smile%20streak%20and%20a%20total%20score%20of%2012%20on%20Smile%20Snaps!"
	assert.Equal(t, want, fb.URL)
}

func TestEncodeURIComponent(t *testing.T) {
	tests := map[string]string{
		"a b":         "a%20b",
		"1+1=2":       "1%2B1%3D2",
		"wow!(*'x')":  "wow!(*'x')",
		"a&b/c?d":     "a%26b%2Fc%3Fd",
		"-_.~":        "-_.~",
		"100% smiles": "100%25%20smiles",
	}
	for in, want := range tests {
		assert.Equal(t, want, encodeURIComponent(in), in)
	}
}
