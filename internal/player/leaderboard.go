package player

import (
	"context"
	"sort"

	"github.com/promptquest/backend/internal/models"
	"github.com/promptquest/backend/internal/progression"
)

// mockRivals is the static cast shown on the leaderboard alongside the
// requesting player.
var mockRivals = []models.LeaderboardEntry{
	{Name: "Alex Chen", Avatar: "🧑‍💻", XP: 2840, Streak: 12},
	{Name: "Sarah Kim", Avatar: "👩‍🎨", XP: 2150, Streak: 8},
	{Name: "Mike Rodriguez", Avatar: "🧑‍🔬", XP: 1890, Streak: 5},
	{Name: "Emma Wilson", Avatar: "👩‍🚀", XP: 1650, Streak: 9},
	{Name: "David Park", Avatar: "🧙‍♂️", XP: 1420, Streak: 3},
	{Name: "Lisa Thompson", Avatar: "🦸‍♀️", XP: 1180, Streak: 6},
	{Name: "James Lee", Avatar: "🥷", XP: 950, Streak: 2},
	{Name: "Anna Garcia", Avatar: "🧝‍♀️", XP: 720, Streak: 4},
}

// Leaderboard merges the requesting player into the mock roster and
// ranks everyone by XP. key may be empty, in which case only the roster
// is returned.
func (s *Service) Leaderboard(ctx context.Context, key string) (models.LeaderboardResponse, error) {
	entries := make([]models.LeaderboardEntry, 0, len(mockRivals)+1)
	for _, e := range mockRivals {
		e.Level = progression.CalculateLevel(e.XP)
		entries = append(entries, e)
	}

	if key != "" {
		p, err := s.GetProgress(ctx, key)
		if err != nil {
			return models.LeaderboardResponse{}, err
		}
		name := p.Name
		if name == "" {
			name = "You"
		}
		entries = append(entries, models.LeaderboardEntry{
			Name:          name,
			Avatar:        p.Avatar,
			XP:            p.XP,
			Level:         p.Level,
			Streak:        p.Streak,
			IsCurrentUser: true,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].XP > entries[j].XP
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return models.LeaderboardResponse{Entries: entries}, nil
}
