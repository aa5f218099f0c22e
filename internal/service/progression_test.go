package service

import (
	"testing"

	"twigane_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		xp   int
		want Level
	}{
		{0, LevelSeed},
		{99, LevelSeed},
		{100, LevelLeaf},
		{499, LevelLeaf},
		{500, LevelBranch},
		{1499, LevelBranch},
		{1500, LevelTree},
		{100000, LevelTree},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFor(tt.xp), "xp=%d", tt.xp)
	}
}

func TestLevelForMonotonic(t *testing.T) {
	order := map[Level]int{LevelSeed: 0, LevelLeaf: 1, LevelBranch: 2, LevelTree: 3}

	prev := LevelFor(0)
	for xp := 1; xp <= 2000; xp++ {
		cur := LevelFor(xp)
		assert.GreaterOrEqual(t, order[cur], order[prev], "level dropped at xp=%d", xp)
		prev = cur
	}
}

func TestNextLevelAt(t *testing.T) {
	assert.Equal(t, 100, NextLevelAt(0))
	assert.Equal(t, 500, NextLevelAt(100))
	assert.Equal(t, 1500, NextLevelAt(700))
	assert.Equal(t, 0, NextLevelAt(1500), "top level has no next threshold")
}

func TestXPForCompletion(t *testing.T) {
	score := 85
	zero := 0

	assert.Equal(t, 85, XPForCompletion(&score), "quiz score becomes the award")
	assert.Equal(t, 10, XPForCompletion(nil), "flat award without a score")
	assert.Equal(t, 10, XPForCompletion(&zero), "zero score falls back to the flat award")
}

func TestGrantXP(t *testing.T) {
	awarded, err := GrantXP(25)
	require.NoError(t, err)
	assert.Equal(t, 25, awarded)

	_, err = GrantXP(-5)
	require.Error(t, err)
	assert.True(t, util.IsValidation(err))
}

func TestEvaluateAchievements(t *testing.T) {
	tests := []struct {
		name     string
		snapshot ProgressionSnapshot
		held     map[string]bool
		want     []string
	}{
		{
			name:     "first lesson earns First Steps",
			snapshot: ProgressionSnapshot{TotalXP: 10, CompletedLessons: 1},
			want:     []string{"First Steps"},
		},
		{
			name:     "crossing 100 XP adds Getting Started",
			snapshot: ProgressionSnapshot{TotalXP: 110, CompletedLessons: 5},
			want:     []string{"First Steps", "Getting Started"},
		},
		{
			name:     "held badges are never re-awarded",
			snapshot: ProgressionSnapshot{TotalXP: 110, CompletedLessons: 5},
			held:     map[string]bool{"First Steps": true, "Getting Started": true},
			want:     nil,
		},
		{
			name:     "seven day streak earns Week Warrior",
			snapshot: ProgressionSnapshot{StreakDays: 7},
			want:     []string{"Week Warrior"},
		},
		{
			name:     "thirty day streak earns both streak badges at once",
			snapshot: ProgressionSnapshot{StreakDays: 30},
			want:     []string{"Week Warrior", "Month of Momentum"},
		},
		{
			name:     "finishing a course earns Course Champion",
			snapshot: ProgressionSnapshot{TotalXP: 40, CompletedLessons: 4, CoursePercent: 100},
			want:     []string{"First Steps", "Course Champion"},
		},
		{
			name:     "empty snapshot earns nothing",
			snapshot: ProgressionSnapshot{},
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			earned := EvaluateAchievements(tt.snapshot, tt.held)

			names := make([]string, 0, len(earned))
			for _, b := range earned {
				names = append(names, b.Name)
			}
			if tt.want == nil {
				assert.Empty(t, names)
			} else {
				assert.Equal(t, tt.want, names)
			}
		})
	}
}

func TestEvaluateAchievementsIdempotent(t *testing.T) {
	snapshot := ProgressionSnapshot{TotalXP: 600, CompletedLessons: 20, StreakDays: 10, CoursePercent: 100}

	held := map[string]bool{}
	first := EvaluateAchievements(snapshot, held)
	require.NotEmpty(t, first)

	for _, b := range first {
		held[b.Name] = true
	}

	second := EvaluateAchievements(snapshot, held)
	assert.Empty(t, second, "re-running against the same snapshot awards nothing new")
}

func TestBadgeCatalogHasUniqueNames(t *testing.T) {
	seen := map[string]bool{}
	for _, rule := range badgeRules {
		assert.False(t, seen[rule.badge.Name], "duplicate badge %s", rule.badge.Name)
		seen[rule.badge.Name] = true
		assert.NotEmpty(t, rule.badge.Description)
		assert.NotEmpty(t, rule.badge.Rarity)
	}
}
