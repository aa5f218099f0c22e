package service

import (
	"twigane_backend/internal/model"
	"twigane_backend/internal/util"
)

type Level string

const (
	LevelSeed   Level = "Seed"
	LevelLeaf   Level = "Leaf"
	LevelBranch Level = "Branch"
	LevelTree   Level = "Tree"
)

type levelStep struct {
	threshold int
	level     Level
}

// Ordered ascending; LevelFor picks the highest step at or below the total.
var levelSteps = []levelStep{
	{0, LevelSeed},
	{100, LevelLeaf},
	{500, LevelBranch},
	{1500, LevelTree},
}

// LevelFor maps a lifetime XP total to its growth level.
func LevelFor(xp int) Level {
	level := levelSteps[0].level
	for _, step := range levelSteps {
		if xp >= step.threshold {
			level = step.level
		}
	}
	return level
}

// NextLevelAt returns the XP threshold of the next level, or 0 when the
// learner already sits at the top.
func NextLevelAt(xp int) int {
	for _, step := range levelSteps {
		if xp < step.threshold {
			return step.threshold
		}
	}
	return 0
}

// XPForCompletion is the award for a completed lesson: the quiz score when
// one was recorded, a flat 10 otherwise. A zero score still falls back to
// the flat award.
func XPForCompletion(score *int) int {
	if score != nil && *score > 0 {
		return *score
	}
	return 10
}

// GrantXP validates an award amount. Negative amounts are rejected; XP only
// ever goes up.
func GrantXP(amount int) (int, error) {
	if amount < 0 {
		return 0, util.NewValidationError("xp", "xp award cannot be negative")
	}
	return amount, nil
}

// ProgressionSnapshot is everything the badge rules look at. It is assembled
// by the caller after the completion write so rules never touch storage.
type ProgressionSnapshot struct {
	TotalXP          int
	CompletedLessons int
	StreakDays       int
	CoursePercent    int
}

type Badge struct {
	Name        string
	Description string
	Rarity      model.Rarity
}

type badgeRule struct {
	badge     Badge
	satisfied func(s ProgressionSnapshot) bool
}

var badgeRules = []badgeRule{
	{
		badge: Badge{"First Steps", "Completed your first lesson", model.Common},
		satisfied: func(s ProgressionSnapshot) bool {
			return s.CompletedLessons >= 1
		},
	},
	{
		badge: Badge{"Getting Started", "Earned 100 XP", model.Common},
		satisfied: func(s ProgressionSnapshot) bool {
			return s.TotalXP >= 100
		},
	},
	{
		badge: Badge{"Learning Machine", "Earned 500 XP", model.Rare},
		satisfied: func(s ProgressionSnapshot) bool {
			return s.TotalXP >= 500
		},
	},
	{
		badge: Badge{"Week Warrior", "Checked in 7 days in a row", model.Rare},
		satisfied: func(s ProgressionSnapshot) bool {
			return s.StreakDays >= 7
		},
	},
	{
		badge: Badge{"Month of Momentum", "Checked in 30 days in a row", model.Epic},
		satisfied: func(s ProgressionSnapshot) bool {
			return s.StreakDays >= 30
		},
	},
	{
		badge: Badge{"Course Champion", "Finished every lesson in a course", model.Epic},
		satisfied: func(s ProgressionSnapshot) bool {
			return s.CoursePercent >= 100
		},
	},
}

// EvaluateAchievements runs the rule table against the snapshot and returns
// the badges newly earned. A badge already in held is never returned again,
// so re-running after every completion is safe.
func EvaluateAchievements(s ProgressionSnapshot, held map[string]bool) []Badge {
	var earned []Badge
	for _, rule := range badgeRules {
		if held[rule.badge.Name] {
			continue
		}
		if rule.satisfied(s) {
			earned = append(earned, rule.badge)
		}
	}
	return earned
}
