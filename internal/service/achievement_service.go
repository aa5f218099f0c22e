package service

import (
	"twigane_backend/internal/model"
	"twigane_backend/internal/repository"
)

type AchievementService struct {
	achievementRepo *repository.AchievementRepository
}

func NewAchievementService(achievementRepo *repository.AchievementRepository) *AchievementService {
	return &AchievementService{achievementRepo: achievementRepo}
}

func (s *AchievementService) ListForUser(userID uint) ([]model.Achievement, error) {
	return s.achievementRepo.FindByUserID(userID)
}

// Catalog returns every badge the rule table can award, for the trophy-case
// view that shows locked badges greyed out.
func (s *AchievementService) Catalog() []Badge {
	badges := make([]Badge, len(badgeRules))
	for i, rule := range badgeRules {
		badges[i] = rule.badge
	}
	return badges
}
