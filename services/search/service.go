package search

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	teacherRepo "teacherdekho/database/repository/teacher"
	"teacherdekho/models"
	"teacherdekho/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// SearchService serves filtered teacher listings.
type SearchService interface {
	Search(criteria Criteria) ([]models.TeacherListing, error)
}

// DefaultSearchService fetches the wholesale listing set (with a short-TTL
// Redis cache in front of Mongo) and filters it in memory.
type DefaultSearchService struct {
	Repo  teacherRepo.TeacherRepository
	Cache *redis.Client
}

func (s *DefaultSearchService) Search(criteria Criteria) ([]models.TeacherListing, error) {
	listings, err := s.listings()
	if err != nil {
		return nil, err
	}
	return Filter(listings, criteria), nil
}

func (s *DefaultSearchService) listings() ([]models.TeacherListing, error) {
	logger := utils.GetLogger()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, utils.ListingCacheKey).Result()
		if err == nil {
			var listings []models.TeacherListing
			if jerr := json.Unmarshal([]byte(cached), &listings); jerr == nil {
				return listings, nil
			}
			// A corrupt cache entry falls through to a fresh fetch.
			logger.Warn("listing cache entry unreadable, refetching")
		}
	}

	teachers, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch teacher listings: %w", err)
	}
	listings := make([]models.TeacherListing, 0, len(teachers))
	for i := range teachers {
		listings = append(listings, teachers[i].Listing())
	}

	if s.Cache != nil {
		if data, jerr := json.Marshal(listings); jerr == nil {
			if cerr := s.Cache.Set(ctx, utils.ListingCacheKey, data, utils.ListingCacheTTL).Err(); cerr != nil {
				logger.Warn("failed to cache teacher listings", zap.Error(cerr))
			}
		}
	}
	return listings, nil
}
