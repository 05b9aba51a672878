package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bw3sley/ignite-daily-diet-api/models"
)

type SummaryService struct{ db *gorm.DB }

func NewSummaryService(db *gorm.DB) *SummaryService { return &SummaryService{db: db} }

type MealSummary struct {
	MealsOnDiet        int64 `json:"mealsOnDiet"`
	MealsOffDiet       int64 `json:"mealsOffDiet"`
	TotalMeals         int64 `json:"totalMeals"`
	BestOnDietSequence int64 `json:"bestOnDietSequence"`
}

// Summary aggregates the caller's full meal history: on/off-diet counts plus
// the longest run of consecutive on-diet meals. The streak is computed over
// the rows in retrieval order, not meal_time order.
func (s *SummaryService) Summary(ctx context.Context, userID uuid.UUID) (*MealSummary, error) {
	out := &MealSummary{}

	if err := s.db.WithContext(ctx).Model(&models.Meal{}).
		Where("user_id = ? AND is_on_diet = ?", userID, true).
		Count(&out.MealsOnDiet).Error; err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(&models.Meal{}).
		Where("user_id = ? AND is_on_diet = ?", userID, false).
		Count(&out.MealsOffDiet).Error; err != nil {
		return nil, err
	}

	var meals []models.Meal
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&meals).Error; err != nil {
		return nil, err
	}
	out.TotalMeals = int64(len(meals))

	var current int64
	for _, m := range meals {
		if m.IsOnDiet {
			current++
		} else {
			current = 0
		}
		if current > out.BestOnDietSequence {
			out.BestOnDietSequence = current
		}
	}

	return out, nil
}
