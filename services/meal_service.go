package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bw3sley/ignite-daily-diet-api/models"
)

type MealService struct{ db *gorm.DB }

func NewMealService(db *gorm.DB) *MealService { return &MealService{db: db} }

// ListMeals returns every meal owned by userID, most recent meal first.
func (s *MealService) ListMeals(ctx context.Context, userID uuid.UUID) ([]models.Meal, error) {
	meals := make([]models.Meal, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("meal_time DESC").
		Find(&meals).Error
	return meals, err
}

// GetMeal looks a meal up by id and owner jointly; a meal owned by someone
// else behaves as if it did not exist.
func (s *MealService) GetMeal(ctx context.Context, userID, mealID uuid.UUID) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}
	return &meal, nil
}

// AddMeal persists a new meal owned by userID. mealTime is epoch milliseconds.
func (s *MealService) AddMeal(
	ctx context.Context,
	userID uuid.UUID,
	name, description string,
	mealTime int64,
	isOnDiet bool,
) error {
	meal := models.Meal{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		Description: description,
		MealTime:    mealTime,
		IsOnDiet:    isOnDiet,
	}
	return s.db.WithContext(ctx).Create(&meal).Error
}

// UpdateMeal replaces every mutable field of the meal. The lookup is by id
// only; ownership is not checked here.
func (s *MealService) UpdateMeal(
	ctx context.Context,
	mealID uuid.UUID,
	name, description string,
	mealTime int64,
	isOnDiet bool,
) error {
	var meal models.Meal
	err := s.db.WithContext(ctx).Where("id = ?", mealID).First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMealNotFound
		}
		return err
	}

	meal.Name = name
	meal.Description = description
	meal.MealTime = mealTime
	meal.IsOnDiet = isOnDiet
	return s.db.WithContext(ctx).Save(&meal).Error
}

// DeleteMeal removes the meal. Same id-only lookup as UpdateMeal.
func (s *MealService) DeleteMeal(ctx context.Context, mealID uuid.UUID) error {
	var meal models.Meal
	err := s.db.WithContext(ctx).Where("id = ?", mealID).First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMealNotFound
		}
		return err
	}

	return s.db.WithContext(ctx).Delete(&meal).Error
}
