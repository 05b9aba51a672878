package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/bw3sley/ignite-daily-diet-api/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func userColumns() []string {
	return []string{"id", "session_id", "username", "created_at"}
}

func mealColumns() []string {
	return []string{"id", "user_id", "name", "description", "meal_time", "is_on_diet", "created_at"}
}

func mealRows(meals ...models.Meal) *sqlmock.Rows {
	rows := sqlmock.NewRows(mealColumns())
	for _, m := range meals {
		rows.AddRow(m.ID.String(), m.UserID.String(), m.Name, m.Description, m.MealTime, m.IsOnDiet, m.CreatedAt)
	}
	return rows
}
