package domain

import (
	"time"

	"github.com/t1mga/FSP-BookingService/pkg/types"
)

// TimeRangesOverlap проверяет пересечение двух временных интервалов
// Полуоткрытая семантика: касание границ (endA == startB) пересечением НЕ считается
//
// Примеры:
// - [10:00, 11:00) и [10:30, 11:30) → пересекаются
// - [10:00, 11:00) и [11:00, 12:00) → не пересекаются (граничат)
//
// Та же семантика применяется в SQL-запросе HasTimeConflict репозитория бронирований:
// in-memory проверка и проверка в хранилище обязаны давать одинаковый ответ
func TimeRangesOverlap(startA, endA, startB, endB types.TimeString) bool {
	return startA.IsBefore(endB) && endA.IsAfter(startB)
}

// SameDate возвращает true, если обе даты относятся к одному календарному дню
func SameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateOnly обнуляет компонент времени у даты
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
