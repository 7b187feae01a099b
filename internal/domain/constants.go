package domain

// Ограничения бизнес-правил бронирования
const (
	// MinBookingDurationMinutes минимальная длительность бронирования
	MinBookingDurationMinutes = 30

	// MaxBookingDurationMinutes максимальная длительность бронирования (12 часов)
	MaxBookingDurationMinutes = 12 * 60

	// MinLeadTimeMinutes минимальное время между "сейчас" и началом бронирования
	MinLeadTimeMinutes = 30

	// MaxOriginAddressLength максимальная длина адреса подачи
	MaxOriginAddressLength = 200

	// MaxNameLength максимальная длина имени клиента/профессионала
	MaxNameLength = 100

	// MaxServiceRadiusKm максимальный радиус обслуживания профессионала
	MaxServiceRadiusKm = 500.0

	// MinPhoneDigits и MaxPhoneDigits допустимое количество цифр в телефоне
	MinPhoneDigits = 10
	MaxPhoneDigits = 11
)

// Ограничения поиска профессионалов
const (
	// MinSearchDurationMinutes и MaxSearchDurationMinutes диапазон длительности в запросе поиска
	MinSearchDurationMinutes = 30
	MaxSearchDurationMinutes = 720
)

// Форматы даты и времени
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)

// NonCancelledStatuses статусы бронирований, участвующих в проверке конфликтов
var NonCancelledStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
