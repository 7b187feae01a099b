package ptr

// Ptr возвращает указатель на переданное значение
// Удобно для передачи литералов в опциональные поля и фильтры
func Ptr[T any](v T) *T {
	return &v
}
