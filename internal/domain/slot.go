package domain

// Slot represents one bookable (date, time-range) unit of the slot board
// Список слотов пересобирается целиком при каждой реконсиляции и не мутируется.
// Available истинно, только когда слот не занят и окно записи его даты открыто
type Slot struct {
	// ID составной стабильный идентификатор: "<date>-<templateID>"
	ID    string
	Date  string // YYYY-MM-DD
	Label string // отображаемая метка, например "1:45 PM - 2:15 PM"

	Available bool

	// Данные владельца бронирования (для занятого слота)
	BookedBy    *string
	ProjectName *string
}
