package create_appointment

import (
	"time"

	"github.com/m04kA/RET-CalendarService/pkg/types"
)

// Request модель запроса на бронирование слота просмотра
type Request struct {
	ApartmentID int64            // ID квартиры
	Date        time.Time        // Дата просмотра (без времени)
	TimeSlot    types.TimeString // Слот из канонической сетки дня
	ClientID    *string          // Идентификатор клиента (опционально)
}

// Response модель ответа с подтверждением записи
type Response struct {
	ID          string           // Подтверждающий идентификатор встречи
	ApartmentID int64            // ID квартиры
	Date        time.Time        // Дата просмотра
	TimeSlot    types.TimeString // Слот
	ClientID    *string          // Идентификатор клиента
	CreatedAt   time.Time        // Время создания записи
}
