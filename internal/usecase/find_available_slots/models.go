package find_available_slots

import (
	"time"

	"github.com/m04kA/RET-CalendarService/internal/domain"
	"github.com/m04kA/RET-CalendarService/pkg/types"
)

// Request модель запроса на поиск доступных слотов
type Request struct {
	ApartmentID int64     // ID квартиры, для которой ищем слоты
	StartDate   time.Time // Начало окна поиска (нулевое значение = сегодня)
	Days        int       // Размер окна в днях (0 = пустой результат)
}

// Response модель ответа со списком оцененных слотов
type Response struct {
	ApartmentID int64        // ID квартиры
	Slots       []ScoredSlot // Слоты, отсортированные по убыванию оценки
}

// ScoredSlot свободный слот с оценкой желательности
type ScoredSlot struct {
	Date      time.Time             // Дата слота
	TimeSlot  types.TimeString      // Метка времени слота
	IsToday   bool                  // Слот приходится на сегодня
	Score     int                   // Итоговая оценка (сумма breakdown)
	Breakdown domain.ScoreBreakdown // Вклад каждого правила
}
