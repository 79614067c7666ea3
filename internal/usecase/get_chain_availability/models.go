package get_chain_availability

import (
	"time"

	"github.com/m04kA/SMC-ChainBookingService/internal/domain"
)

// Request модель запроса на подбор времени для цепочки услуг
type Request struct {
	LocationID int64              // ID локации
	Date       time.Time          // Дата (без времени)
	Steps      []domain.ChainStep // Услуги в порядке выполнения
}

// Response модель ответа со списком планов
type Response struct {
	Date       time.Time     // Дата, на которую запрашивались планы
	LocationID int64         // ID локации
	TimeZone   string        // Зона локации, в которой построены локальные метки
	Plans      []domain.Plan // Планы по возрастанию времени начала
}
