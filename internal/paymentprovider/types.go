package paymentprovider

// CreateSessionParams представляет запрос на создание checkout-сессии.
type CreateSessionParams struct {
	ProductName string // Название позиции на странице оплаты
	UnitAmount  int64  // Цена за единицу в центах
	Quantity    int    // Количество билетов
	Reference   string // Ссылка на событие в нашей системе
}

// CheckoutSession представляет ответ провайдера на создание сессии.
type CheckoutSession struct {
	ID     string `json:"id"`     // ID сессии у провайдера
	URL    string `json:"url"`    // URL страницы оплаты для перенаправления
	Status string `json:"status"` // Статус сессии, например "open"
}
