package identity

// Profile профиль пользователя из Identity Provider.
// Ядро доверяет этим признакам как данности.
type Profile struct {
	ID         string `json:"user_id"`
	Username   string `json:"username"`
	IsDisabled bool   `json:"is_disabled"`
	IsElderly  bool   `json:"is_elderly"`
}

// ErrorResponse модель ошибки от Identity Provider
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
