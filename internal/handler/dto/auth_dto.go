package dto

// DemoUserDTO — пользователь из демо-списка учёток.
// У него нет ID: запись в таблице users для него не существует.
type DemoUserDTO struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

// LoginResponse — ответ успешного логина
type LoginResponse struct {
	Token string       `json:"token"`
	User  *DemoUserDTO `json:"user"`
}

// MessageResponse — канонический ответ демо-эндпоинтов
type MessageResponse struct {
	Message string `json:"message"`
}
