package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse стандартный формат ошибки API
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondJSON сериализует payload и пишет ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if payload == nil {
		return
	}

	// Заголовки уже отправлены, ошибку кодирования можно только проглотить
	_ = json.NewEncoder(w).Encode(payload)
}

// DecodeJSON разбирает тело запроса в dst
func DecodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// RespondError отвечает произвольным статусом с сообщением
func RespondError(w http.ResponseWriter, status int, msg string) {
	RespondJSON(w, status, ErrorResponse{Error: msg})
}

// RespondBadRequest отвечает 400 с сообщением
func RespondBadRequest(w http.ResponseWriter, msg string) {
	RespondJSON(w, http.StatusBadRequest, ErrorResponse{Error: msg})
}

// RespondUnauthorized отвечает 401 с сообщением
func RespondUnauthorized(w http.ResponseWriter, msg string) {
	RespondJSON(w, http.StatusUnauthorized, ErrorResponse{Error: msg})
}

// RespondForbidden отвечает 403 с сообщением
func RespondForbidden(w http.ResponseWriter, msg string) {
	RespondJSON(w, http.StatusForbidden, ErrorResponse{Error: msg})
}

// RespondNotFound отвечает 404 с сообщением
func RespondNotFound(w http.ResponseWriter, msg string) {
	RespondJSON(w, http.StatusNotFound, ErrorResponse{Error: msg})
}

// RespondConflict отвечает 409 с произвольным payload
// Конфликт слотов несет список занятых часов, поэтому формат шире ErrorResponse
func RespondConflict(w http.ResponseWriter, payload interface{}) {
	RespondJSON(w, http.StatusConflict, payload)
}

// RespondUnprocessable отвечает 422 с сообщением
func RespondUnprocessable(w http.ResponseWriter, msg string) {
	RespondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: msg})
}

// RespondInternalError отвечает 500 без деталей
func RespondInternalError(w http.ResponseWriter) {
	RespondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "внутренняя ошибка сервера"})
}
