package rest

import (
	"encoding/json"
	"net/http"
)

// Fixed user-facing messages. Responses never carry internal detail; all
// auth failures collapse to one message to avoid account enumeration.
const (
	msgEmailTaken         = "Email já registrado."
	msgInvalidCredentials = "Usuário ou senha inválidos."
	msgUnauthorized       = "Não autorizado."
	msgTaskNotFound       = "Tarefa não encontrada."
	msgInvalidBody        = "Corpo da requisição vazio ou inválido."
	msgInvalidData        = "Dados inválidos."
	msgInternal           = "Erro interno do servidor."
	msgTaskDeleted        = "Tarefa deletada com sucesso."
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

func decodeJSON(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}
