package domain

import "time"

// Status possíveis de um action item. Toggle alterna entre os dois.
const (
	StatusPending = "Pending"
	StatusDone    = "Done"
)

// ActionItem referencia o responsável pelo nome de exibição, não pelo id —
// invariante fraca aceita: assigned_to deve coincidir com o name de um
// perfil atual para as regras de posse funcionarem.
type ActionItem struct {
	ID         int       `json:"id"`
	DueDate    string    `json:"due_date"`
	AssignedTo string    `json:"assigned_to"`
	Task       string    `json:"task"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToggleStatus devolve o status oposto ao informado
func ToggleStatus(status string) string {
	if status == StatusPending {
		return StatusDone
	}
	return StatusPending
}
