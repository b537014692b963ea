package domain

import "time"

// Transaction é uma linha da aba de transações: um evento de venda.
// Amount é ponteiro porque a origem traz valores não numéricos ("N/A");
// nesses casos o valor fica ausente em vez de virar zero.
type Transaction struct {
	Timestamp time.Time `json:"timestamp"`
	Food      string    `json:"food"`
	User      string    `json:"user"`
	Customer  string    `json:"customer"`
	Amount    *float64  `json:"amount"`
}
