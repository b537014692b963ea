package domain

// Staff é uma linha da escala de funcionários. O e-mail é a chave usada
// no join com as transações.
type Staff struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
