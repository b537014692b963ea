package domain

import "time"

// Snapshot é a fotografia imutável das três tabelas de origem, carregada de
// uma vez e compartilhada por todas as requisições até a próxima
// atualização. Nenhum estágio do pipeline escreve de volta no snapshot.
type Snapshot struct {
	ID       string
	LoadedAt time.Time

	Transactions []Transaction
	Items        []Item
	Staff        []Staff

	// Índices de join, construídos uma única vez no carregamento
	ItemByName   map[string]*Item
	StaffByEmail map[string]*Staff

	// Avisos não fatais do carregamento (chaves de join duplicadas etc.)
	Warnings []string

	Stats LoadStats
}

// TableStats resume o carregamento de uma tabela de origem.
type TableStats struct {
	Rows        int `json:"rows"`
	SkippedRows int `json:"skipped_rows"`
	ParseIssues int `json:"parse_issues"`
}

type LoadStats struct {
	Transactions TableStats `json:"transactions"`
	Items        TableStats `json:"items"`
	Staff        TableStats `json:"staff"`
}
