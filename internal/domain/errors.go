package domain

import "fmt"

// SourceFetchError indica que uma das planilhas de origem não pôde ser
// obtida ou interpretada como tabela. É fatal para o snapshot — o dashboard
// não renderiza sem as três fontes — e sempre nomeia a fonte que falhou.
type SourceFetchError struct {
	Source string
	Err    error
}

func (e *SourceFetchError) Error() string {
	return fmt.Sprintf("falha ao carregar a planilha %q: %v", e.Source, e.Err)
}

func (e *SourceFetchError) Unwrap() error { return e.Err }
