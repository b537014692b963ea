package gsheetclient

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

// SheetRef identifica uma aba da planilha de origem.
type SheetRef struct {
	Name string // nome legível, usado em erros e logs
	GID  string
}

type Client interface {
	FetchTable(ctx context.Context, ref SheetRef) ([][]string, error)
}

type GSheetClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &GSheetClient{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Sheets.FetchTimeoutSeconds) * time.Second,
		},
		config: cfg,
	}
}

// FetchTable baixa a exportação CSV de uma aba e devolve a matriz de
// células. Uma única tentativa por chamada; repetição fica a cargo do
// chamador.
func (c *GSheetClient) FetchTable(ctx context.Context, ref SheetRef) ([][]string, error) {
	endpoint := c.config.Sheets.ExportURL(ref.GID)

	// Criar a requisição HTTP.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Accept", "text/csv")

	// Executar a requisição.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	// Verificar o código de status da resposta.
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1 // linhas irregulares são resolvidas na normalização

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("erro ao interpretar o CSV: %w", err)
	}

	return rows, nil
}
