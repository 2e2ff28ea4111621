package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// CEPAddress is the subset of the ViaCEP payload the wizard UI prefills
// from: street/neighborhood/city for the location step.
type CEPAddress struct {
	CEP          string `json:"cep"`
	Street       string `json:"logradouro"`
	Neighborhood string `json:"bairro"`
	City         string `json:"localidade"`
	State        string `json:"uf"`
}

var ErrCEPNotFound = errors.New("cep not found")

// CEPClient looks up Brazilian postal codes against a ViaCEP-compatible
// endpoint. No auth, plain GET per code.
type CEPClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewCEPClient(baseURL string) *CEPClient {
	return &CEPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *CEPClient) SetHTTPClient(hc *http.Client) {
	if hc != nil {
		c.httpClient = hc
	}
}

// Lookup resolves code, accepting it masked ("01310-100") or raw digits.
func (c *CEPClient) Lookup(ctx context.Context, code string) (*CEPAddress, error) {
	digits := strings.ReplaceAll(code, "-", "")
	if len(digits) != 8 {
		return nil, fmt.Errorf("cep must have 8 digits, got %q", code)
	}

	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, digits)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cep lookup returned status %d", resp.StatusCode)
	}

	// ViaCEP answers 200 with {"erro": true} for unknown codes
	var payload struct {
		CEPAddress
		Erro bool `json:"erro"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	if payload.Erro {
		return nil, ErrCEPNotFound
	}

	return &payload.CEPAddress, nil
}
