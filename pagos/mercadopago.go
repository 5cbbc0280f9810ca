package pagos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/miscanchas/canchas-api/models"
)

const preferencesURL = "https://api.mercadopago.com/checkout/preferences"

// DepositRate: the customer only pays a 50% deposit through the link;
// the rest is settled at the cancha.
const DepositRate = 0.5

type item struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type backURLs struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending"`
}

type preferenceRequest struct {
	Items      []item   `json:"items"`
	BackURLs   backURLs `json:"back_urls"`
	AutoReturn string   `json:"auto_return"`
}

type preferenceResponse struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}

type Client struct {
	accessToken string
	backURLBase string
	http        *http.Client
}

func NewClient() *Client {
	base := os.Getenv("MP_BACK_URL_BASE")
	if base == "" {
		base = "https://www.tusitio.com"
	}
	return &Client{
		accessToken: os.Getenv("MP_ACCESS_TOKEN"),
		backURLBase: base,
		http:        &http.Client{Timeout: 10 * time.Second},
	}
}

// CreatePreference asks MercadoPago for a checkout link covering the
// deposit on a reserva and returns its init_point URL.
func (c *Client) CreatePreference(ctx context.Context, reserva *models.Reserva) (string, error) {
	body := preferenceRequest{
		Items: []item{
			{
				ID:        fmt.Sprintf("reserva-%d", reserva.ID),
				Title:     "Reserva de cancha",
				Quantity:  1,
				UnitPrice: reserva.TotalReserva * DepositRate,
			},
		},
		BackURLs: backURLs{
			Success: c.backURLBase + "/pago-exitoso",
			Failure: c.backURLBase + "/pago-fallido",
			Pending: c.backURLBase + "/pago-pendiente",
		},
		AutoReturn: "approved",
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, preferencesURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("mercadopago returned status %d", resp.StatusCode)
	}

	var pref preferenceResponse
	if err := json.NewDecoder(resp.Body).Decode(&pref); err != nil {
		return "", err
	}
	return pref.InitPoint, nil
}
