package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"gta_clima/internal/domain/entities"
	"gta_clima/internal/usecase/interfaces"
	"gta_clima/pkg"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway issues a charge for an approved budget. Mock mode skips
// the provider entirely and fabricates an approved charge, which keeps local
// environments free of credentials.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IBillingGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isBillingGatewayMockEnabled() {
		log.Printf("[billing][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[billing][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[billing][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[billing][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreateCharge(ctx context.Context, b entities.Budget) (providerChargeID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mockMode {
		log.Printf("[billing][gateway] mock charge start budget=%s amount=%.2f", b.BudgetNumber, b.BudgetPrice)

		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		now := time.Now().UTC().Format(time.RFC3339Nano)
		resp := map[string]any{
			"id":                 id,
			"status":             "approved",
			"status_detail":      "accredited",
			"description":        chargeDescription(b),
			"transaction_amount": b.BudgetPrice,
			"date_created":       now,
			"date_approved":      now,
		}

		raw, err := json.Marshal(resp)
		if err != nil {
			return "", "", nil, err
		}
		log.Printf("[billing][gateway] mock charge success budget=%s provider_charge_id=%s", b.BudgetNumber, id)
		return id, "approved", raw, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[billing][gateway] gateway not configured")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[billing][gateway] charge start budget=%s amount=%.2f", b.BudgetNumber, b.BudgetPrice)

	req := payment.Request{
		TransactionAmount: b.BudgetPrice,
		Description:       chargeDescription(b),
		ExternalReference: b.BudgetNumber,
		Payer: &payment.PayerRequest{
			FirstName: b.NameClient,
			Identification: &payment.IdentificationRequest{
				Type:   identificationType(b.CnpjCpfClient),
				Number: b.CnpjCpfClient,
			},
		},
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[billing][gateway] sdk create failed budget=%s err=%v", b.BudgetNumber, err)
		return "", "", nil, err
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	log.Printf("[billing][gateway] charge success budget=%s provider_charge_id=%d provider_status=%s", b.BudgetNumber, resp.ID, resp.Status)

	return fmt.Sprintf("%d", resp.ID), resp.Status, raw, nil
}

func chargeDescription(b entities.Budget) string {
	return "Orçamento " + b.BudgetNumber + " - serviços de climatização"
}

// identificationType guesses CPF vs CNPJ from the digit count; Mercado Pago
// requires the type alongside the number.
func identificationType(register string) string {
	if len(pkg.DigitsOnly(register)) > 11 {
		return "CNPJ"
	}
	return "CPF"
}

func isBillingGatewayMockEnabled() bool {
	for _, key := range []string{"BILLING_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
