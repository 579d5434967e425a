package interfaces

import (
	"context"
	"encoding/json"

	"gta_clima/internal/domain/entities"
)

// IBillingGateway abstracts external charge providers (e.g. Mercado Pago).
//
// When a client approves a budget carrying invoicing data, the workflow may
// open a charge for the approved amount. The gateway is optional: a nil
// gateway disables charging without touching the approval flow.
type IBillingGateway interface {
	CreateCharge(ctx context.Context, b entities.Budget) (providerChargeID string, providerStatus string, providerResponse json.RawMessage, err error)
}
