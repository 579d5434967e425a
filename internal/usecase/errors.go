package usecase

import (
	"errors"

	"gta_clima/internal/usecase/interfaces"
)

// Workflow sentinels. Handlers map them onto the HTTP error taxonomy:
// not-found, conflict, validation/invalid-transition and forbidden.
var (
	ErrRequestNotFound     = errors.New("request not found")
	ErrBudgetNotFound      = errors.New("budget not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrEnvironmentNotFound = errors.New("environment not found")
	ErrHistoryNotFound     = errors.New("history record not found")
	ErrAddressNotFound     = errors.New("address not found")
	ErrClientNotFound      = errors.New("client not found")
	ErrOfficerNotFound     = errors.New("officer not found")
	ErrServiceNotFound     = errors.New("service not found")

	ErrInvalidID              = errors.New("invalid id")
	ErrInvalidRequestType     = errors.New("invalid request type")
	ErrInvalidBudgetStatus    = errors.New("invalid budget status")
	ErrInvalidAddressType     = errors.New("invalid address type")
	ErrInvalidClientType      = errors.New("invalid client type")
	ErrMaintenanceEmpty       = errors.New("history carries no maintenance items")
	ErrOrderServicesMissing   = errors.New("order carries no service items")
	ErrInvoicingDataMissing   = errors.New("budget approval requires name, tax id and phone")
	ErrClientPhoneMissing     = errors.New("client phone is required")
	ErrRequestAddressMismatch = errors.New("request belongs to a different address")
	ErrInvalidOfficerType     = errors.New("invalid officer type")
	ErrInvalidOfficerLevel    = errors.New("invalid officer level")
	ErrOfficerDataMissing     = errors.New("officer registration requires user id, register and phone")
	ErrInvalidServiceType     = errors.New("invalid service type")
	ErrServiceNameMissing     = errors.New("service name is required")
	ErrServicePriceNegative   = errors.New("service price cannot be negative")

	ErrOpenRequestExists     = errors.New("an open request already exists for this environment")
	ErrBudgetAlreadyExists   = errors.New("request already carries an unresolved budget")
	ErrOrderAlreadyExists    = errors.New("request already carries an order")
	ErrEnvironmentExists     = errors.New("environment already registered for this client and address")
	ErrAddressExists         = errors.New("address already registered for this owner")
	ErrClientPhoneExists     = errors.New("client phone already registered")
	ErrClientRegisterExists  = errors.New("client tax id already registered")
	ErrOfficerPhoneExists    = errors.New("officer phone already registered")
	ErrOfficerRegisterExists = errors.New("officer tax id already registered")
	ErrServiceExists         = errors.New("service already registered for this type and name")
	ErrOpenWorkOnAddress     = errors.New("address still carries open requests")
	ErrOpenWorkOnClient      = errors.New("client still carries open requests")
	ErrRequestAlreadyClosed  = errors.New("request is already finalized")
	ErrOpenProvisionalExists = errors.New("an open request already references this environment name")

	ErrBudgetAlreadyResolved = errors.New("budget is already resolved")
	ErrBudgetNotApproved     = errors.New("request carries no approved budget")
	ErrOrderAlreadyDone      = errors.New("order is already realized")
	ErrOrderStatusDirect     = errors.New("order status is driven by maintenance history, not direct edits")
	ErrOfficerNotTechnician  = errors.New("officer is not a technician")

	ErrForbiddenResolution   = errors.New("actor role cannot resolve a budget")
	ErrForbiddenRegistration = errors.New("actor role cannot manage staff records")
)

// classifyConflict maps a commit-time transaction cancellation onto the
// precise conflict the fast-path existence check would have reported. Races
// the pre-check cannot close still surface as the same conflict.
func classifyConflict(err, sentinel error) error {
	if errors.Is(err, interfaces.ErrTransactionConflict) {
		return sentinel
	}
	return err
}
