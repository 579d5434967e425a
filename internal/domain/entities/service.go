package entities

import (
	"time"

	"gta_clima/pkg"
)

type ServiceType string

const (
	ServiceTypeInstalacao ServiceType = "Instalação"
	ServiceTypeManutencao ServiceType = "Manutenção"
)

func (t ServiceType) Valid() bool {
	return t == ServiceTypeInstalacao || t == ServiceTypeManutencao
}

// Service is a catalog item referenced by requests, budgets and orders,
// unique per (type, name) under collation-aware comparison.
type Service struct {
	ID                 string
	ServiceType        ServiceType
	ServiceName        string
	ServiceDescription string
	ServicePrice       float64
	CreatedBy          CreatedBy
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ClaimScope is the uniqueness scope for the (type, name) pair.
func (s Service) ClaimScope() string {
	return ServiceClaimScope(s.ServiceType, s.ServiceName)
}

func ServiceClaimScope(serviceType ServiceType, name string) string {
	return "service#" + pkg.Fold(string(serviceType)) + "#" + pkg.Fold(name)
}
