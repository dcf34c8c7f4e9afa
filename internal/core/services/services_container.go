package services

import (
	portsrepo "github.com/faraway-yachting/charter-ledger/internal/core/ports/repositories"
	portssvc "github.com/faraway-yachting/charter-ledger/internal/core/ports/services"
)

// NewServiceContainer wires all services with their repository and
// collaborator dependencies.
func NewServiceContainer(
	entryRepo portsrepo.JournalEntryRepository,
	recRepo portsrepo.RevenueRecognitionRepository,
	registry portsrepo.AccountRegistry,
	rateRepo portsrepo.ExchangeRateRepository,
	docs portssvc.DocumentSource,
) *portssvc.ServiceContainer {
	journalSvc := NewJournalService(entryRepo, registry)
	rateSvc := NewExchangeRateService(rateRepo)

	return &portssvc.ServiceContainer{
		Account:      NewAccountService(registry),
		Journal:      journalSvc,
		Reporting:    NewReportingService(entryRepo, registry),
		PL:           NewPLService(docs, rateSvc, nil),
		Recognition:  NewRecognitionService(recRepo, journalSvc, nil),
		Closing:      NewClosingService(journalSvc),
		ExchangeRate: rateSvc,
	}
}
