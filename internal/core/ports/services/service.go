package services

// ServiceContainer bundles the service facades handed to route registration.
type ServiceContainer struct {
	Account      AccountSvcFacade
	Journal      JournalSvcFacade
	Reporting    ReportingSvcFacade
	PL           PLSvcFacade
	Recognition  RecognitionSvcFacade
	Closing      ClosingSvcFacade
	ExchangeRate ExchangeRateSvcFacade
}
