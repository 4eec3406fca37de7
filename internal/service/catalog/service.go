package catalog

// Service manages the salon catalog: bookable services, professionals and
// retail products.
type Service struct {
	serviceRepo      ServiceRepository
	professionalRepo ProfessionalRepository
	productRepo      ProductRepository
	logger           Logger
}

func NewService(
	serviceRepo ServiceRepository,
	professionalRepo ProfessionalRepository,
	productRepo ProductRepository,
	logger Logger,
) *Service {
	return &Service{
		serviceRepo:      serviceRepo,
		professionalRepo: professionalRepo,
		productRepo:      productRepo,
		logger:           logger,
	}
}
