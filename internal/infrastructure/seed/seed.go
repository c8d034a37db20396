package seed

import (
	"context"

	"github.com/factura/backend/internal/domain/catalog"
	"github.com/factura/backend/internal/domain/partner"
	"github.com/factura/backend/internal/domain/shared/valueobject"
	"go.uber.org/zap"
)

type productSeed struct {
	Name      string
	SKU       string
	SalePrice int64
}

// demoProducts is the Ruby Rose & Trendy starter catalog, prices in COP
var demoProducts = []productSeed{
	// Ruby Rose
	{"POLVO SUELTO MELU", "MEL-120", 14000},
	{"POLVO COMPACTO MELU", "MEL-121", 4900},
	{"ILUMINADOR MARMOLADO MELU", "MEL-122", 14100},
	{"BASE LIQUIDA MELU", "MEL-123", 13900},
	{"BALSAMO LABIAL MELU", "MEL-124", 7000},
	{"GEL DE LIMPIEZA FACIAL RUBY SKIN", "MEL-125", 15900},
	{"CREMA HIDRATANTE FACIAL RUBY SKIN", "MEL-126", 15000},
	// Trendy
	{"CREMA FACIAL REPARADORA NOCTURNA TRENDY", "CAM-2205", 13000},
	{"BASE TRULY MATE L.A COLORS", "CAM-2206", 15000},
	{"BASE MOUSE TRENDY", "CAM-2207", 9000},
	{"CORRECTOR REBEL GIRL TRENDY", "CAM-2208", 10000},
	{"RUBOR EN CREMA STAR", "CAM-2209", 8600},
	{"POLVO DE HADAS TRENDY", "CAM-2210", 9500},
	{"RUBOR LIQUIDO DUO SAFARI", "CAM-2211", 20000},
	{"CONTORNO EN CREMA STAR", "CAM-2212", 13000},
	{"FIJADOR DREAMS 60ML", "CAM-2213", 14500},
	{"LABIAL VELVET DUO", "CAM-2214", 16000},
	{"KIT X5 GARDEN GLOSS", "CAM-2215", 19000},
	{"KIT DE CEJAS BAKERY TRENDY", "CAM-2216", 15000},
	{"DELINEADOR EN PLUMON TRENDY", "CAM-2217", 6000},
	{"PESTAÑINA CAT TRENDY", "CAM-2218", 11000},
}

// Seeder populates an empty store with the demo dataset on first run
type Seeder struct {
	productRepo  catalog.ProductRepository
	customerRepo partner.CustomerRepository
	logger       *zap.Logger
}

// NewSeeder creates a new Seeder
func NewSeeder(productRepo catalog.ProductRepository, customerRepo partner.CustomerRepository, logger *zap.Logger) *Seeder {
	return &Seeder{
		productRepo:  productRepo,
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// Run seeds the starter catalog and demo customer. Each section loads only
// when its store is empty, so a restore or manual entry is never clobbered.
func (s *Seeder) Run(ctx context.Context) error {
	productCount, err := s.productRepo.Count(ctx)
	if err != nil {
		return err
	}
	if productCount == 0 {
		for _, ps := range demoProducts {
			product, err := catalog.NewProduct(ps.Name, ps.SKU, catalog.DefaultUnit,
				valueobject.NewMoneyCOPFromFloat(float64(ps.SalePrice)))
			if err != nil {
				return err
			}
			if err := s.productRepo.Save(ctx, product); err != nil {
				return err
			}
		}
		s.logger.Info("Seeded starter catalog", zap.Int("products", len(demoProducts)))
	}

	customerCount, err := s.customerRepo.Count(ctx)
	if err != nil {
		return err
	}
	if customerCount == 0 {
		customer, err := partner.NewCustomer("VelvetGlow", "894577890-4")
		if err != nil {
			return err
		}
		if err := customer.SetContact("VelvetGlow@gmail.com", "3155542255", "Cra. 35 #52-116, Cabecera del llano", "VelvetGlow"); err != nil {
			return err
		}
		if err := s.customerRepo.Save(ctx, customer); err != nil {
			return err
		}
		s.logger.Info("Seeded demo customer", zap.String("company_name", customer.CompanyName))
	}

	return nil
}
