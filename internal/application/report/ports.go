package report

import (
	"context"

	"github.com/jcastro/almacen-api/internal/domain/entity"
)

// StockPDFGenerator puerto de salida para render del reporte de stock en PDF.
type StockPDFGenerator interface {
	GenerateStockPDF(ctx context.Context, cfg entity.SystemConfig, products []*entity.Product) ([]byte, error)
}
