// Package report genera las exportaciones del almacén: catálogo y movimientos
// en CSV, movimientos en XML y reporte de stock en PDF.
package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sort"
	"time"

	"github.com/beevik/etree"

	"github.com/jcastro/almacen-api/internal/domain"
	"github.com/jcastro/almacen-api/internal/domain/entity"
	"github.com/jcastro/almacen-api/internal/domain/policy"
	"github.com/jcastro/almacen-api/internal/domain/repository"
	"github.com/jcastro/almacen-api/pkg/logger"
)

// UseCase casos de uso de reportes. Todos exigen la capacidad view-reports.
type UseCase struct {
	products  repository.ProductRepository
	movements repository.MovementRepository
	config    repository.ConfigRepository
	pdf       StockPDFGenerator
	log       *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	products repository.ProductRepository,
	movements repository.MovementRepository,
	config repository.ConfigRepository,
	pdf StockPDFGenerator,
	log *logger.Logger,
) *UseCase {
	return &UseCase{products: products, movements: movements, config: config, pdf: pdf, log: log}
}

// ProductsCSV exporta el catálogo completo con una fila por producto.
func (uc *UseCase) ProductsCSV(actor entity.Identity) ([]byte, error) {
	if !policy.Can(actor.Role, policy.ActionViewReports) {
		return nil, domain.ErrPermissionDenied
	}

	products, err := uc.listProductsByName()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"id", "nombre", "categoria", "cantidad", "stock_minimo", "precio", "ubicacion"}); err != nil {
		return nil, err
	}
	for _, p := range products {
		record := []string{
			p.ID, p.Name, p.Category,
			p.Quantity.String(), p.MinStock.String(), p.Price.String(),
			p.Location,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MovementsCSV exporta el historial de movimientos, del más reciente al más
// antiguo.
func (uc *UseCase) MovementsCSV(actor entity.Identity) ([]byte, error) {
	if !policy.Can(actor.Role, policy.ActionViewReports) {
		return nil, domain.ErrPermissionDenied
	}

	movements, err := uc.listMovementsByDateDesc()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"id", "producto", "tipo", "cantidad", "fecha", "motivo", "solicitado_por", "estado", "revisado_por"}); err != nil {
		return nil, err
	}
	for _, m := range movements {
		record := []string{
			m.ID, m.ProductName, m.Type, m.Quantity.String(),
			m.Date.Format(time.RFC3339), m.Reason, m.RequestedBy,
			m.Status, m.ReviewedBy,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MovementsXML exporta el historial de movimientos como documento XML con un
// elemento por movimiento.
func (uc *UseCase) MovementsXML(actor entity.Identity) ([]byte, error) {
	if !policy.Can(actor.Role, policy.ActionViewReports) {
		return nil, domain.ErrPermissionDenied
	}

	movements, err := uc.listMovementsByDateDesc()
	if err != nil {
		return nil, err
	}
	cfg, err := uc.config.Get()
	if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("Movimientos")
	root.CreateAttr("empresa", cfg.CompanyName)
	root.CreateAttr("generado", time.Now().UTC().Format(time.RFC3339))

	for _, m := range movements {
		el := root.CreateElement("Movimiento")
		el.CreateAttr("id", m.ID)
		el.CreateElement("Producto").SetText(m.ProductName)
		el.CreateElement("ProductoID").SetText(m.ProductID)
		el.CreateElement("Tipo").SetText(m.Type)
		el.CreateElement("Cantidad").SetText(m.Quantity.String())
		el.CreateElement("Fecha").SetText(m.Date.Format(time.RFC3339))
		el.CreateElement("Motivo").SetText(m.Reason)
		el.CreateElement("SolicitadoPor").SetText(m.RequestedBy)
		el.CreateElement("Estado").SetText(m.Status)
		if m.ReviewedBy != "" {
			rev := el.CreateElement("Revision")
			rev.CreateElement("Por").SetText(m.ReviewedBy)
			if m.ReviewedAt != nil {
				rev.CreateElement("Fecha").SetText(m.ReviewedAt.Format(time.RFC3339))
			}
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("report: serializar xml: %w", err)
	}
	return out, nil
}

// StockPDF genera el reporte de stock en PDF con los datos de empresa de la
// configuración vigente.
func (uc *UseCase) StockPDF(ctx context.Context, actor entity.Identity) ([]byte, error) {
	if !policy.Can(actor.Role, policy.ActionViewReports) {
		return nil, domain.ErrPermissionDenied
	}

	products, err := uc.listProductsByName()
	if err != nil {
		return nil, err
	}
	cfg, err := uc.config.Get()
	if err != nil {
		return nil, err
	}

	out, err := uc.pdf.GenerateStockPDF(ctx, cfg, products)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("requested_by", actor.Email).Int("products", len(products)).Msg("reporte de stock PDF generado")
	return out, nil
}

func (uc *UseCase) listProductsByName() ([]*entity.Product, error) {
	products, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	sort.Slice(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	return products, nil
}

func (uc *UseCase) listMovementsByDateDesc() ([]*entity.Movement, error) {
	movements, err := uc.movements.List()
	if err != nil {
		return nil, err
	}
	sort.Slice(movements, func(i, j int) bool { return movements[i].Date.After(movements[j].Date) })
	return movements, nil
}
