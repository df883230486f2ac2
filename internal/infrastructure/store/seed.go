package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcastro/almacen-api/internal/domain/entity"
	"github.com/jcastro/almacen-api/pkg/logger"
)

// Seed carga el catálogo demo cuando las colecciones están vacías: productos
// iniciales, usuarios de la aplicación y configuración por defecto. No toca
// colecciones que ya tienen datos.
func Seed(ctx context.Context, c *Collections, log *logger.Logger) error {
	products, err := c.Products(ctx)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		if err := c.SaveProducts(ctx, initialProducts()); err != nil {
			return err
		}
		log.Info().Int("count", 8).Msg("catálogo de productos demo cargado")
	}

	users, err := c.Users(ctx)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		if err := c.SaveUsers(ctx, initialUsers()); err != nil {
			return err
		}
		log.Info().Int("count", 5).Msg("usuarios demo cargados")
	}

	if _, found, err := c.Config(ctx); err != nil {
		return err
	} else if !found {
		if err := c.SaveConfig(ctx, entity.DefaultConfig()); err != nil {
			return err
		}
		log.Info().Msg("configuración por defecto guardada")
	}
	return nil
}

func initialProducts() []entity.Product {
	qty := decimal.NewFromInt
	price := decimal.NewFromFloat
	return []entity.Product{
		{ID: "1", Name: "Laptop HP Pavilion 15", Category: "Electrónica", Quantity: qty(15), MinStock: qty(5), Price: price(899.99), Location: "Pasillo A, Estante 1"},
		{ID: "2", Name: "Mouse Logitech MX Master", Category: "Accesorios", Quantity: qty(45), MinStock: qty(20), Price: price(79.99), Location: "Pasillo B, Estante 3"},
		{ID: "3", Name: "Teclado Mecánico RGB", Category: "Accesorios", Quantity: qty(3), MinStock: qty(10), Price: price(149.99), Location: "Pasillo B, Estante 2"},
		{ID: "4", Name: "Monitor Dell 27\"", Category: "Electrónica", Quantity: qty(8), MinStock: qty(5), Price: price(329.99), Location: "Pasillo A, Estante 2"},
		{ID: "5", Name: "Silla Ergonómica", Category: "Mobiliario", Quantity: qty(12), MinStock: qty(5), Price: price(299.99), Location: "Bodega Principal"},
		{ID: "6", Name: "Impresora Multifuncional", Category: "Electrónica", Quantity: qty(6), MinStock: qty(3), Price: price(249.99), Location: "Pasillo C, Estante 1"},
		{ID: "7", Name: "Webcam HD 1080p", Category: "Accesorios", Quantity: qty(25), MinStock: qty(10), Price: price(59.99), Location: "Pasillo B, Estante 1"},
		{ID: "8", Name: "Escritorio Ajustable", Category: "Mobiliario", Quantity: qty(4), MinStock: qty(5), Price: price(449.99), Location: "Bodega Principal"},
	}
}

func initialUsers() []entity.AppUser {
	return []entity.AppUser{
		{ID: "1", Name: "Admin Principal", Email: "admin@almacen.com", Role: entity.RoleAdmin, Status: entity.UserActive, CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "2", Name: "Manager López", Email: "manager@almacen.com", Role: entity.RoleManager, Status: entity.UserActive, CreatedAt: time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC)},
		{ID: "3", Name: "Operador García", Email: "operator@almacen.com", Role: entity.RoleOperator, Status: entity.UserActive, CreatedAt: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)},
		{ID: "4", Name: "Auditor Martínez", Email: "auditor@almacen.com", Role: entity.RoleAuditor, Status: entity.UserActive, CreatedAt: time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC)},
		{ID: "5", Name: "María González", Email: "maria.gonzalez@almacen.com", Role: entity.RoleOperator, Status: entity.UserActive, CreatedAt: time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)},
	}
}
