// Package metrics expone contadores Prometheus del motor de workflows.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MovementsCreated movimientos creados, etiquetados por tipo y estado inicial.
	MovementsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "almacen_movements_created_total",
		Help: "Movimientos de stock creados.",
	}, []string{"type", "status"})

	// MovementsReviewed disposiciones de movimientos (aprobado/rechazado).
	MovementsReviewed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "almacen_movements_reviewed_total",
		Help: "Movimientos aprobados o rechazados.",
	}, []string{"status"})

	// IncidentsCreated incidencias reportadas, etiquetadas por tipo.
	IncidentsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "almacen_incidents_created_total",
		Help: "Incidencias reportadas.",
	}, []string{"type"})

	// IncidentsResolved disposiciones de incidencias (resuelto/rechazado).
	IncidentsResolved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "almacen_incidents_resolved_total",
		Help: "Incidencias resueltas o rechazadas.",
	}, []string{"status"})

	// StockClamped débitos que habrían dejado stock negativo y se recortaron a 0.
	StockClamped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "almacen_stock_clamped_total",
		Help: "Aplicaciones de delta recortadas al piso de cero.",
	})

	// CorruptCollections blobs persistidos que no se pudieron deserializar.
	CorruptCollections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "almacen_corrupt_collections_total",
		Help: "Colecciones persistidas corruptas tratadas como vacías.",
	}, []string{"kind"})
)
