// Package policy implementa la tabla de capacidades rol × acción.
// Es una función pura: la capa de presentación la consulta antes de invocar
// un caso de uso y los workflows la re-verifican defensivamente.
package policy

import "github.com/jcastro/almacen-api/internal/domain/entity"

// Action acción autorizable del sistema.
type Action string

// Acciones enumeradas.
const (
	ActionCreateProduct   Action = "create-product"
	ActionEditProduct     Action = "edit-product"
	ActionDeleteProduct   Action = "delete-product"
	ActionCreateMovement  Action = "create-movement"
	ActionApproveMovement Action = "approve-movement"
	ActionCreateIncident  Action = "create-incident"
	ActionResolveIncident Action = "resolve-incident"
	ActionManageUsers     Action = "manage-users"
	ActionViewReports     Action = "view-reports"
	ActionEditConfig      Action = "edit-config"
)

// capabilities tabla fija rol → acciones permitidas. admin se resuelve aparte
// (todas las acciones).
var capabilities = map[string]map[Action]bool{
	entity.RoleManager: {
		ActionCreateProduct:   true,
		ActionEditProduct:     true,
		ActionDeleteProduct:   true,
		ActionCreateMovement:  true,
		ActionApproveMovement: true,
		ActionCreateIncident:  true,
		ActionResolveIncident: true,
		ActionViewReports:     true,
	},
	entity.RoleOperator: {
		ActionCreateMovement: true,
		ActionCreateIncident: true,
	},
	// auditor es solo lectura en todo: la única acción enumerada que es de
	// lectura es ver reportes.
	entity.RoleAuditor: {
		ActionViewReports: true,
	},
}

// Can responde si el rol puede ejecutar la acción. Pura, sin efectos.
func Can(role string, action Action) bool {
	if role == entity.RoleAdmin {
		return true
	}
	return capabilities[role][action]
}
