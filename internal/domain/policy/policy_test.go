package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcastro/almacen-api/internal/domain/entity"
	"github.com/jcastro/almacen-api/internal/domain/policy"
)

var allActions = []policy.Action{
	policy.ActionCreateProduct,
	policy.ActionEditProduct,
	policy.ActionDeleteProduct,
	policy.ActionCreateMovement,
	policy.ActionApproveMovement,
	policy.ActionCreateIncident,
	policy.ActionResolveIncident,
	policy.ActionManageUsers,
	policy.ActionViewReports,
	policy.ActionEditConfig,
}

func TestCan_AdminTodasLasAcciones(t *testing.T) {
	for _, a := range allActions {
		assert.True(t, policy.Can(entity.RoleAdmin, a), "admin debe poder %s", a)
	}
}

func TestCan_Manager(t *testing.T) {
	permitidas := map[policy.Action]bool{
		policy.ActionCreateProduct:   true,
		policy.ActionEditProduct:     true,
		policy.ActionDeleteProduct:   true,
		policy.ActionCreateMovement:  true,
		policy.ActionApproveMovement: true,
		policy.ActionCreateIncident:  true,
		policy.ActionResolveIncident: true,
		policy.ActionViewReports:     true,
	}
	for _, a := range allActions {
		assert.Equal(t, permitidas[a], policy.Can(entity.RoleManager, a), "manager / %s", a)
	}
	assert.False(t, policy.Can(entity.RoleManager, policy.ActionManageUsers))
	assert.False(t, policy.Can(entity.RoleManager, policy.ActionEditConfig))
}

func TestCan_OperatorSoloCreaSolicitudes(t *testing.T) {
	assert.True(t, policy.Can(entity.RoleOperator, policy.ActionCreateMovement))
	assert.True(t, policy.Can(entity.RoleOperator, policy.ActionCreateIncident))
	assert.False(t, policy.Can(entity.RoleOperator, policy.ActionApproveMovement))
	assert.False(t, policy.Can(entity.RoleOperator, policy.ActionResolveIncident))
	assert.False(t, policy.Can(entity.RoleOperator, policy.ActionCreateProduct))
	assert.False(t, policy.Can(entity.RoleOperator, policy.ActionViewReports))
}

func TestCan_AuditorSoloLectura(t *testing.T) {
	for _, a := range allActions {
		if a == policy.ActionViewReports {
			assert.True(t, policy.Can(entity.RoleAuditor, a), "ver reportes es lectura")
			continue
		}
		assert.False(t, policy.Can(entity.RoleAuditor, a), "auditor no debe poder %s", a)
	}
}

func TestCan_RolDesconocido(t *testing.T) {
	assert.False(t, policy.Can("intruso", policy.ActionCreateMovement))
	assert.False(t, policy.Can("", policy.ActionViewReports))
}
