package services

import (
	"testing"

	"repair-app/internal/models"
)

func TestRoleCapabilities(t *testing.T) {
	cases := []struct {
		role models.Role
		cap  Capability
		want bool
	}{
		{models.RoleClient, TicketCreate, true},
		{models.RoleClient, TicketViewOwn, true},
		{models.RoleClient, TicketComment, true},
		{models.RoleClient, TicketSetStatus, false},
		{models.RoleClient, TicketAssign, false},
		{models.RoleClient, TicketViewAll, false},
		{models.RoleClient, UserManage, false},

		{models.RoleMaster, TicketViewAssigned, true},
		{models.RoleMaster, TicketComment, true},
		{models.RoleMaster, TicketSetStatus, true},
		{models.RoleMaster, TicketCreate, false},
		{models.RoleMaster, TicketAssign, false},
		{models.RoleMaster, CatalogManage, false},

		{models.RoleAdmin, TicketViewAll, true},
		{models.RoleAdmin, TicketAssign, true},
		{models.RoleAdmin, TicketSetStatus, true},
		{models.RoleAdmin, CatalogManage, true},
		{models.RoleAdmin, UserManage, true},
		{models.RoleAdmin, TicketViewAssigned, false},

		{models.Role("ghost"), TicketViewOwn, false},
	}

	for _, tc := range cases {
		if got := Can(tc.role, tc.cap); got != tc.want {
			t.Errorf("Can(%s, %s) = %v, want %v", tc.role, tc.cap, got, tc.want)
		}
	}
}

func TestEveryRoleCanGenerateReports(t *testing.T) {
	for _, role := range []models.Role{models.RoleClient, models.RoleMaster, models.RoleAdmin} {
		if !Can(role, ReportGenerate) {
			t.Errorf("role %s cannot generate reports", role)
		}
	}
}
