package services

import "repair-app/internal/models"

// Capability — одно действие, которое роль может выполнять. Вместо
// разбросанных по обработчикам сравнений роли права проверяются один раз
// по явной таблице.
type Capability string

const (
	TicketCreate       Capability = "ticket:create"
	TicketViewOwn      Capability = "ticket:view_own"
	TicketViewAssigned Capability = "ticket:view_assigned"
	TicketViewAll      Capability = "ticket:view_all"
	TicketComment      Capability = "ticket:comment"
	TicketSetStatus    Capability = "ticket:set_status"
	TicketAssign       Capability = "ticket:assign"
	CatalogManage      Capability = "catalog:manage"
	UserManage         Capability = "user:manage"
	ReportGenerate     Capability = "report:generate"
)

type capabilitySet map[Capability]struct{}

func caps(list ...Capability) capabilitySet {
	set := make(capabilitySet, len(list))
	for _, c := range list {
		set[c] = struct{}{}
	}
	return set
}

var rolePolicy = map[models.Role]capabilitySet{
	models.RoleClient: caps(
		TicketCreate,
		TicketViewOwn,
		TicketComment,
		ReportGenerate,
	),
	models.RoleMaster: caps(
		TicketViewAssigned,
		TicketComment,
		TicketSetStatus,
		ReportGenerate,
	),
	models.RoleAdmin: caps(
		TicketCreate,
		TicketViewAll,
		TicketComment,
		TicketSetStatus,
		TicketAssign,
		CatalogManage,
		UserManage,
		ReportGenerate,
	),
}

func Can(role models.Role, capability Capability) bool {
	set, ok := rolePolicy[role]
	if !ok {
		return false
	}
	_, ok = set[capability]
	return ok
}
