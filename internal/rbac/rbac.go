package rbac

import (
	"sort"

	"github.com/bizledger/bizledger/internal/types"
)

// Service handles permission checks with set-based lookups. Policies are
// compiled once at construction; HasPermission is O(1) on the hot path.
type Service struct {
	permissions map[types.UserRole]map[string]map[string]bool
}

// Actions recognized by the permission map
const (
	ActionRead   = "read"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// rolePolicies maps each role to entity -> allowed actions. "*" grants
// every action on every entity.
var rolePolicies = map[types.UserRole]map[string][]string{
	types.UserRoleSuperAdmin: {"*": {"*"}},
	types.UserRoleAdmin:      {"*": {"*"}},
	types.UserRoleStaff: {
		"clients":       {ActionRead, ActionCreate, ActionUpdate},
		"projects":      {ActionRead, ActionCreate, ActionUpdate},
		"invoices":      {ActionRead, ActionCreate, ActionUpdate},
		"estimates":     {ActionRead, ActionCreate, ActionUpdate},
		"receipts":      {ActionRead, ActionCreate, ActionUpdate},
		"payments":      {ActionRead, ActionCreate, ActionUpdate},
		"expenses":      {ActionRead, ActionCreate, ActionUpdate},
		"products":      {ActionRead, ActionCreate, ActionUpdate},
		"services":      {ActionRead, ActionCreate, ActionUpdate},
		"opportunities": {ActionRead, ActionCreate, ActionUpdate},
		"employees":     {ActionRead},
		"departments":   {ActionRead},
		"attendance":    {ActionRead, ActionCreate, ActionUpdate},
		"payroll":       {ActionRead},
		"leave":         {ActionRead, ActionCreate, ActionUpdate},
		"notifications": {ActionRead, ActionCreate, ActionUpdate, ActionDelete},
		"settings":      {ActionRead},
		"numbering":     {ActionRead},
		"dashboard":     {ActionRead},
	},
	types.UserRoleAccountant: {
		"clients":       {ActionRead},
		"projects":      {ActionRead},
		"invoices":      {ActionRead, ActionCreate, ActionUpdate, ActionDelete},
		"estimates":     {ActionRead, ActionCreate, ActionUpdate, ActionDelete},
		"receipts":      {ActionRead, ActionCreate, ActionUpdate, ActionDelete},
		"payments":      {ActionRead, ActionCreate, ActionUpdate, ActionDelete},
		"expenses":      {ActionRead, ActionCreate, ActionUpdate, ActionDelete},
		"products":      {ActionRead},
		"services":      {ActionRead},
		"payroll":       {ActionRead, ActionCreate, ActionUpdate},
		"notifications": {ActionRead, ActionCreate, ActionUpdate, ActionDelete},
		"settings":      {ActionRead},
		"numbering":     {ActionRead},
		"dashboard":     {ActionRead},
	},
	types.UserRoleClient: {
		"invoices":      {ActionRead},
		"estimates":     {ActionRead},
		"receipts":      {ActionRead},
		"projects":      {ActionRead},
		"notifications": {ActionRead, ActionUpdate, ActionDelete},
	},
	types.UserRoleUser: {
		"notifications": {ActionRead, ActionUpdate, ActionDelete},
		"dashboard":     {ActionRead},
	},
}

// NewService compiles the role policies into set-based lookups
func NewService() *Service {
	permissions := make(map[types.UserRole]map[string]map[string]bool)
	for role, entities := range rolePolicies {
		permissions[role] = make(map[string]map[string]bool)
		for entity, actions := range entities {
			permissions[role][entity] = make(map[string]bool)
			for _, action := range actions {
				permissions[role][entity][action] = true
			}
		}
	}
	return &Service{permissions: permissions}
}

// Roles returns each role's entity to action grants. The maps are
// rebuilt per call so callers cannot mutate the compiled sets.
func (s *Service) Roles() map[types.UserRole]map[string][]string {
	roles := make(map[types.UserRole]map[string][]string, len(s.permissions))
	for role, entities := range s.permissions {
		roles[role] = make(map[string][]string, len(entities))
		for entity, actions := range entities {
			list := make([]string, 0, len(actions))
			for action := range actions {
				list = append(list, action)
			}
			sort.Strings(list)
			roles[role][entity] = list
		}
	}
	return roles
}

// HasPermission reports whether the role may perform action on entity
func (s *Service) HasPermission(role types.UserRole, entity string, action string) bool {
	entities, ok := s.permissions[role]
	if !ok {
		return false
	}

	if all, ok := entities["*"]; ok && (all["*"] || all[action]) {
		return true
	}

	actions, ok := entities[entity]
	if !ok {
		return false
	}
	return actions[action] || actions["*"]
}
