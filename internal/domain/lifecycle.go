package domain

type ActorRole string

const (
	RoleBuyer     ActorRole = "buyer"
	RoleSeller    ActorRole = "seller"
	RoleDeliverer ActorRole = "deliverer"
	RoleSystem    ActorRole = "system"
	RoleAdmin     ActorRole = "admin"
)

// Transition is one edge of the order lifecycle: who may move an order
// to which status. Preconditions that need more than the current status
// (code match, item ownership) are checked by the usecases after the
// table says the edge exists.
type Transition struct {
	To     OrderStatus
	Actors []ActorRole
}

// transitions is the whole lifecycle. Adding an edge here is the only
// change needed to allow a new status move.
var transitions = map[OrderStatus][]Transition{
	StatusPending: {
		{To: StatusPaid, Actors: []ActorRole{RoleSystem, RoleAdmin}},
		{To: StatusCancelled, Actors: []ActorRole{RoleBuyer, RoleAdmin}},
	},
	StatusPaid: {
		{To: StatusProcessing, Actors: []ActorRole{RoleSeller, RoleAdmin}},
		{To: StatusCancelled, Actors: []ActorRole{RoleBuyer, RoleAdmin}},
	},
	StatusProcessing: {
		{To: StatusReady, Actors: []ActorRole{RoleSeller, RoleAdmin}},
		// Legacy direct-ship path, kept for sellers shipping through an
		// external carrier without the pickup-code handoff.
		{To: StatusShipped, Actors: []ActorRole{RoleSeller, RoleAdmin}},
		{To: StatusCancelled, Actors: []ActorRole{RoleBuyer, RoleAdmin}},
	},
	StatusReady: {
		{To: StatusShipped, Actors: []ActorRole{RoleDeliverer, RoleAdmin}},
	},
	StatusShipped: {
		{To: StatusDelivered, Actors: []ActorRole{RoleBuyer, RoleAdmin}},
	},
}

// CanTransition reports whether the lifecycle table allows the given
// actor role to move an order from one status to another.
func CanTransition(from, to OrderStatus, role ActorRole) bool {
	for _, tr := range transitions[from] {
		if tr.To != to {
			continue
		}
		for _, actor := range tr.Actors {
			if actor == role {
				return true
			}
		}
	}
	return false
}

// AllowedTransitions lists the statuses the given role may move an order
// to from its current status. Returned with InvalidTransition errors so
// callers do not have to guess.
func AllowedTransitions(from OrderStatus, role ActorRole) []OrderStatus {
	var allowed []OrderStatus
	for _, tr := range transitions[from] {
		for _, actor := range tr.Actors {
			if actor == role {
				allowed = append(allowed, tr.To)
				break
			}
		}
	}
	return allowed
}
