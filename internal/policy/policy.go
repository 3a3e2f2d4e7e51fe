// Package policy holds the authorization rules for mutating marketplace
// resources. The rules are pure functions over an already-verified actor;
// they never read ambient state.
package policy

// CanMutate reports whether the actor may update or delete a resource owned
// by ownerID. Admins may mutate anything; everyone else only their own
// resources. Callers must check resource existence first so that a missing
// resource is reported as not found, never as a permission verdict.
func CanMutate(actorID string, actorIsAdmin bool, ownerID string) bool {
	return actorIsAdmin || actorID == ownerID
}
