package domain

// AuthorizeOwner is the single ownership policy for mutations: the requester
// must be authenticated and must be the entity's owner. Every service calls
// this instead of comparing ids inline so the rule cannot diverge per route.
func AuthorizeOwner(requesterID, ownerID string) error {
	if requesterID == "" {
		return ErrUnauthorized
	}
	if requesterID != ownerID {
		return ErrForbidden
	}
	return nil
}
