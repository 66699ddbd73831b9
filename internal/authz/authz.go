// Package authz decides whether a subject may perform an action on a
// resource. The decision function is pure: the same (subject, action,
// resource) triple always yields the same verdict, which keeps the rules
// testable as a table instead of through integration runs.
package authz

import "ratehub/internal/httpapi/models"

type Action int

const (
	ActionRead Action = iota
	ActionCreate
	ActionUpdate
	ActionDelete
)

type Kind int

const (
	KindCategory Kind = iota
	KindGenre
	KindTitle
	KindReview
	KindComment
	KindUser
)

// Resource identifies what is being acted on. OwnerID is the author's
// user ID for reviews and comments, the record's own ID for users, and
// empty for the collectively admin-owned taxonomy kinds.
type Resource struct {
	Kind    Kind
	OwnerID string
}

// Allowed evaluates the role rules. A nil subject is an anonymous caller.
func Allowed(subject *models.User, action Action, res Resource) bool {
	switch res.Kind {
	case KindCategory, KindGenre, KindTitle:
		if action == ActionRead {
			return true
		}
		return subject != nil && subject.IsAdmin()

	case KindReview, KindComment:
		switch action {
		case ActionRead:
			return true
		case ActionCreate:
			return subject != nil
		default:
			if subject == nil {
				return false
			}
			if subject.ID == res.OwnerID {
				return true
			}
			return subject.IsAdmin() || subject.IsModerator()
		}

	case KindUser:
		if subject == nil {
			return false
		}
		// A subject always reaches its own record; everything else on
		// user records is admin territory.
		if (action == ActionRead || action == ActionUpdate) && subject.ID == res.OwnerID {
			return true
		}
		return subject.IsAdmin()
	}
	return false
}
