// Package entitymodel provides a composable base for data-bound entities with
// change notification, rule-based validation, transactional editing, and
// dirty-state tracking.
//
// A concrete entity type holds a *Base and routes its setters through
// SetProperty. Collaborators (bindings, commands, view models) consume the
// exposed streams and flags; the package itself has no UI, network, or
// persistence surface.
//
// Key types:
//   - Base: the composed model built with BuildBase and functional options
//   - Rule / RuleSet: per-type validation rules with error payloads
//   - Snapshotter: deep copy, restore, structural equality, and cloning,
//     with a JSON-based default implementation
//   - Signal / Subscription: hot, multicast, subscribe-anytime streams
//
// Common usage pattern:
//
//	type Customer struct {
//		Base *entitymodel.Base `json:"-"`
//		Name string
//	}
//
//	var customerRules = entitymodel.BuildRuleSet(
//		entitymodel.MustBuildRule("Name", "Required", func(c *Customer) bool {
//			return c.Name != ""
//		}),
//	)
//
//	func NewCustomer() (*Customer, error) {
//		c := &Customer{}
//
//		base, err := entitymodel.BuildBase(
//			entitymodel.WithJSONSnapshot(c),
//			entitymodel.WithRules(entitymodel.BindRuleSet(customerRules, c)),
//		)
//		if err != nil {
//			return nil, err
//		}
//
//		c.Base = base
//
//		return c, nil
//	}
//
//	func (c *Customer) SetName(value string) (bool, error) {
//		return entitymodel.SetProperty(c.Base, &c.Name, value, "Name")
//	}
//
// All notification is synchronous on the calling goroutine; an entity is
// owned by a single logical owner and is not safe for concurrent use. The
// per-type RuleSet is the only shared state and is read-only after startup.
package entitymodel
