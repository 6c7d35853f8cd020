package entitymodel

import (
	"errors"
)

var ErrEmptyPropertyName = errors.New("property name must not be empty")
var ErrEmptyErrorMessage = errors.New("error message must not be empty")
var ErrNilPredicate = errors.New("predicate must not be nil")

// Rule is an immutable validation rule for one entity type: a property name,
// an error message, and a predicate over a candidate entity.
//
// While rules are evaluated per instance, a RuleSet is meant to be assembled
// once per entity type at startup and shared across all instances of that type.
//
// A Rule should only be constructed with the supplied factory method BuildRule.
type Rule[T any] struct {
	propertyName PropertyNameString
	message      ErrorMessageString
	predicate    func(candidate T) bool
}

// BuildRule is a factory method for Rule.
//
// Returns an error if the property name or message is empty, or the predicate is nil.
func BuildRule[T any](
	propertyName PropertyNameString,
	message ErrorMessageString,
	predicate func(candidate T) bool,
) (Rule[T], error) {

	if propertyName == "" {
		return Rule[T]{}, ErrEmptyPropertyName
	}

	if message == "" {
		return Rule[T]{}, ErrEmptyErrorMessage
	}

	if predicate == nil {
		return Rule[T]{}, ErrNilPredicate
	}

	return Rule[T]{
		propertyName: propertyName,
		message:      message,
		predicate:    predicate,
	}, nil
}

// MustBuildRule is like BuildRule but panics on invalid input. It is intended
// for package-level rule sets assembled once at startup.
func MustBuildRule[T any](
	propertyName PropertyNameString,
	message ErrorMessageString,
	predicate func(candidate T) bool,
) Rule[T] {

	rule, err := BuildRule(propertyName, message, predicate)
	if err != nil {
		panic(err)
	}

	return rule
}

// PropertyName returns the property this rule is scoped to.
func (r Rule[T]) PropertyName() PropertyNameString {
	return r.propertyName
}

// Message returns the error payload reported when the rule is violated.
func (r Rule[T]) Message() ErrorMessageString {
	return r.message
}

// Apply evaluates the predicate against the candidate.
// True means the rule is satisfied and no error is reported.
func (r Rule[T]) Apply(candidate T) bool {
	return r.predicate(candidate)
}

// RuleSet is an insertion-ordered collection of Rules for one entity type.
type RuleSet[T any] struct {
	rules []Rule[T]
}

// BuildRuleSet is a factory method for RuleSet, keeping the given rules in order.
func BuildRuleSet[T any](rules ...Rule[T]) RuleSet[T] {
	return RuleSet[T]{rules: rules}
}

// Rules returns the rules in registration order.
func (rs RuleSet[T]) Rules() []Rule[T] {
	return rs.rules
}

// Apply evaluates all rules against the candidate, in registration order,
// and returns the error messages of every failing rule.
func (rs RuleSet[T]) Apply(candidate T) []ErrorMessageString {
	return rs.applyMatching(candidate, func(Rule[T]) bool { return true })
}

// ApplyForProperty evaluates only the rules scoped to the given property name,
// in registration order, and returns the error messages of every failing rule.
// Duplicate property names are all evaluated.
func (rs RuleSet[T]) ApplyForProperty(candidate T, propertyName PropertyNameString) []ErrorMessageString {
	return rs.applyMatching(candidate, func(r Rule[T]) bool { return r.propertyName == propertyName })
}

func (rs RuleSet[T]) applyMatching(candidate T, matches func(Rule[T]) bool) []ErrorMessageString {
	var failures []ErrorMessageString

	for _, rule := range rs.rules {
		if !matches(rule) {
			continue
		}

		if !rule.Apply(candidate) {
			failures = append(failures, rule.message)
		}
	}

	return failures
}

// PropertyNames returns the distinct property names covered by the rules,
// in first-seen registration order.
func (rs RuleSet[T]) PropertyNames() []PropertyNameString {
	seen := make(map[PropertyNameString]struct{}, len(rs.rules))

	var names []PropertyNameString

	for _, rule := range rs.rules {
		if _, ok := seen[rule.propertyName]; ok {
			continue
		}

		seen[rule.propertyName] = struct{}{}
		names = append(names, rule.propertyName)
	}

	return names
}

// BoundRules is the type-erased view of a RuleSet bound to one concrete
// entity instance. It is what the validation layer consumes, so the layered
// model itself stays free of the entity's type parameter.
type BoundRules interface {
	// ApplyForProperty evaluates the rules scoped to the given property name
	// against the bound entity and returns the failing error messages.
	ApplyForProperty(propertyName PropertyNameString) []ErrorMessageString

	// PropertyNames returns the distinct property names covered by the rules.
	PropertyNames() []PropertyNameString
}

type boundRules[T any] struct {
	rules     RuleSet[T]
	candidate T
}

// BindRuleSet binds a RuleSet to one concrete entity instance, typically the
// pointer to the entity that embeds the model Base.
func BindRuleSet[T any](rules RuleSet[T], candidate T) BoundRules {
	return boundRules[T]{rules: rules, candidate: candidate}
}

func (b boundRules[T]) ApplyForProperty(propertyName PropertyNameString) []ErrorMessageString {
	return b.rules.ApplyForProperty(b.candidate, propertyName)
}

func (b boundRules[T]) PropertyNames() []PropertyNameString {
	return b.rules.PropertyNames()
}
