package entitymodel_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/modelkit/editable-entity-go/entitymodel"
	"github.com/modelkit/editable-entity-go/testutil/helper"
)

// customer is the concrete entity type used across the tests: a struct
// embedding the model Base, setters routed through SetProperty, and a
// package-level rule set shared by all instances.
type customer struct {
	Base *entitymodel.Base `json:"-"`

	ID    uuid.UUID
	Name  string
	Email string
	Age   int
}

var customerRules = entitymodel.BuildRuleSet(
	entitymodel.MustBuildRule("Name", "Required", func(c *customer) bool {
		return c.Name != ""
	}),
	entitymodel.MustBuildRule("Email", "Required", func(c *customer) bool {
		return c.Email != ""
	}),
	entitymodel.MustBuildRule("Email", "MustContainAtSign", func(c *customer) bool {
		return c.Email == "" || strings.Contains(c.Email, "@")
	}),
	entitymodel.MustBuildRule("Age", "MustNotBeNegative", func(c *customer) bool {
		return c.Age >= 0
	}),
)

func buildCustomer(t *testing.T, opts ...entitymodel.Option) *customer {
	t.Helper()

	c := &customer{ID: helper.GivenUniqueID(t)}

	baseOpts := append([]entitymodel.Option{
		entitymodel.WithJSONSnapshot(c),
		entitymodel.WithRules(entitymodel.BindRuleSet(customerRules, c)),
	}, opts...)

	base, err := entitymodel.BuildBase(baseOpts...)
	require.NoError(t, err, "error in arranging test data")

	c.Base = base

	return c
}

func (c *customer) setName(value string) (bool, error) {
	return entitymodel.SetProperty(c.Base, &c.Name, value, "Name")
}

func (c *customer) setEmail(value string) (bool, error) {
	return entitymodel.SetProperty(c.Base, &c.Email, value, "Email")
}

func (c *customer) setAge(value int) (bool, error) {
	return entitymodel.SetProperty(c.Base, &c.Age, value, "Age")
}
