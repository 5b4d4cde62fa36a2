package query

import "fmt"

// Condition is a WHERE clause fragment using Spanner's named parameter
// format (@paramName).
type Condition interface {
	// SQL returns the fragment and its parameters. paramIndex is used to
	// generate unique parameter names (@p0, @p1, ...).
	SQL(paramIndex int) (string, map[string]interface{})
}

type eqCondition struct {
	field string
	value interface{}
}

// Eq creates an equality condition.
// Example: Eq("status", "Pending") generates "status = @p0".
func Eq(field string, value interface{}) Condition {
	return &eqCondition{
		field: field,
		value: value,
	}
}

func (c *eqCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("%s = @%s", c.field, paramName)
	params := map[string]interface{}{
		paramName: c.value,
	}
	return sql, params
}
