package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder_BasicSelect(t *testing.T) {
	stmt := From("orders").
		Select("order_id", "order_number", "status").
		Build()

	assert.Equal(t, "SELECT order_id, order_number, status FROM orders", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_SelectAllColumns(t *testing.T) {
	stmt := From("orders").Build()

	assert.Equal(t, "SELECT * FROM orders", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_SingleWhereCondition(t *testing.T) {
	stmt := From("orders").
		Select("order_id").
		Where(Eq("order_number", "O-1")).
		Build()

	assert.Equal(t, "SELECT order_id FROM orders WHERE order_number = @p0", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": "O-1",
	}, stmt.Params)
}

func TestBuilder_MultipleWhereConditions(t *testing.T) {
	stmt := From("order_items").
		Select("order_item_id").
		Where(Eq("order_id", "abc")).
		Where(Eq("product_id", "def")).
		Build()

	assert.Equal(t, "SELECT order_item_id FROM order_items WHERE order_id = @p0 AND product_id = @p1", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": "abc",
		"p1": "def",
	}, stmt.Params)
}

func TestBuilder_OrderByDesc(t *testing.T) {
	stmt := From("products").
		Select("product_id", "name").
		OrderBy("created_at", Desc).
		Build()

	assert.Equal(t, "SELECT product_id, name FROM products ORDER BY created_at DESC", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_OrderByAsc(t *testing.T) {
	stmt := From("products").
		Select("product_id").
		OrderBy("name", Asc).
		Build()

	assert.Equal(t, "SELECT product_id FROM products ORDER BY name ASC", stmt.SQL)
}

func TestBuilder_Limit(t *testing.T) {
	stmt := From("orders").
		Select("order_id").
		Limit(10).
		Build()

	assert.Equal(t, "SELECT order_id FROM orders LIMIT @limit", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"limit": int64(10),
	}, stmt.Params)
}

func TestBuilder_Count(t *testing.T) {
	builder := From("orders").
		Select("order_id", "order_number").
		Where(Eq("order_number", "O-1")).
		OrderBy("created_at", Desc).
		Limit(50)

	countStmt := builder.Count().Build()
	assert.Equal(t, "SELECT COUNT(*) FROM orders WHERE order_number = @p0", countStmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": "O-1",
	}, countStmt.Params)

	// The original builder is unchanged.
	mainStmt := builder.Build()
	assert.Contains(t, mainStmt.SQL, "SELECT order_id, order_number FROM orders")
	assert.Contains(t, mainStmt.SQL, "LIMIT @limit")
}

func TestBuilder_Immutability(t *testing.T) {
	base := From("orders").Select("order_id")

	stmt1 := base.Where(Eq("status", "Pending")).Build()
	stmt2 := base.Where(Eq("order_number", "O-2")).Build()

	assert.Contains(t, stmt1.SQL, "status = @p0")
	assert.NotContains(t, stmt1.SQL, "order_number")

	assert.Contains(t, stmt2.SQL, "order_number = @p0")
	assert.NotContains(t, stmt2.SQL, "status")
}

func TestCondition_Eq(t *testing.T) {
	cond := Eq("status", "Completed")
	sql, params := cond.SQL(3)

	assert.Equal(t, "status = @p3", sql)
	assert.Equal(t, map[string]interface{}{
		"p3": "Completed",
	}, params)
}
