// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/taskfleet/taskfleet/ent/predicate"
	"github.com/taskfleet/taskfleet/ent/tasktypedefault"
)

// TaskTypeDefaultQuery is the builder for querying TaskTypeDefault entities.
type TaskTypeDefaultQuery struct {
	config
	ctx        *QueryContext
	order      []tasktypedefault.OrderOption
	inters     []Interceptor
	predicates []predicate.TaskTypeDefault
	modifiers  []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the TaskTypeDefaultQuery builder.
func (_q *TaskTypeDefaultQuery) Where(ps ...predicate.TaskTypeDefault) *TaskTypeDefaultQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *TaskTypeDefaultQuery) Limit(limit int) *TaskTypeDefaultQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *TaskTypeDefaultQuery) Offset(offset int) *TaskTypeDefaultQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *TaskTypeDefaultQuery) Unique(unique bool) *TaskTypeDefaultQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *TaskTypeDefaultQuery) Order(o ...tasktypedefault.OrderOption) *TaskTypeDefaultQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// First returns the first TaskTypeDefault entity from the query.
// Returns a *NotFoundError when no TaskTypeDefault was found.
func (_q *TaskTypeDefaultQuery) First(ctx context.Context) (*TaskTypeDefault, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{tasktypedefault.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *TaskTypeDefaultQuery) FirstX(ctx context.Context) *TaskTypeDefault {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first TaskTypeDefault ID from the query.
// Returns a *NotFoundError when no TaskTypeDefault ID was found.
func (_q *TaskTypeDefaultQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{tasktypedefault.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *TaskTypeDefaultQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single TaskTypeDefault entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one TaskTypeDefault entity is found.
// Returns a *NotFoundError when no TaskTypeDefault entities are found.
func (_q *TaskTypeDefaultQuery) Only(ctx context.Context) (*TaskTypeDefault, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{tasktypedefault.Label}
	default:
		return nil, &NotSingularError{tasktypedefault.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *TaskTypeDefaultQuery) OnlyX(ctx context.Context) *TaskTypeDefault {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only TaskTypeDefault ID in the query.
// Returns a *NotSingularError when more than one TaskTypeDefault ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *TaskTypeDefaultQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{tasktypedefault.Label}
	default:
		err = &NotSingularError{tasktypedefault.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *TaskTypeDefaultQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of TaskTypeDefaults.
func (_q *TaskTypeDefaultQuery) All(ctx context.Context) ([]*TaskTypeDefault, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*TaskTypeDefault, *TaskTypeDefaultQuery]()
	return withInterceptors[[]*TaskTypeDefault](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *TaskTypeDefaultQuery) AllX(ctx context.Context) []*TaskTypeDefault {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of TaskTypeDefault IDs.
func (_q *TaskTypeDefaultQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(tasktypedefault.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *TaskTypeDefaultQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *TaskTypeDefaultQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*TaskTypeDefaultQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *TaskTypeDefaultQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *TaskTypeDefaultQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *TaskTypeDefaultQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the TaskTypeDefaultQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *TaskTypeDefaultQuery) Clone() *TaskTypeDefaultQuery {
	if _q == nil {
		return nil
	}
	return &TaskTypeDefaultQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]tasktypedefault.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.TaskTypeDefault{}, _q.predicates...),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		TaskType tasktypedefault.TaskType `json:"task_type,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.TaskTypeDefault.Query().
//		GroupBy(tasktypedefault.FieldTaskType).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *TaskTypeDefaultQuery) GroupBy(field string, fields ...string) *TaskTypeDefaultGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &TaskTypeDefaultGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = tasktypedefault.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		TaskType tasktypedefault.TaskType `json:"task_type,omitempty"`
//	}
//
//	client.TaskTypeDefault.Query().
//		Select(tasktypedefault.FieldTaskType).
//		Scan(ctx, &v)
func (_q *TaskTypeDefaultQuery) Select(fields ...string) *TaskTypeDefaultSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &TaskTypeDefaultSelect{TaskTypeDefaultQuery: _q}
	sbuild.label = tasktypedefault.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a TaskTypeDefaultSelect configured with the given aggregations.
func (_q *TaskTypeDefaultQuery) Aggregate(fns ...AggregateFunc) *TaskTypeDefaultSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *TaskTypeDefaultQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !tasktypedefault.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *TaskTypeDefaultQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*TaskTypeDefault, error) {
	var (
		nodes = []*TaskTypeDefault{}
		_spec = _q.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*TaskTypeDefault).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &TaskTypeDefault{config: _q.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (_q *TaskTypeDefaultQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *TaskTypeDefaultQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(tasktypedefault.Table, tasktypedefault.Columns, sqlgraph.NewFieldSpec(tasktypedefault.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tasktypedefault.FieldID)
		for i := range fields {
			if fields[i] != tasktypedefault.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *TaskTypeDefaultQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(tasktypedefault.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = tasktypedefault.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *TaskTypeDefaultQuery) ForUpdate(opts ...sql.LockOption) *TaskTypeDefaultQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *TaskTypeDefaultQuery) ForShare(opts ...sql.LockOption) *TaskTypeDefaultQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// TaskTypeDefaultGroupBy is the group-by builder for TaskTypeDefault entities.
type TaskTypeDefaultGroupBy struct {
	selector
	build *TaskTypeDefaultQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *TaskTypeDefaultGroupBy) Aggregate(fns ...AggregateFunc) *TaskTypeDefaultGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *TaskTypeDefaultGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TaskTypeDefaultQuery, *TaskTypeDefaultGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *TaskTypeDefaultGroupBy) sqlScan(ctx context.Context, root *TaskTypeDefaultQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// TaskTypeDefaultSelect is the builder for selecting fields of TaskTypeDefault entities.
type TaskTypeDefaultSelect struct {
	*TaskTypeDefaultQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *TaskTypeDefaultSelect) Aggregate(fns ...AggregateFunc) *TaskTypeDefaultSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *TaskTypeDefaultSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TaskTypeDefaultQuery, *TaskTypeDefaultSelect](ctx, _s.TaskTypeDefaultQuery, _s, _s.inters, v)
}

func (_s *TaskTypeDefaultSelect) sqlScan(ctx context.Context, root *TaskTypeDefaultQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
