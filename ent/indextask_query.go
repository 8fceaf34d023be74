// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/JanDamek/jervis-transcribe/ent/indextask"
	"github.com/JanDamek/jervis-transcribe/ent/predicate"
)

// IndexTaskQuery is the builder for querying IndexTask entities.
type IndexTaskQuery struct {
	config
	ctx        *QueryContext
	order      []indextask.OrderOption
	inters     []Interceptor
	predicates []predicate.IndexTask
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the IndexTaskQuery builder.
func (itq *IndexTaskQuery) Where(ps ...predicate.IndexTask) *IndexTaskQuery {
	itq.predicates = append(itq.predicates, ps...)
	return itq
}

// Limit the number of records to be returned by this query.
func (itq *IndexTaskQuery) Limit(limit int) *IndexTaskQuery {
	itq.ctx.Limit = &limit
	return itq
}

// Offset to start from.
func (itq *IndexTaskQuery) Offset(offset int) *IndexTaskQuery {
	itq.ctx.Offset = &offset
	return itq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (itq *IndexTaskQuery) Unique(unique bool) *IndexTaskQuery {
	itq.ctx.Unique = &unique
	return itq
}

// Order specifies how the records should be ordered.
func (itq *IndexTaskQuery) Order(o ...indextask.OrderOption) *IndexTaskQuery {
	itq.order = append(itq.order, o...)
	return itq
}

// First returns the first IndexTask entity from the query.
// Returns a *NotFoundError when no IndexTask was found.
func (itq *IndexTaskQuery) First(ctx context.Context) (*IndexTask, error) {
	nodes, err := itq.Limit(1).All(setContextOp(ctx, itq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{indextask.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (itq *IndexTaskQuery) FirstX(ctx context.Context) *IndexTask {
	node, err := itq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first IndexTask ID from the query.
// Returns a *NotFoundError when no IndexTask ID was found.
func (itq *IndexTaskQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = itq.Limit(1).IDs(setContextOp(ctx, itq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{indextask.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (itq *IndexTaskQuery) FirstIDX(ctx context.Context) string {
	id, err := itq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single IndexTask entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one IndexTask entity is found.
// Returns a *NotFoundError when no IndexTask entities are found.
func (itq *IndexTaskQuery) Only(ctx context.Context) (*IndexTask, error) {
	nodes, err := itq.Limit(2).All(setContextOp(ctx, itq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{indextask.Label}
	default:
		return nil, &NotSingularError{indextask.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (itq *IndexTaskQuery) OnlyX(ctx context.Context) *IndexTask {
	node, err := itq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only IndexTask ID in the query.
// Returns a *NotSingularError when more than one IndexTask ID is found.
// Returns a *NotFoundError when no entities are found.
func (itq *IndexTaskQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = itq.Limit(2).IDs(setContextOp(ctx, itq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{indextask.Label}
	default:
		err = &NotSingularError{indextask.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (itq *IndexTaskQuery) OnlyIDX(ctx context.Context) string {
	id, err := itq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of IndexTasks.
func (itq *IndexTaskQuery) All(ctx context.Context) ([]*IndexTask, error) {
	ctx = setContextOp(ctx, itq.ctx, ent.OpQueryAll)
	if err := itq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*IndexTask, *IndexTaskQuery]()
	return withInterceptors[[]*IndexTask](ctx, itq, qr, itq.inters)
}

// AllX is like All, but panics if an error occurs.
func (itq *IndexTaskQuery) AllX(ctx context.Context) []*IndexTask {
	nodes, err := itq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of IndexTask IDs.
func (itq *IndexTaskQuery) IDs(ctx context.Context) (ids []string, err error) {
	if itq.ctx.Unique == nil && itq.path != nil {
		itq.Unique(true)
	}
	ctx = setContextOp(ctx, itq.ctx, ent.OpQueryIDs)
	if err = itq.Select(indextask.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (itq *IndexTaskQuery) IDsX(ctx context.Context) []string {
	ids, err := itq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (itq *IndexTaskQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, itq.ctx, ent.OpQueryCount)
	if err := itq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, itq, querierCount[*IndexTaskQuery](), itq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (itq *IndexTaskQuery) CountX(ctx context.Context) int {
	count, err := itq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (itq *IndexTaskQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, itq.ctx, ent.OpQueryExist)
	switch _, err := itq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (itq *IndexTaskQuery) ExistX(ctx context.Context) bool {
	exist, err := itq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the IndexTaskQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (itq *IndexTaskQuery) Clone() *IndexTaskQuery {
	if itq == nil {
		return nil
	}
	return &IndexTaskQuery{
		config:     itq.config,
		ctx:        itq.ctx.Clone(),
		order:      append([]indextask.OrderOption{}, itq.order...),
		inters:     append([]Interceptor{}, itq.inters...),
		predicates: append([]predicate.IndexTask{}, itq.predicates...),
		// clone intermediate query.
		sql:  itq.sql.Clone(),
		path: itq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		MeetingID string `json:"meeting_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.IndexTask.Query().
//		GroupBy(indextask.FieldMeetingID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (itq *IndexTaskQuery) GroupBy(field string, fields ...string) *IndexTaskGroupBy {
	itq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &IndexTaskGroupBy{build: itq}
	grbuild.flds = &itq.ctx.Fields
	grbuild.label = indextask.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		MeetingID string `json:"meeting_id,omitempty"`
//	}
//
//	client.IndexTask.Query().
//		Select(indextask.FieldMeetingID).
//		Scan(ctx, &v)
func (itq *IndexTaskQuery) Select(fields ...string) *IndexTaskSelect {
	itq.ctx.Fields = append(itq.ctx.Fields, fields...)
	sbuild := &IndexTaskSelect{IndexTaskQuery: itq}
	sbuild.label = indextask.Label
	sbuild.flds, sbuild.scan = &itq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a IndexTaskSelect configured with the given aggregations.
func (itq *IndexTaskQuery) Aggregate(fns ...AggregateFunc) *IndexTaskSelect {
	return itq.Select().Aggregate(fns...)
}

func (itq *IndexTaskQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range itq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, itq); err != nil {
				return err
			}
		}
	}
	for _, f := range itq.ctx.Fields {
		if !indextask.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if itq.path != nil {
		prev, err := itq.path(ctx)
		if err != nil {
			return err
		}
		itq.sql = prev
	}
	return nil
}

func (itq *IndexTaskQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*IndexTask, error) {
	var (
		nodes = []*IndexTask{}
		_spec = itq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*IndexTask).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &IndexTask{config: itq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, itq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (itq *IndexTaskQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := itq.querySpec()
	_spec.Node.Columns = itq.ctx.Fields
	if len(itq.ctx.Fields) > 0 {
		_spec.Unique = itq.ctx.Unique != nil && *itq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, itq.driver, _spec)
}

func (itq *IndexTaskQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(indextask.Table, indextask.Columns, sqlgraph.NewFieldSpec(indextask.FieldID, field.TypeString))
	_spec.From = itq.sql
	if unique := itq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if itq.path != nil {
		_spec.Unique = true
	}
	if fields := itq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, indextask.FieldID)
		for i := range fields {
			if fields[i] != indextask.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := itq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := itq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := itq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := itq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (itq *IndexTaskQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(itq.driver.Dialect())
	t1 := builder.Table(indextask.Table)
	columns := itq.ctx.Fields
	if len(columns) == 0 {
		columns = indextask.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if itq.sql != nil {
		selector = itq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if itq.ctx.Unique != nil && *itq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range itq.predicates {
		p(selector)
	}
	for _, p := range itq.order {
		p(selector)
	}
	if offset := itq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := itq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// IndexTaskGroupBy is the group-by builder for IndexTask entities.
type IndexTaskGroupBy struct {
	selector
	build *IndexTaskQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (itgb *IndexTaskGroupBy) Aggregate(fns ...AggregateFunc) *IndexTaskGroupBy {
	itgb.fns = append(itgb.fns, fns...)
	return itgb
}

// Scan applies the selector query and scans the result into the given value.
func (itgb *IndexTaskGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, itgb.build.ctx, ent.OpQueryGroupBy)
	if err := itgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*IndexTaskQuery, *IndexTaskGroupBy](ctx, itgb.build, itgb, itgb.build.inters, v)
}

func (itgb *IndexTaskGroupBy) sqlScan(ctx context.Context, root *IndexTaskQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(itgb.fns))
	for _, fn := range itgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*itgb.flds)+len(itgb.fns))
		for _, f := range *itgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*itgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := itgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// IndexTaskSelect is the builder for selecting fields of IndexTask entities.
type IndexTaskSelect struct {
	*IndexTaskQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (its *IndexTaskSelect) Aggregate(fns ...AggregateFunc) *IndexTaskSelect {
	its.fns = append(its.fns, fns...)
	return its
}

// Scan applies the selector query and scans the result into the given value.
func (its *IndexTaskSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, its.ctx, ent.OpQuerySelect)
	if err := its.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*IndexTaskQuery, *IndexTaskSelect](ctx, its.IndexTaskQuery, its, its.inters, v)
}

func (its *IndexTaskSelect) sqlScan(ctx context.Context, root *IndexTaskQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(its.fns))
	for _, fn := range its.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*its.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := its.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
