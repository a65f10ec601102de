// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/taskfleet/taskfleet/ent/agentchannel"
	"github.com/taskfleet/taskfleet/ent/predicate"
)

// AgentChannelUpdate is the builder for updating AgentChannel entities.
type AgentChannelUpdate struct {
	config
	hooks    []Hook
	mutation *AgentChannelMutation
}

// Where appends a list predicates to the AgentChannelUpdate builder.
func (_u *AgentChannelUpdate) Where(ps ...predicate.AgentChannel) *AgentChannelUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *AgentChannelUpdate) SetAgentName(v string) *AgentChannelUpdate {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *AgentChannelUpdate) SetNillableAgentName(v *string) *AgentChannelUpdate {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// SetChannelID sets the "channel_id" field.
func (_u *AgentChannelUpdate) SetChannelID(v string) *AgentChannelUpdate {
	_u.mutation.SetChannelID(v)
	return _u
}

// SetNillableChannelID sets the "channel_id" field if the given value is not nil.
func (_u *AgentChannelUpdate) SetNillableChannelID(v *string) *AgentChannelUpdate {
	if v != nil {
		_u.SetChannelID(*v)
	}
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *AgentChannelUpdate) SetLastSeen(v time.Time) *AgentChannelUpdate {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *AgentChannelUpdate) SetNillableLastSeen(v *time.Time) *AgentChannelUpdate {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// Mutation returns the AgentChannelMutation object of the builder.
func (_u *AgentChannelUpdate) Mutation() *AgentChannelMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentChannelUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentChannelUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentChannelUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentChannelUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AgentChannelUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(agentchannel.Table, agentchannel.Columns, sqlgraph.NewFieldSpec(agentchannel.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(agentchannel.FieldAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChannelID(); ok {
		_spec.SetField(agentchannel.FieldChannelID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(agentchannel.FieldLastSeen, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentchannel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentChannelUpdateOne is the builder for updating a single AgentChannel entity.
type AgentChannelUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentChannelMutation
}

// SetAgentName sets the "agent_name" field.
func (_u *AgentChannelUpdateOne) SetAgentName(v string) *AgentChannelUpdateOne {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *AgentChannelUpdateOne) SetNillableAgentName(v *string) *AgentChannelUpdateOne {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// SetChannelID sets the "channel_id" field.
func (_u *AgentChannelUpdateOne) SetChannelID(v string) *AgentChannelUpdateOne {
	_u.mutation.SetChannelID(v)
	return _u
}

// SetNillableChannelID sets the "channel_id" field if the given value is not nil.
func (_u *AgentChannelUpdateOne) SetNillableChannelID(v *string) *AgentChannelUpdateOne {
	if v != nil {
		_u.SetChannelID(*v)
	}
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *AgentChannelUpdateOne) SetLastSeen(v time.Time) *AgentChannelUpdateOne {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *AgentChannelUpdateOne) SetNillableLastSeen(v *time.Time) *AgentChannelUpdateOne {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// Mutation returns the AgentChannelMutation object of the builder.
func (_u *AgentChannelUpdateOne) Mutation() *AgentChannelMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentChannelUpdate builder.
func (_u *AgentChannelUpdateOne) Where(ps ...predicate.AgentChannel) *AgentChannelUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentChannelUpdateOne) Select(field string, fields ...string) *AgentChannelUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentChannel entity.
func (_u *AgentChannelUpdateOne) Save(ctx context.Context) (*AgentChannel, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentChannelUpdateOne) SaveX(ctx context.Context) *AgentChannel {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentChannelUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentChannelUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AgentChannelUpdateOne) sqlSave(ctx context.Context) (_node *AgentChannel, err error) {
	_spec := sqlgraph.NewUpdateSpec(agentchannel.Table, agentchannel.Columns, sqlgraph.NewFieldSpec(agentchannel.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentChannel.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentchannel.FieldID)
		for _, f := range fields {
			if !agentchannel.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentchannel.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(agentchannel.FieldAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChannelID(); ok {
		_spec.SetField(agentchannel.FieldChannelID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(agentchannel.FieldLastSeen, field.TypeTime, value)
	}
	_node = &AgentChannel{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentchannel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
