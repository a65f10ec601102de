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
)

// AgentChannelCreate is the builder for creating a AgentChannel entity.
type AgentChannelCreate struct {
	config
	mutation *AgentChannelMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAgentName sets the "agent_name" field.
func (_c *AgentChannelCreate) SetAgentName(v string) *AgentChannelCreate {
	_c.mutation.SetAgentName(v)
	return _c
}

// SetChannelID sets the "channel_id" field.
func (_c *AgentChannelCreate) SetChannelID(v string) *AgentChannelCreate {
	_c.mutation.SetChannelID(v)
	return _c
}

// SetLastSeen sets the "last_seen" field.
func (_c *AgentChannelCreate) SetLastSeen(v time.Time) *AgentChannelCreate {
	_c.mutation.SetLastSeen(v)
	return _c
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_c *AgentChannelCreate) SetNillableLastSeen(v *time.Time) *AgentChannelCreate {
	if v != nil {
		_c.SetLastSeen(*v)
	}
	return _c
}

// Mutation returns the AgentChannelMutation object of the builder.
func (_c *AgentChannelCreate) Mutation() *AgentChannelMutation {
	return _c.mutation
}

// Save creates the AgentChannel in the database.
func (_c *AgentChannelCreate) Save(ctx context.Context) (*AgentChannel, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentChannelCreate) SaveX(ctx context.Context) *AgentChannel {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentChannelCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentChannelCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentChannelCreate) defaults() {
	if _, ok := _c.mutation.LastSeen(); !ok {
		v := agentchannel.DefaultLastSeen()
		_c.mutation.SetLastSeen(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentChannelCreate) check() error {
	if _, ok := _c.mutation.AgentName(); !ok {
		return &ValidationError{Name: "agent_name", err: errors.New(`ent: missing required field "AgentChannel.agent_name"`)}
	}
	if _, ok := _c.mutation.ChannelID(); !ok {
		return &ValidationError{Name: "channel_id", err: errors.New(`ent: missing required field "AgentChannel.channel_id"`)}
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		return &ValidationError{Name: "last_seen", err: errors.New(`ent: missing required field "AgentChannel.last_seen"`)}
	}
	return nil
}

func (_c *AgentChannelCreate) sqlSave(ctx context.Context) (*AgentChannel, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentChannelCreate) createSpec() (*AgentChannel, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentChannel{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentchannel.Table, sqlgraph.NewFieldSpec(agentchannel.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.AgentName(); ok {
		_spec.SetField(agentchannel.FieldAgentName, field.TypeString, value)
		_node.AgentName = value
	}
	if value, ok := _c.mutation.ChannelID(); ok {
		_spec.SetField(agentchannel.FieldChannelID, field.TypeString, value)
		_node.ChannelID = value
	}
	if value, ok := _c.mutation.LastSeen(); ok {
		_spec.SetField(agentchannel.FieldLastSeen, field.TypeTime, value)
		_node.LastSeen = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentChannel.Create().
//		SetAgentName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentChannelUpsert) {
//			SetAgentName(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentChannelCreate) OnConflict(opts ...sql.ConflictOption) *AgentChannelUpsertOne {
	_c.conflict = opts
	return &AgentChannelUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentChannel.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentChannelCreate) OnConflictColumns(columns ...string) *AgentChannelUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentChannelUpsertOne{
		create: _c,
	}
}

type (
	// AgentChannelUpsertOne is the builder for "upsert"-ing
	//  one AgentChannel node.
	AgentChannelUpsertOne struct {
		create *AgentChannelCreate
	}

	// AgentChannelUpsert is the "OnConflict" setter.
	AgentChannelUpsert struct {
		*sql.UpdateSet
	}
)

// SetAgentName sets the "agent_name" field.
func (u *AgentChannelUpsert) SetAgentName(v string) *AgentChannelUpsert {
	u.Set(agentchannel.FieldAgentName, v)
	return u
}

// UpdateAgentName sets the "agent_name" field to the value that was provided on create.
func (u *AgentChannelUpsert) UpdateAgentName() *AgentChannelUpsert {
	u.SetExcluded(agentchannel.FieldAgentName)
	return u
}

// SetChannelID sets the "channel_id" field.
func (u *AgentChannelUpsert) SetChannelID(v string) *AgentChannelUpsert {
	u.Set(agentchannel.FieldChannelID, v)
	return u
}

// UpdateChannelID sets the "channel_id" field to the value that was provided on create.
func (u *AgentChannelUpsert) UpdateChannelID() *AgentChannelUpsert {
	u.SetExcluded(agentchannel.FieldChannelID)
	return u
}

// SetLastSeen sets the "last_seen" field.
func (u *AgentChannelUpsert) SetLastSeen(v time.Time) *AgentChannelUpsert {
	u.Set(agentchannel.FieldLastSeen, v)
	return u
}

// UpdateLastSeen sets the "last_seen" field to the value that was provided on create.
func (u *AgentChannelUpsert) UpdateLastSeen() *AgentChannelUpsert {
	u.SetExcluded(agentchannel.FieldLastSeen)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.AgentChannel.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AgentChannelUpsertOne) UpdateNewValues() *AgentChannelUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentChannel.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentChannelUpsertOne) Ignore() *AgentChannelUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentChannelUpsertOne) DoNothing() *AgentChannelUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentChannelCreate.OnConflict
// documentation for more info.
func (u *AgentChannelUpsertOne) Update(set func(*AgentChannelUpsert)) *AgentChannelUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentChannelUpsert{UpdateSet: update})
	}))
	return u
}

// SetAgentName sets the "agent_name" field.
func (u *AgentChannelUpsertOne) SetAgentName(v string) *AgentChannelUpsertOne {
	return u.Update(func(s *AgentChannelUpsert) {
		s.SetAgentName(v)
	})
}

// UpdateAgentName sets the "agent_name" field to the value that was provided on create.
func (u *AgentChannelUpsertOne) UpdateAgentName() *AgentChannelUpsertOne {
	return u.Update(func(s *AgentChannelUpsert) {
		s.UpdateAgentName()
	})
}

// SetChannelID sets the "channel_id" field.
func (u *AgentChannelUpsertOne) SetChannelID(v string) *AgentChannelUpsertOne {
	return u.Update(func(s *AgentChannelUpsert) {
		s.SetChannelID(v)
	})
}

// UpdateChannelID sets the "channel_id" field to the value that was provided on create.
func (u *AgentChannelUpsertOne) UpdateChannelID() *AgentChannelUpsertOne {
	return u.Update(func(s *AgentChannelUpsert) {
		s.UpdateChannelID()
	})
}

// SetLastSeen sets the "last_seen" field.
func (u *AgentChannelUpsertOne) SetLastSeen(v time.Time) *AgentChannelUpsertOne {
	return u.Update(func(s *AgentChannelUpsert) {
		s.SetLastSeen(v)
	})
}

// UpdateLastSeen sets the "last_seen" field to the value that was provided on create.
func (u *AgentChannelUpsertOne) UpdateLastSeen() *AgentChannelUpsertOne {
	return u.Update(func(s *AgentChannelUpsert) {
		s.UpdateLastSeen()
	})
}

// Exec executes the query.
func (u *AgentChannelUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentChannelCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentChannelUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentChannelUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentChannelUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentChannelCreateBulk is the builder for creating many AgentChannel entities in bulk.
type AgentChannelCreateBulk struct {
	config
	err      error
	builders []*AgentChannelCreate
	conflict []sql.ConflictOption
}

// Save creates the AgentChannel entities in the database.
func (_c *AgentChannelCreateBulk) Save(ctx context.Context) ([]*AgentChannel, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentChannel, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentChannelMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AgentChannelCreateBulk) SaveX(ctx context.Context) []*AgentChannel {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentChannelCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentChannelCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentChannel.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentChannelUpsert) {
//			SetAgentName(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentChannelCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentChannelUpsertBulk {
	_c.conflict = opts
	return &AgentChannelUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentChannel.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentChannelCreateBulk) OnConflictColumns(columns ...string) *AgentChannelUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentChannelUpsertBulk{
		create: _c,
	}
}

// AgentChannelUpsertBulk is the builder for "upsert"-ing
// a bulk of AgentChannel nodes.
type AgentChannelUpsertBulk struct {
	create *AgentChannelCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AgentChannel.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AgentChannelUpsertBulk) UpdateNewValues() *AgentChannelUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentChannel.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentChannelUpsertBulk) Ignore() *AgentChannelUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentChannelUpsertBulk) DoNothing() *AgentChannelUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentChannelCreateBulk.OnConflict
// documentation for more info.
func (u *AgentChannelUpsertBulk) Update(set func(*AgentChannelUpsert)) *AgentChannelUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentChannelUpsert{UpdateSet: update})
	}))
	return u
}

// SetAgentName sets the "agent_name" field.
func (u *AgentChannelUpsertBulk) SetAgentName(v string) *AgentChannelUpsertBulk {
	return u.Update(func(s *AgentChannelUpsert) {
		s.SetAgentName(v)
	})
}

// UpdateAgentName sets the "agent_name" field to the value that was provided on create.
func (u *AgentChannelUpsertBulk) UpdateAgentName() *AgentChannelUpsertBulk {
	return u.Update(func(s *AgentChannelUpsert) {
		s.UpdateAgentName()
	})
}

// SetChannelID sets the "channel_id" field.
func (u *AgentChannelUpsertBulk) SetChannelID(v string) *AgentChannelUpsertBulk {
	return u.Update(func(s *AgentChannelUpsert) {
		s.SetChannelID(v)
	})
}

// UpdateChannelID sets the "channel_id" field to the value that was provided on create.
func (u *AgentChannelUpsertBulk) UpdateChannelID() *AgentChannelUpsertBulk {
	return u.Update(func(s *AgentChannelUpsert) {
		s.UpdateChannelID()
	})
}

// SetLastSeen sets the "last_seen" field.
func (u *AgentChannelUpsertBulk) SetLastSeen(v time.Time) *AgentChannelUpsertBulk {
	return u.Update(func(s *AgentChannelUpsert) {
		s.SetLastSeen(v)
	})
}

// UpdateLastSeen sets the "last_seen" field to the value that was provided on create.
func (u *AgentChannelUpsertBulk) UpdateLastSeen() *AgentChannelUpsertBulk {
	return u.Update(func(s *AgentChannelUpsert) {
		s.UpdateLastSeen()
	})
}

// Exec executes the query.
func (u *AgentChannelUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentChannelCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentChannelCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentChannelUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
