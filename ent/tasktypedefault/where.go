// Code generated by ent, DO NOT EDIT.

package tasktypedefault

import (
	"entgo.io/ent/dialect/sql"
	"github.com/taskfleet/taskfleet/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TaskTypeDefault {
	return predicate.TaskTypeDefault(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TaskTypeDefault {
	return predicate.TaskTypeDefault(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TaskTypeDefault {
	return predicate.TaskTypeDefault(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TaskTypeDefault {
	return predicate.TaskTypeDefault(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TaskTypeDefault {
	return predicate.TaskTypeDefault(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TaskTypeDefault {
	return predicate.TaskTypeDefault(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TaskTypeDefault {
	return predicate.TaskTypeDefault(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TaskTypeDefault {
	return predicate.TaskTypeDefault(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TaskTypeDefault {
	return predicate.TaskTypeDefault(sql.FieldLTE(FieldID, id))
}

// TimeoutMinutes applies equality check predicate on the "timeout_minutes" field. It's identical to TimeoutMinutesEQ.
func TimeoutMinutes(v int) predicate.TaskTypeDefault {
	return predicate.TaskTypeDefault(sql.FieldEQ(FieldTimeoutMinutes, v))
}

// MaxRetries applies equality check predicate on the "max_retries" field. It's identical to MaxRetriesEQ.
func MaxRetries(v int) predicate.TaskTypeDefault {
	return predicate.TaskTypeDefault(sql.FieldEQ(FieldMaxRetries, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.TaskTypeDefault {
	return predicate.TaskTypeDefault(sql.FieldEQ(FieldPriority, v))
}

// TaskTypeEQ applies the EQ predicate on the "task_type" field.
func TaskTypeEQ(v TaskType) predicate.TaskTypeDefault {
	return predicate.TaskTypeDefault(sql.FieldEQ(FieldTaskType, v))
}

// TaskTypeNEQ applies the NEQ predicate on the "task_type" field.
func TaskTypeNEQ(v TaskType) predicate.TaskTypeDefault {
	return predicate.TaskTypeDefault(sql.FieldNEQ(FieldTaskType, v))
}

// TaskTypeIn applies the In predicate on the "task_type" field.
func TaskTypeIn(vs ...TaskType) predicate.TaskTypeDefault {
	return predicate.TaskTypeDefault(sql.FieldIn(FieldTaskType, vs...))
}

// TaskTypeNotIn applies the NotIn predicate on the "task_type" field.
func TaskTypeNotIn(vs ...TaskType) predicate.TaskTypeDefault {
	return predicate.TaskTypeDefault(sql.FieldNotIn(FieldTaskType, vs...))
}

// TimeoutMinutesEQ applies the EQ predicate on the "timeout_minutes" field.
func TimeoutMinutesEQ(v int) predicate.TaskTypeDefault {
	return predicate.TaskTypeDefault(sql.FieldEQ(FieldTimeoutMinutes, v))
}

// TimeoutMinutesNEQ applies the NEQ predicate on the "timeout_minutes" field.
func TimeoutMinutesNEQ(v int) predicate.TaskTypeDefault {
	return predicate.TaskTypeDefault(sql.FieldNEQ(FieldTimeoutMinutes, v))
}

// TimeoutMinutesIn applies the In predicate on the "timeout_minutes" field.
func TimeoutMinutesIn(vs ...int) predicate.TaskTypeDefault {
	return predicate.TaskTypeDefault(sql.FieldIn(FieldTimeoutMinutes, vs...))
}

// TimeoutMinutesNotIn applies the NotIn predicate on the "timeout_minutes" field.
func TimeoutMinutesNotIn(vs ...int) predicate.TaskTypeDefault {
	return predicate.TaskTypeDefault(sql.FieldNotIn(FieldTimeoutMinutes, vs...))
}

// TimeoutMinutesGT applies the GT predicate on the "timeout_minutes" field.
func TimeoutMinutesGT(v int) predicate.TaskTypeDefault {
	return predicate.TaskTypeDefault(sql.FieldGT(FieldTimeoutMinutes, v))
}

// TimeoutMinutesGTE applies the GTE predicate on the "timeout_minutes" field.
func TimeoutMinutesGTE(v int) predicate.TaskTypeDefault {
	return predicate.TaskTypeDefault(sql.FieldGTE(FieldTimeoutMinutes, v))
}

// TimeoutMinutesLT applies the LT predicate on the "timeout_minutes" field.
func TimeoutMinutesLT(v int) predicate.TaskTypeDefault {
	return predicate.TaskTypeDefault(sql.FieldLT(FieldTimeoutMinutes, v))
}

// TimeoutMinutesLTE applies the LTE predicate on the "timeout_minutes" field.
func TimeoutMinutesLTE(v int) predicate.TaskTypeDefault {
	return predicate.TaskTypeDefault(sql.FieldLTE(FieldTimeoutMinutes, v))
}

// MaxRetriesEQ applies the EQ predicate on the "max_retries" field.
func MaxRetriesEQ(v int) predicate.TaskTypeDefault {
	return predicate.TaskTypeDefault(sql.FieldEQ(FieldMaxRetries, v))
}

// MaxRetriesNEQ applies the NEQ predicate on the "max_retries" field.
func MaxRetriesNEQ(v int) predicate.TaskTypeDefault {
	return predicate.TaskTypeDefault(sql.FieldNEQ(FieldMaxRetries, v))
}

// MaxRetriesIn applies the In predicate on the "max_retries" field.
func MaxRetriesIn(vs ...int) predicate.TaskTypeDefault {
	return predicate.TaskTypeDefault(sql.FieldIn(FieldMaxRetries, vs...))
}

// MaxRetriesNotIn applies the NotIn predicate on the "max_retries" field.
func MaxRetriesNotIn(vs ...int) predicate.TaskTypeDefault {
	return predicate.TaskTypeDefault(sql.FieldNotIn(FieldMaxRetries, vs...))
}

// MaxRetriesGT applies the GT predicate on the "max_retries" field.
func MaxRetriesGT(v int) predicate.TaskTypeDefault {
	return predicate.TaskTypeDefault(sql.FieldGT(FieldMaxRetries, v))
}

// MaxRetriesGTE applies the GTE predicate on the "max_retries" field.
func MaxRetriesGTE(v int) predicate.TaskTypeDefault {
	return predicate.TaskTypeDefault(sql.FieldGTE(FieldMaxRetries, v))
}

// MaxRetriesLT applies the LT predicate on the "max_retries" field.
func MaxRetriesLT(v int) predicate.TaskTypeDefault {
	return predicate.TaskTypeDefault(sql.FieldLT(FieldMaxRetries, v))
}

// MaxRetriesLTE applies the LTE predicate on the "max_retries" field.
func MaxRetriesLTE(v int) predicate.TaskTypeDefault {
	return predicate.TaskTypeDefault(sql.FieldLTE(FieldMaxRetries, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.TaskTypeDefault {
	return predicate.TaskTypeDefault(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.TaskTypeDefault {
	return predicate.TaskTypeDefault(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.TaskTypeDefault {
	return predicate.TaskTypeDefault(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.TaskTypeDefault {
	return predicate.TaskTypeDefault(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.TaskTypeDefault {
	return predicate.TaskTypeDefault(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.TaskTypeDefault {
	return predicate.TaskTypeDefault(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.TaskTypeDefault {
	return predicate.TaskTypeDefault(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.TaskTypeDefault {
	return predicate.TaskTypeDefault(sql.FieldLTE(FieldPriority, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TaskTypeDefault) predicate.TaskTypeDefault {
	return predicate.TaskTypeDefault(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TaskTypeDefault) predicate.TaskTypeDefault {
	return predicate.TaskTypeDefault(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TaskTypeDefault) predicate.TaskTypeDefault {
	return predicate.TaskTypeDefault(sql.NotPredicates(p))
}
