// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/taskfleet/taskfleet/ent/tasktypedefault"
)

// TaskTypeDefault is the model entity for the TaskTypeDefault schema.
type TaskTypeDefault struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// TaskType holds the value of the "task_type" field.
	TaskType tasktypedefault.TaskType `json:"task_type,omitempty"`
	// TimeoutMinutes holds the value of the "timeout_minutes" field.
	TimeoutMinutes int `json:"timeout_minutes,omitempty"`
	// MaxRetries holds the value of the "max_retries" field.
	MaxRetries int `json:"max_retries,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority     int `json:"priority,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TaskTypeDefault) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tasktypedefault.FieldID, tasktypedefault.FieldTimeoutMinutes, tasktypedefault.FieldMaxRetries, tasktypedefault.FieldPriority:
			values[i] = new(sql.NullInt64)
		case tasktypedefault.FieldTaskType:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TaskTypeDefault fields.
func (_m *TaskTypeDefault) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tasktypedefault.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case tasktypedefault.FieldTaskType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_type", values[i])
			} else if value.Valid {
				_m.TaskType = tasktypedefault.TaskType(value.String)
			}
		case tasktypedefault.FieldTimeoutMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field timeout_minutes", values[i])
			} else if value.Valid {
				_m.TimeoutMinutes = int(value.Int64)
			}
		case tasktypedefault.FieldMaxRetries:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_retries", values[i])
			} else if value.Valid {
				_m.MaxRetries = int(value.Int64)
			}
		case tasktypedefault.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TaskTypeDefault.
// This includes values selected through modifiers, order, etc.
func (_m *TaskTypeDefault) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TaskTypeDefault.
// Note that you need to call TaskTypeDefault.Unwrap() before calling this method if this TaskTypeDefault
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TaskTypeDefault) Update() *TaskTypeDefaultUpdateOne {
	return NewTaskTypeDefaultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TaskTypeDefault entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TaskTypeDefault) Unwrap() *TaskTypeDefault {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TaskTypeDefault is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TaskTypeDefault) String() string {
	var builder strings.Builder
	builder.WriteString("TaskTypeDefault(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.TaskType))
	builder.WriteString(", ")
	builder.WriteString("timeout_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeoutMinutes))
	builder.WriteString(", ")
	builder.WriteString("max_retries=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxRetries))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteByte(')')
	return builder.String()
}

// TaskTypeDefaults is a parsable slice of TaskTypeDefault.
type TaskTypeDefaults []*TaskTypeDefault
