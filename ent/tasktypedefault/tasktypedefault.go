// Code generated by ent, DO NOT EDIT.

package tasktypedefault

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the tasktypedefault type in the database.
	Label = "task_type_default"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTaskType holds the string denoting the task_type field in the database.
	FieldTaskType = "task_type"
	// FieldTimeoutMinutes holds the string denoting the timeout_minutes field in the database.
	FieldTimeoutMinutes = "timeout_minutes"
	// FieldMaxRetries holds the string denoting the max_retries field in the database.
	FieldMaxRetries = "max_retries"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// Table holds the table name of the tasktypedefault in the database.
	Table = "task_type_defaults"
)

// Columns holds all SQL columns for tasktypedefault fields.
var Columns = []string{
	FieldID,
	FieldTaskType,
	FieldTimeoutMinutes,
	FieldMaxRetries,
	FieldPriority,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

// TaskType defines the type for the "task_type" enum field.
type TaskType string

// TaskType values.
const (
	TaskTypeResearch     TaskType = "research"
	TaskTypeCopywrite    TaskType = "copywrite"
	TaskTypeVideo        TaskType = "video"
	TaskTypeReview       TaskType = "review"
	TaskTypePublish      TaskType = "publish"
	TaskTypeAnalysis     TaskType = "analysis"
	TaskTypeDesign       TaskType = "design"
	TaskTypeDevelopment  TaskType = "development"
	TaskTypeTesting      TaskType = "testing"
	TaskTypeDeployment   TaskType = "deployment"
	TaskTypeCoordination TaskType = "coordination"
)

func (tt TaskType) String() string {
	return string(tt)
}

// TaskTypeValidator is a validator for the "task_type" field enum values. It is called by the builders before save.
func TaskTypeValidator(tt TaskType) error {
	switch tt {
	case TaskTypeResearch, TaskTypeCopywrite, TaskTypeVideo, TaskTypeReview, TaskTypePublish, TaskTypeAnalysis, TaskTypeDesign, TaskTypeDevelopment, TaskTypeTesting, TaskTypeDeployment, TaskTypeCoordination:
		return nil
	default:
		return fmt.Errorf("tasktypedefault: invalid enum value for task_type field: %q", tt)
	}
}

// OrderOption defines the ordering options for the TaskTypeDefault queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskType orders the results by the task_type field.
func ByTaskType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskType, opts...).ToFunc()
}

// ByTimeoutMinutes orders the results by the timeout_minutes field.
func ByTimeoutMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeoutMinutes, opts...).ToFunc()
}

// ByMaxRetries orders the results by the max_retries field.
func ByMaxRetries(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxRetries, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}
