// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"research", "copywrite", "video", "coordinator", "reviewer", "developer", "designer", "tester", "project_manager"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"online", "offline", "busy"}, Default: "online"},
		{Name: "capabilities", Type: field.TypeJSON, Nullable: true},
		{Name: "skills", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "text[]"}},
		{Name: "total_tasks", Type: field.TypeInt, Default: 0},
		{Name: "completed_tasks", Type: field.TypeInt, Default: 0},
		{Name: "failed_tasks", Type: field.TypeInt, Default: 0},
		{Name: "success_rate", Type: field.TypeFloat64, Default: 0},
		{Name: "current_task_id", Type: field.TypeInt, Nullable: true},
		{Name: "last_heartbeat", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agent_status",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[3]},
			},
			{
				Name:    "agent_status_last_heartbeat",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[3], AgentsColumns[11]},
			},
			{
				Name:    "agent_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[14]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// AgentChannelsColumns holds the columns for the "agent_channels" table.
	AgentChannelsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "agent_name", Type: field.TypeString},
		{Name: "channel_id", Type: field.TypeString},
		{Name: "last_seen", Type: field.TypeTime},
	}
	// AgentChannelsTable holds the schema information for the "agent_channels" table.
	AgentChannelsTable = &schema.Table{
		Name:       "agent_channels",
		Columns:    AgentChannelsColumns,
		PrimaryKey: []*schema.Column{AgentChannelsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentchannel_agent_name_channel_id",
				Unique:  true,
				Columns: []*schema.Column{AgentChannelsColumns[1], AgentChannelsColumns[2]},
			},
			{
				Name:    "agentchannel_channel_id",
				Unique:  false,
				Columns: []*schema.Column{AgentChannelsColumns[2]},
			},
		},
	}
	// IdempotencyKeysColumns holds the columns for the "idempotency_keys" table.
	IdempotencyKeysColumns = []*schema.Column{
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "response", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// IdempotencyKeysTable holds the schema information for the "idempotency_keys" table.
	IdempotencyKeysTable = &schema.Table{
		Name:       "idempotency_keys",
		Columns:    IdempotencyKeysColumns,
		PrimaryKey: []*schema.Column{IdempotencyKeysColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "idempotencykey_created_at",
				Unique:  false,
				Columns: []*schema.Column{IdempotencyKeysColumns[2]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "channel_id", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "paused", "completed", "cancelled"}, Default: "active"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "project_status",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[4]},
			},
			{
				Name:    "project_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[7]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "task_type", Type: field.TypeEnum, Enums: []string{"research", "copywrite", "video", "review", "publish", "analysis", "design", "development", "testing", "deployment", "coordination"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "assigned", "running", "reviewing", "completed", "failed", "cancelled", "rejected"}, Default: "pending"},
		{Name: "priority", Type: field.TypeInt, Default: 5},
		{Name: "assignee", Type: field.TypeString, Nullable: true},
		{Name: "reviewer_id", Type: field.TypeString, Nullable: true},
		{Name: "acceptance_criteria", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "parent_task_id", Type: field.TypeInt, Nullable: true},
		{Name: "dependencies", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "bigint[]"}},
		{Name: "task_tags", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "text[]"}},
		{Name: "estimated_hours", Type: field.TypeFloat64, Nullable: true},
		{Name: "timeout_minutes", Type: field.TypeInt, Nullable: true},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "max_retries", Type: field.TypeInt, Default: 3},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "feedback", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "assigned_at", Type: field.TypeTime, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "due_at", Type: field.TypeTime, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "project_id", Type: field.TypeInt},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_projects_tasks",
				Columns:    []*schema.Column{TasksColumns[26]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[4]},
			},
			{
				Name:    "task_assignee",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[6]},
			},
			{
				Name:    "task_project_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[26]},
			},
			{
				Name:    "task_task_type",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[3]},
			},
			{
				Name:    "task_status_priority_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[4], TasksColumns[5], TasksColumns[19]},
			},
			{
				Name:    "task_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[4], TasksColumns[22]},
			},
			{
				Name:    "task_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[25]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// TaskLogsColumns holds the columns for the "task_logs" table.
	TaskLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "action", Type: field.TypeString},
		{Name: "old_status", Type: field.TypeString, Nullable: true},
		{Name: "new_status", Type: field.TypeString, Nullable: true},
		{Name: "message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "actor", Type: field.TypeString, Default: "system"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeInt},
	}
	// TaskLogsTable holds the schema information for the "task_logs" table.
	TaskLogsTable = &schema.Table{
		Name:       "task_logs",
		Columns:    TaskLogsColumns,
		PrimaryKey: []*schema.Column{TaskLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "task_logs_tasks_logs",
				Columns:    []*schema.Column{TaskLogsColumns[7]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "tasklog_task_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TaskLogsColumns[7], TaskLogsColumns[6]},
			},
		},
	}
	// TaskTypeDefaultsColumns holds the columns for the "task_type_defaults" table.
	TaskTypeDefaultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "task_type", Type: field.TypeEnum, Enums: []string{"research", "copywrite", "video", "review", "publish", "analysis", "design", "development", "testing", "deployment", "coordination"}},
		{Name: "timeout_minutes", Type: field.TypeInt},
		{Name: "max_retries", Type: field.TypeInt},
		{Name: "priority", Type: field.TypeInt},
	}
	// TaskTypeDefaultsTable holds the schema information for the "task_type_defaults" table.
	TaskTypeDefaultsTable = &schema.Table{
		Name:       "task_type_defaults",
		Columns:    TaskTypeDefaultsColumns,
		PrimaryKey: []*schema.Column{TaskTypeDefaultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tasktypedefault_task_type",
				Unique:  true,
				Columns: []*schema.Column{TaskTypeDefaultsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentsTable,
		AgentChannelsTable,
		IdempotencyKeysTable,
		ProjectsTable,
		TasksTable,
		TaskLogsTable,
		TaskTypeDefaultsTable,
	}
)

func init() {
	TasksTable.ForeignKeys[0].RefTable = ProjectsTable
	TaskLogsTable.ForeignKeys[0].RefTable = TasksTable
}
