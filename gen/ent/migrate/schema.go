// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CommitteeAlertColumns holds the columns for the "committee_alert" table.
	CommitteeAlertColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "property_id", Type: field.TypeUUID},
		{Name: "alert_type", Type: field.TypeString},
		{Name: "metric_type", Type: field.TypeString},
		{Name: "severity", Type: field.TypeString},
		{Name: "metric_snapshot", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
		{Name: "resolved_by", Type: field.TypeString, Nullable: true},
		{Name: "resolution_notes", Type: field.TypeString, Nullable: true},
	}
	// CommitteeAlertTable holds the schema information for the "committee_alert" table.
	CommitteeAlertTable = &schema.Table{
		Name:       "committee_alert",
		Columns:    CommitteeAlertColumns,
		PrimaryKey: []*schema.Column{CommitteeAlertColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "committeealert_property_id_metric_type_status",
				Unique:  false,
				Columns: []*schema.Column{CommitteeAlertColumns[1], CommitteeAlertColumns[3], CommitteeAlertColumns[6]},
			},
			{
				Name:    "committeealert_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{CommitteeAlertColumns[6], CommitteeAlertColumns[7]},
			},
			{
				Name:    "committeealert_property_id_metric_type",
				Unique:  true,
				Columns: []*schema.Column{CommitteeAlertColumns[1], CommitteeAlertColumns[3]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status = 'PENDING'",
				},
			},
		},
	}
	// ExtractedMetricColumns holds the columns for the "extracted_metric" table.
	ExtractedMetricColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "property_id", Type: field.TypeUUID},
		{Name: "metric_type", Type: field.TypeString},
		{Name: "value", Type: field.TypeFloat64},
		{Name: "period", Type: field.TypeString, Size: 7},
		{Name: "source_document_id", Type: field.TypeUUID},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "extracted_at", Type: field.TypeTime},
	}
	// ExtractedMetricTable holds the schema information for the "extracted_metric" table.
	ExtractedMetricTable = &schema.Table{
		Name:       "extracted_metric",
		Columns:    ExtractedMetricColumns,
		PrimaryKey: []*schema.Column{ExtractedMetricColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "extractedmetric_property_id_metric_type_period_version",
				Unique:  true,
				Columns: []*schema.Column{ExtractedMetricColumns[1], ExtractedMetricColumns[2], ExtractedMetricColumns[4], ExtractedMetricColumns[6]},
			},
			{
				Name:    "extractedmetric_source_document_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractedMetricColumns[5]},
			},
		},
	}
	// ProcessingJobColumns holds the columns for the "processing_job" table.
	ProcessingJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "document_id", Type: field.TypeUUID},
		{Name: "property_id", Type: field.TypeUUID},
		{Name: "blob_ref", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "QUEUED"},
		{Name: "enqueued_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "attempt_count", Type: field.TypeInt, Default: 0},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
	}
	// ProcessingJobTable holds the schema information for the "processing_job" table.
	ProcessingJobTable = &schema.Table{
		Name:       "processing_job",
		Columns:    ProcessingJobColumns,
		PrimaryKey: []*schema.Column{ProcessingJobColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "processingjob_property_id_status",
				Unique:  false,
				Columns: []*schema.Column{ProcessingJobColumns[2], ProcessingJobColumns[4]},
			},
			{
				Name:    "processingjob_document_id_enqueued_at",
				Unique:  false,
				Columns: []*schema.Column{ProcessingJobColumns[1], ProcessingJobColumns[5]},
			},
		},
	}
	// PropertiesColumns holds the columns for the "properties" table.
	PropertiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "property_class", Type: field.TypeString, Default: "STABILIZED"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PropertiesTable holds the schema information for the "properties" table.
	PropertiesTable = &schema.Table{
		Name:       "properties",
		Columns:    PropertiesColumns,
		PrimaryKey: []*schema.Column{PropertiesColumns[0]},
	}
	// WorkflowLockColumns holds the columns for the "workflow_lock" table.
	WorkflowLockColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "property_id", Type: field.TypeUUID},
		{Name: "lock_type", Type: field.TypeString},
		{Name: "blocked_actions", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeString, Default: "LOCKED"},
		{Name: "locked_at", Type: field.TypeTime},
		{Name: "unlocked_at", Type: field.TypeTime, Nullable: true},
		{Name: "alert_id", Type: field.TypeUUID},
	}
	// WorkflowLockTable holds the schema information for the "workflow_lock" table.
	WorkflowLockTable = &schema.Table{
		Name:       "workflow_lock",
		Columns:    WorkflowLockColumns,
		PrimaryKey: []*schema.Column{WorkflowLockColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "workflow_lock_committee_alert_locks",
				Columns:    []*schema.Column{WorkflowLockColumns[7]},
				RefColumns: []*schema.Column{CommitteeAlertColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "workflowlock_property_id_status",
				Unique:  false,
				Columns: []*schema.Column{WorkflowLockColumns[1], WorkflowLockColumns[4]},
			},
			{
				Name:    "workflowlock_alert_id",
				Unique:  false,
				Columns: []*schema.Column{WorkflowLockColumns[7]},
			},
			{
				Name:    "workflowlock_status_locked_at",
				Unique:  false,
				Columns: []*schema.Column{WorkflowLockColumns[4], WorkflowLockColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CommitteeAlertTable,
		ExtractedMetricTable,
		ProcessingJobTable,
		PropertiesTable,
		WorkflowLockTable,
	}
)

func init() {
	CommitteeAlertTable.Annotation = &entsql.Annotation{
		Table: "committee_alert",
	}
	ExtractedMetricTable.Annotation = &entsql.Annotation{
		Table: "extracted_metric",
	}
	ProcessingJobTable.Annotation = &entsql.Annotation{
		Table: "processing_job",
	}
	PropertiesTable.Annotation = &entsql.Annotation{
		Table: "properties",
	}
	WorkflowLockTable.ForeignKeys[0].RefTable = CommitteeAlertTable
	WorkflowLockTable.Annotation = &entsql.Annotation{
		Table: "workflow_lock",
	}
}
