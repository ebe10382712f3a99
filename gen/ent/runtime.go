// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/propertyops/asset-governor/db/ent/schema"
	"github.com/propertyops/asset-governor/gen/ent/committeealert"
	"github.com/propertyops/asset-governor/gen/ent/extractedmetric"
	"github.com/propertyops/asset-governor/gen/ent/processingjob"
	"github.com/propertyops/asset-governor/gen/ent/property"
	"github.com/propertyops/asset-governor/gen/ent/workflowlock"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	committeealertFields := schema.CommitteeAlert{}.Fields()
	_ = committeealertFields
	// committeealertDescAlertType is the schema descriptor for alert_type field.
	committeealertDescAlertType := committeealertFields[2].Descriptor()
	// committeealert.AlertTypeValidator is a validator for the "alert_type" field. It is called by the builders before save.
	committeealert.AlertTypeValidator = func() func(string) error {
		validators := committeealertDescAlertType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(alert_type string) error {
			for _, fn := range fns {
				if err := fn(alert_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// committeealertDescMetricType is the schema descriptor for metric_type field.
	committeealertDescMetricType := committeealertFields[3].Descriptor()
	// committeealert.MetricTypeValidator is a validator for the "metric_type" field. It is called by the builders before save.
	committeealert.MetricTypeValidator = func() func(string) error {
		validators := committeealertDescMetricType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(metric_type string) error {
			for _, fn := range fns {
				if err := fn(metric_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// committeealertDescSeverity is the schema descriptor for severity field.
	committeealertDescSeverity := committeealertFields[4].Descriptor()
	// committeealert.SeverityValidator is a validator for the "severity" field. It is called by the builders before save.
	committeealert.SeverityValidator = committeealertDescSeverity.Validators[0].(func(string) error)
	// committeealertDescStatus is the schema descriptor for status field.
	committeealertDescStatus := committeealertFields[6].Descriptor()
	// committeealert.DefaultStatus holds the default value on creation for the status field.
	committeealert.DefaultStatus = committeealertDescStatus.Default.(string)
	// committeealert.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	committeealert.StatusValidator = committeealertDescStatus.Validators[0].(func(string) error)
	// committeealertDescCreatedAt is the schema descriptor for created_at field.
	committeealertDescCreatedAt := committeealertFields[7].Descriptor()
	// committeealert.DefaultCreatedAt holds the default value on creation for the created_at field.
	committeealert.DefaultCreatedAt = committeealertDescCreatedAt.Default.(func() time.Time)
	// committeealertDescID is the schema descriptor for id field.
	committeealertDescID := committeealertFields[0].Descriptor()
	// committeealert.DefaultID holds the default value on creation for the id field.
	committeealert.DefaultID = committeealertDescID.Default.(func() uuid.UUID)
	extractedmetricFields := schema.ExtractedMetric{}.Fields()
	_ = extractedmetricFields
	// extractedmetricDescMetricType is the schema descriptor for metric_type field.
	extractedmetricDescMetricType := extractedmetricFields[2].Descriptor()
	// extractedmetric.MetricTypeValidator is a validator for the "metric_type" field. It is called by the builders before save.
	extractedmetric.MetricTypeValidator = func() func(string) error {
		validators := extractedmetricDescMetricType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(metric_type string) error {
			for _, fn := range fns {
				if err := fn(metric_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractedmetricDescPeriod is the schema descriptor for period field.
	extractedmetricDescPeriod := extractedmetricFields[4].Descriptor()
	// extractedmetric.PeriodValidator is a validator for the "period" field. It is called by the builders before save.
	extractedmetric.PeriodValidator = func() func(string) error {
		validators := extractedmetricDescPeriod.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(period string) error {
			for _, fn := range fns {
				if err := fn(period); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractedmetricDescVersion is the schema descriptor for version field.
	extractedmetricDescVersion := extractedmetricFields[6].Descriptor()
	// extractedmetric.DefaultVersion holds the default value on creation for the version field.
	extractedmetric.DefaultVersion = extractedmetricDescVersion.Default.(int)
	// extractedmetricDescExtractedAt is the schema descriptor for extracted_at field.
	extractedmetricDescExtractedAt := extractedmetricFields[7].Descriptor()
	// extractedmetric.DefaultExtractedAt holds the default value on creation for the extracted_at field.
	extractedmetric.DefaultExtractedAt = extractedmetricDescExtractedAt.Default.(func() time.Time)
	// extractedmetricDescID is the schema descriptor for id field.
	extractedmetricDescID := extractedmetricFields[0].Descriptor()
	// extractedmetric.DefaultID holds the default value on creation for the id field.
	extractedmetric.DefaultID = extractedmetricDescID.Default.(func() uuid.UUID)
	processingjobFields := schema.ProcessingJob{}.Fields()
	_ = processingjobFields
	// processingjobDescBlobRef is the schema descriptor for blob_ref field.
	processingjobDescBlobRef := processingjobFields[3].Descriptor()
	// processingjob.BlobRefValidator is a validator for the "blob_ref" field. It is called by the builders before save.
	processingjob.BlobRefValidator = processingjobDescBlobRef.Validators[0].(func(string) error)
	// processingjobDescStatus is the schema descriptor for status field.
	processingjobDescStatus := processingjobFields[4].Descriptor()
	// processingjob.DefaultStatus holds the default value on creation for the status field.
	processingjob.DefaultStatus = processingjobDescStatus.Default.(string)
	// processingjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	processingjob.StatusValidator = processingjobDescStatus.Validators[0].(func(string) error)
	// processingjobDescEnqueuedAt is the schema descriptor for enqueued_at field.
	processingjobDescEnqueuedAt := processingjobFields[5].Descriptor()
	// processingjob.DefaultEnqueuedAt holds the default value on creation for the enqueued_at field.
	processingjob.DefaultEnqueuedAt = processingjobDescEnqueuedAt.Default.(func() time.Time)
	// processingjobDescAttemptCount is the schema descriptor for attempt_count field.
	processingjobDescAttemptCount := processingjobFields[8].Descriptor()
	// processingjob.DefaultAttemptCount holds the default value on creation for the attempt_count field.
	processingjob.DefaultAttemptCount = processingjobDescAttemptCount.Default.(int)
	// processingjobDescID is the schema descriptor for id field.
	processingjobDescID := processingjobFields[0].Descriptor()
	// processingjob.DefaultID holds the default value on creation for the id field.
	processingjob.DefaultID = processingjobDescID.Default.(func() uuid.UUID)
	propertyFields := schema.Property{}.Fields()
	_ = propertyFields
	// propertyDescName is the schema descriptor for name field.
	propertyDescName := propertyFields[1].Descriptor()
	// property.NameValidator is a validator for the "name" field. It is called by the builders before save.
	property.NameValidator = propertyDescName.Validators[0].(func(string) error)
	// propertyDescPropertyClass is the schema descriptor for property_class field.
	propertyDescPropertyClass := propertyFields[2].Descriptor()
	// property.DefaultPropertyClass holds the default value on creation for the property_class field.
	property.DefaultPropertyClass = propertyDescPropertyClass.Default.(string)
	// property.PropertyClassValidator is a validator for the "property_class" field. It is called by the builders before save.
	property.PropertyClassValidator = propertyDescPropertyClass.Validators[0].(func(string) error)
	// propertyDescCreatedAt is the schema descriptor for created_at field.
	propertyDescCreatedAt := propertyFields[3].Descriptor()
	// property.DefaultCreatedAt holds the default value on creation for the created_at field.
	property.DefaultCreatedAt = propertyDescCreatedAt.Default.(func() time.Time)
	// propertyDescID is the schema descriptor for id field.
	propertyDescID := propertyFields[0].Descriptor()
	// property.DefaultID holds the default value on creation for the id field.
	property.DefaultID = propertyDescID.Default.(func() uuid.UUID)
	workflowlockFields := schema.WorkflowLock{}.Fields()
	_ = workflowlockFields
	// workflowlockDescLockType is the schema descriptor for lock_type field.
	workflowlockDescLockType := workflowlockFields[3].Descriptor()
	// workflowlock.LockTypeValidator is a validator for the "lock_type" field. It is called by the builders before save.
	workflowlock.LockTypeValidator = func() func(string) error {
		validators := workflowlockDescLockType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(lock_type string) error {
			for _, fn := range fns {
				if err := fn(lock_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// workflowlockDescStatus is the schema descriptor for status field.
	workflowlockDescStatus := workflowlockFields[5].Descriptor()
	// workflowlock.DefaultStatus holds the default value on creation for the status field.
	workflowlock.DefaultStatus = workflowlockDescStatus.Default.(string)
	// workflowlock.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	workflowlock.StatusValidator = workflowlockDescStatus.Validators[0].(func(string) error)
	// workflowlockDescLockedAt is the schema descriptor for locked_at field.
	workflowlockDescLockedAt := workflowlockFields[6].Descriptor()
	// workflowlock.DefaultLockedAt holds the default value on creation for the locked_at field.
	workflowlock.DefaultLockedAt = workflowlockDescLockedAt.Default.(func() time.Time)
	// workflowlockDescID is the schema descriptor for id field.
	workflowlockDescID := workflowlockFields[0].Descriptor()
	// workflowlock.DefaultID holds the default value on creation for the id field.
	workflowlock.DefaultID = workflowlockDescID.Default.(func() uuid.UUID)
}
