package pipeline

// newActivity creates a runnable activity object with the shared retry
// defaults.
func newActivity(typeTag, name, id string, opts ...ObjectOption) *Object {
	obj := NewObject(typeTag, name, id, opts...)
	applyRunnableDefaults(obj)

	return obj
}

// NewShellCommandActivity creates a ShellCommandActivity. Callers set the
// command attribute, and runsOn or workerGroup to pick where it runs.
func NewShellCommandActivity(name, id string, opts ...ObjectOption) *Object {
	return newActivity("ShellCommandActivity", name, id, opts...)
}

// NewCopyActivity creates a CopyActivity between two data nodes.
func NewCopyActivity(name, id string, opts ...ObjectOption) *Object {
	return newActivity("CopyActivity", name, id, opts...)
}

// NewEmrActivity creates an EmrActivity.
func NewEmrActivity(name, id string, opts ...ObjectOption) *Object {
	return newActivity("EmrActivity", name, id, opts...)
}

// NewHiveActivity creates a HiveActivity.
func NewHiveActivity(name, id string, opts ...ObjectOption) *Object {
	return newActivity("HiveActivity", name, id, opts...)
}

// NewSqlActivity creates a SqlActivity.
func NewSqlActivity(name, id string, opts ...ObjectOption) *Object {
	return newActivity("SqlActivity", name, id, opts...)
}

// NewRedshiftCopyActivity creates a RedshiftCopyActivity.
func NewRedshiftCopyActivity(name, id string, opts ...ObjectOption) *Object {
	return newActivity("RedshiftCopyActivity", name, id, opts...)
}
