package pipeline

// newDataNode creates a data node object: runnable defaults plus a
// timeseries schedule type.
func newDataNode(typeTag, name, id string, opts ...ObjectOption) *Object {
	obj := NewObject(typeTag, name, id, opts...)
	applyRunnableDefaults(obj)
	obj.set("scheduleType", ScheduleTypeTimeSeries)

	return obj
}

// NewS3DataNode creates an S3DataNode with server side encryption enabled.
func NewS3DataNode(name, id string, opts ...ObjectOption) *Object {
	obj := newDataNode("S3DataNode", name, id, opts...)
	obj.set("s3EncryptionType", S3EncryptionTypeServerSide)

	return obj
}

// NewDynamoDBDataNode creates a DynamoDBDataNode.
func NewDynamoDBDataNode(name, id string, opts ...ObjectOption) *Object {
	return newDataNode("DynamoDBDataNode", name, id, opts...)
}

// NewMySqlDataNode creates a MySqlDataNode.
func NewMySqlDataNode(name, id string, opts ...ObjectOption) *Object {
	return newDataNode("MySqlDataNode", name, id, opts...)
}

// NewRedshiftDataNode creates a RedshiftDataNode.
func NewRedshiftDataNode(name, id string, opts ...ObjectOption) *Object {
	return newDataNode("RedshiftDataNode", name, id, opts...)
}

// NewSqlDataNode creates a SqlDataNode.
func NewSqlDataNode(name, id string, opts ...ObjectOption) *Object {
	return newDataNode("SqlDataNode", name, id, opts...)
}
