package pipeline

// NewEc2Resource creates an Ec2Resource compute node.
func NewEc2Resource(name, id string, opts ...ObjectOption) *Object {
	obj := NewObject("Ec2Resource", name, id, opts...)
	applyRunnableDefaults(obj)

	return obj
}

// NewEmrCluster creates an EmrCluster compute node.
func NewEmrCluster(name, id string, opts ...ObjectOption) *Object {
	obj := NewObject("EmrCluster", name, id, opts...)
	applyRunnableDefaults(obj)

	return obj
}
