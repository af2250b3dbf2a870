package pipeline

// NewSnsAlarm creates an SnsAlarm action. Callers set the topicArn, subject
// and message attributes.
func NewSnsAlarm(name, id string, opts ...ObjectOption) *Object {
	return NewObject("SnsAlarm", name, id, opts...)
}

// NewTerminate creates a Terminate action.
func NewTerminate(name, id string, opts ...ObjectOption) *Object {
	return NewObject("Terminate", name, id, opts...)
}
