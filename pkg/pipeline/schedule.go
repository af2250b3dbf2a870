package pipeline

// NewSchedule creates a Schedule object. Callers typically set the period,
// startDateTime or occurrences attributes afterwards.
func NewSchedule(name, id string, opts ...ObjectOption) *Object {
	obj := NewObject("Schedule", name, id, opts...)
	obj.set("startAt", StartAtFirstActivationDateTime)

	return obj
}

// applyRunnableDefaults seeds the retry attributes shared by every object
// the remote service can run (activities, resources and data nodes).
func applyRunnableDefaults(obj *Object) {
	obj.set("maximumRetries", 2)
	obj.set("retryDelay", "10 minutes")
}
