package sequence

// Profile is a named, fixed sequence of steps. The step slice is copied on
// construction and on access, so a Profile cannot be modified after it is built.
type Profile struct {
	name  string
	steps []Step
}

// NewProfile creates a Profile from the given steps in order.
func NewProfile(name string, steps ...Step) Profile {
	copied := make([]Step, len(steps))
	copy(copied, steps)
	return Profile{name: name, steps: copied}
}

// Name returns the profile name.
func (p Profile) Name() string {
	return p.name
}

// Steps returns a copy of the profile's steps in execution order.
func (p Profile) Steps() []Step {
	out := make([]Step, len(p.steps))
	copy(out, p.steps)
	return out
}

// Len returns the number of steps.
func (p Profile) Len() int {
	return len(p.steps)
}
